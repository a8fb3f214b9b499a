package models

import "time"

// Group is a named collection of posts addressed by its URL slug.
// Groups are created by admin tooling (cmd/seed); the request path only
// ever reads them. The slug is the immutable external key.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
