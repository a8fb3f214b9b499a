// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents an account that can author posts, comment and follow
// other authors. Identity (signup/login) lives behind the auth handlers;
// everywhere else the user is referenced by ID or username only.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"-"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
