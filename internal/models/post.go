package models

import "time"

// Post is the unit of content. Every post has exactly one author and at
// most one group. PubDate and AuthorID are assigned at creation and never
// change afterwards; only the author may edit text, group or image.
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time `gorm:"column:pub_date;autoCreateTime;index" json:"pub_date"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"author"`
	GroupID  *uint     `gorm:"index" json:"group_id,omitempty"`
	Group    *Group    `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	// ImageURL is a reference into external media storage; the core never
	// touches image bytes.
	ImageURL string `json:"image_url,omitempty"`
}
