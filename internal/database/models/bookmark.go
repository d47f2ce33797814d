package models

import "time"

// Bookmark is a saved URL. CreatedAt is assigned once on creation and never updated.
type Bookmark struct {
	BaseModel
	Title     string    `json:"title" gorm:"type:text;not null;default:''"`
	URL       string    `json:"url" gorm:"type:text;not null;index"`
	Notes     string    `json:"notes" gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index"`
}

// TableName returns the table name for Bookmark
func (Bookmark) TableName() string {
	return "bookmarks"
}

// BookmarkContent holds the caller-editable fields of a bookmark
type BookmarkContent struct {
	Title string
	URL   string
	Notes string
}
