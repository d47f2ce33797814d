package models

import "github.com/google/uuid"

// BookmarkTag associates a bookmark with a tag. Rows go away with their bookmark;
// tags are never cascaded.
type BookmarkTag struct {
	BookmarkID uuid.UUID `json:"bookmark_id" gorm:"type:uuid;primaryKey"`
	TagID      uuid.UUID `json:"tag_id" gorm:"type:uuid;primaryKey;index"`
	Bookmark   Bookmark  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Tag        Tag       `json:"-" gorm:"constraint:OnUpdate:CASCADE"`
}

// TableName returns the table name for BookmarkTag
func (BookmarkTag) TableName() string {
	return "bookmark_tags"
}
