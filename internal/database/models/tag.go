package models

// Tag is a label attached to bookmarks. Name is the natural key.
type Tag struct {
	BaseModel
	Name string `json:"name" gorm:"type:text;not null;uniqueIndex"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
