package testutils

import (
	"bookmarks-backend/internal/database/models"
)

// BookmarkFactory provides methods to create test Bookmark data
type BookmarkFactory struct{}

// NewBookmarkFactory creates a new BookmarkFactory
func NewBookmarkFactory() *BookmarkFactory {
	return &BookmarkFactory{}
}

// Content creates bookmark content with default values
func (f *BookmarkFactory) Content() models.BookmarkContent {
	return models.BookmarkContent{
		Title: "Example",
		URL:   "http://example.com",
		Notes: "",
	}
}

// ContentWith creates bookmark content with the given title and url
func (f *BookmarkFactory) ContentWith(title, url string) models.BookmarkContent {
	content := f.Content()
	content.Title = title
	content.URL = url
	return content
}
