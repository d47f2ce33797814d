package service

import (
	"bookmarks-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BookmarkServiceInterface defines the interface for bookmark service
type BookmarkServiceInterface interface {
	SaveBookmark(req *SaveBookmarkRequest, id *uuid.UUID) (*BookmarkResponse, error)
	GetBookmark(id uuid.UUID) (*BookmarkResponse, error)
	FindBookmarks(query repository.FindQuery) ([]BookmarkResponse, error)
	DeleteBookmark(id uuid.UUID) error
	SearchBookmarks(term string) (*BookmarkListResponse, error)
	SearchGrouped(term string) (*GroupedBookmarksResponse, error)
	MostRecentBookmarks(limit int) (*BookmarkListResponse, error)
	RandomBookmarks(limit int) (*BookmarkListResponse, error)
	BookmarksByTag(name string) (*BookmarkListResponse, error)
	TotalBookmarksCount() (int64, error)
	Overview() (*OverviewResponse, error)
	PrepareDraft(url, title, notes string) (*DraftResponse, error)
}

// TagServiceInterface defines the interface for tag service
type TagServiceInterface interface {
	SuggestTags(words []string) ([]string, error)
	SuggestTagsForTitle(title string) ([]string, error)
	ListTags(groupSize int) (*TagListResponse, error)
}
