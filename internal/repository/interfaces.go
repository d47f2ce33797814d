package repository

import (
	"bookmarks-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// BookmarkRepositoryInterface defines the interface for bookmark repository operations
type BookmarkRepositoryInterface interface {
	Save(content models.BookmarkContent, tagNames []string, id *uuid.UUID) (*models.Bookmark, error)
	GetByID(id uuid.UUID) (*models.Bookmark, error)
	Find(query FindQuery) ([]models.Bookmark, error)
	Delete(id uuid.UUID) error
	MostRecent(limit int) ([]models.Bookmark, error)
	Random(limit int) ([]models.Bookmark, error)
	ByTag(name string) ([]models.Bookmark, error)
	Search(term string) ([]models.Bookmark, error)
	Count() (int64, error)
}

// TagRepositoryInterface defines the interface for tag repository operations
type TagRepositoryInterface interface {
	ResolveOrCreate(names []string) ([]models.Tag, error)
	ExistingNames(words []string) ([]string, error)
	ListNames() ([]string, error)
	NamesByBookmark(ids []uuid.UUID) (map[uuid.UUID][]string, error)
}
