package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bookmarks-backend/internal/database/models"
	apperrors "bookmarks-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// hasTagCondition keeps bookmarks that carry at least one tag
const hasTagCondition = `EXISTS (SELECT 1 FROM bookmark_tags
	JOIN tags ON tags.id = bookmark_tags.tag_id
	WHERE bookmark_tags.bookmark_id = bookmarks.id)`

// searchCondition matches url or title against a lowercased and a verbatim LIKE
// pattern, or a tag name exactly. The verbatim branch keeps same-case matches
// working on stores whose LOWER only folds ASCII.
const searchCondition = `(LOWER(bookmarks.url) LIKE ? ESCAPE '\'
	OR LOWER(bookmarks.title) LIKE ? ESCAPE '\'
	OR bookmarks.url LIKE ? ESCAPE '\'
	OR bookmarks.title LIKE ? ESCAPE '\'
	OR EXISTS (SELECT 1 FROM bookmark_tags
		JOIN tags ON tags.id = bookmark_tags.tag_id
		WHERE bookmark_tags.bookmark_id = bookmarks.id AND tags.name = ?))`

// FindQuery selects bookmarks by exactly one key. ID wins over URL, URL over Title.
type FindQuery struct {
	ID    *uuid.UUID
	URL   string
	Title string
}

// BookmarkRepository handles database operations for bookmarks and their tag associations
type BookmarkRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// Ensure BookmarkRepository implements BookmarkRepositoryInterface
var _ BookmarkRepositoryInterface = (*BookmarkRepository)(nil)

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db, now: time.Now}
}

// WithClock returns a copy of the repository that stamps new bookmarks using now
func (r *BookmarkRepository) WithClock(now func() time.Time) *BookmarkRepository {
	return &BookmarkRepository{db: r.db, now: now}
}

// Save creates a bookmark (id == nil) or replaces the content and tag set of
// an existing one. Tag creation, association removal and association insertion
// run in one transaction; on any failure nothing is committed.
func (r *BookmarkRepository) Save(content models.BookmarkContent, tagNames []string, id *uuid.UUID) (*models.Bookmark, error) {
	var saved models.Bookmark

	err := r.db.Transaction(func(tx *gorm.DB) error {
		tags, err := NewTagRepository(tx).ResolveOrCreate(tagNames)
		if err != nil {
			return fmt.Errorf("resolve tags: %w", err)
		}

		if id != nil {
			res := tx.Model(&models.Bookmark{}).
				Where("id = ?", *id).
				Updates(map[string]interface{}{
					"title": content.Title,
					"url":   content.URL,
					"notes": content.Notes,
				})
			if res.Error != nil {
				return fmt.Errorf("update bookmark: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return apperrors.ErrBookmarkNotFound
			}
			if err := tx.Where("bookmark_id = ?", *id).Delete(&models.BookmarkTag{}).Error; err != nil {
				return fmt.Errorf("clear bookmark tags: %w", err)
			}
			if err := tx.First(&saved, "id = ?", *id).Error; err != nil {
				return fmt.Errorf("reload bookmark: %w", err)
			}
		} else {
			saved = models.Bookmark{
				Title:     content.Title,
				URL:       content.URL,
				Notes:     content.Notes,
				CreatedAt: r.now().UTC(),
			}
			if err := tx.Create(&saved).Error; err != nil {
				return fmt.Errorf("create bookmark: %w", err)
			}
		}

		if len(tags) == 0 {
			return nil
		}
		links := make([]models.BookmarkTag, 0, len(tags))
		for _, tag := range tags {
			links = append(links, models.BookmarkTag{BookmarkID: saved.ID, TagID: tag.ID})
		}
		if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
			return fmt.Errorf("insert bookmark tags: %w", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, apperrors.NewWriteError("save bookmark", err)
	}

	return &saved, nil
}

// GetByID retrieves a bookmark by its UUID
func (r *BookmarkRepository) GetByID(id uuid.UUID) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.First(&bookmark, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookmarkNotFound
		}
		return nil, err
	}
	return &bookmark, nil
}

// Find looks bookmarks up by id, url or title (exact match), honouring only
// the first key set. A missing id is NotFound; url and title may match nothing.
func (r *BookmarkRepository) Find(query FindQuery) ([]models.Bookmark, error) {
	switch {
	case query.ID != nil:
		bookmark, err := r.GetByID(*query.ID)
		if err != nil {
			return nil, err
		}
		return []models.Bookmark{*bookmark}, nil
	case query.URL != "":
		return r.findWhere("url = ?", query.URL)
	case query.Title != "":
		return r.findWhere("title = ?", query.Title)
	default:
		return nil, apperrors.ErrEmptyLookup
	}
}

func (r *BookmarkRepository) findWhere(condition string, value string) ([]models.Bookmark, error) {
	bookmarks := []models.Bookmark{}
	if err := r.db.Where(condition, value).Order("created_at DESC").Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Delete removes a bookmark; its tag associations are removed by the foreign key cascade
func (r *BookmarkRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Bookmark{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewWriteError("delete bookmark", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrBookmarkNotFound
	}
	return nil
}

// MostRecent returns tagged bookmarks, newest first, each at most once
func (r *BookmarkRepository) MostRecent(limit int) ([]models.Bookmark, error) {
	bookmarks := []models.Bookmark{}
	if err := r.db.Where(hasTagCondition).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Random returns tagged bookmarks in random order, each at most once
func (r *BookmarkRepository) Random(limit int) ([]models.Bookmark, error) {
	bookmarks := []models.Bookmark{}
	if err := r.db.Where(hasTagCondition).
		Order("RANDOM()").
		Limit(limit).
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// ByTag returns the bookmarks carrying the tag named name, newest first
func (r *BookmarkRepository) ByTag(name string) ([]models.Bookmark, error) {
	bookmarks := []models.Bookmark{}
	if err := r.db.Select("bookmarks.*").
		Joins("JOIN bookmark_tags ON bookmark_tags.bookmark_id = bookmarks.id").
		Joins("JOIN tags ON tags.id = bookmark_tags.tag_id").
		Where("tags.name = ?", name).
		Order("bookmarks.created_at DESC").
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Search returns every bookmark, newest first, when term is blank. Otherwise it
// returns tagged bookmarks whose url or title contains term (case-insensitive)
// or that carry a tag named exactly term.
func (r *BookmarkRepository) Search(term string) ([]models.Bookmark, error) {
	bookmarks := []models.Bookmark{}
	term = strings.TrimSpace(term)

	query := r.db.Order("bookmarks.created_at DESC")
	if term != "" {
		folded := "%" + escapeLike(strings.ToLower(term)) + "%"
		verbatim := "%" + escapeLike(term) + "%"
		query = query.Where(hasTagCondition).Where(searchCondition, folded, folded, verbatim, verbatim, term)
	}
	if err := query.Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Count returns the number of bookmarks
func (r *BookmarkRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Bookmark{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
