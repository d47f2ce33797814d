package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"bookmarks-backend/internal/database/models"
	apperrors "bookmarks-backend/internal/errors"
	"bookmarks-backend/internal/grouping"
	"bookmarks-backend/internal/logger"
	"bookmarks-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Listing sizes used by the overview
const (
	DefaultRecentLimit = 100
	DefaultRandomLimit = 10
)

// BookmarkService provides bookmark-related business logic
type BookmarkService struct {
	bookmarks repository.BookmarkRepositoryInterface
	tags      repository.TagRepositoryInterface
	validator *validator.Validate
}

// Ensure BookmarkService implements BookmarkServiceInterface
var _ BookmarkServiceInterface = (*BookmarkService)(nil)

// NewBookmarkService creates a new BookmarkService
func NewBookmarkService(bookmarks repository.BookmarkRepositoryInterface, tags repository.TagRepositoryInterface, validator *validator.Validate) *BookmarkService {
	return &BookmarkService{
		bookmarks: bookmarks,
		tags:      tags,
		validator: validator,
	}
}

// SaveBookmarkRequest represents the request to create or update a bookmark.
// Tags is a whitespace-separated list of tag names.
type SaveBookmarkRequest struct {
	URL   string `json:"url" yaml:"url" validate:"required"`
	Title string `json:"title" yaml:"title"`
	Notes string `json:"notes" yaml:"notes"`
	Tags  string `json:"tags" yaml:"tags" validate:"required"`
}

// BookmarkResponse represents a bookmark and its tag names in API responses
type BookmarkResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	Tags      []string  `json:"tags"`
}

// TagString returns the tag names separated by single spaces
func (b BookmarkResponse) TagString() string {
	return strings.Join(b.Tags, " ")
}

// BookmarkListResponse represents a list of bookmarks
type BookmarkListResponse struct {
	Bookmarks []BookmarkResponse `json:"bookmarks"`
	Total     int                `json:"total"`
}

// GroupedBookmarksResponse represents search results filed by first tag
type GroupedBookmarksResponse struct {
	Term   string                        `json:"term"`
	Tags   []string                      `json:"tags"`
	Groups map[string][]BookmarkResponse `json:"groups"`
	Total  int                           `json:"total"`
}

// OverviewResponse represents the landing page data
type OverviewResponse struct {
	TagGroups      [][]string         `json:"tag_groups"`
	TagCount       int                `json:"tag_count"`
	TotalBookmarks int64              `json:"total_bookmarks"`
	MostRecent     []BookmarkResponse `json:"most_recent"`
	Random         []BookmarkResponse `json:"random"`
}

// DraftResponse prefills the add form. Tags are those of the existing
// bookmark when one is found, suggestions from the title otherwise.
type DraftResponse struct {
	URL      string            `json:"url"`
	Title    string            `json:"title"`
	Notes    string            `json:"notes"`
	Existing *BookmarkResponse `json:"existing,omitempty"`
	Tags     []string          `json:"tags"`
}

// SaveBookmark creates a bookmark (id == nil) or replaces an existing one
func (s *BookmarkService) SaveBookmark(req *SaveBookmarkRequest, id *uuid.UUID) (*BookmarkResponse, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, apperrors.ErrURLRequired
	}
	tagNames := strings.Fields(req.Tags)
	if len(tagNames) == 0 {
		return nil, apperrors.ErrTagsRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	log := logger.New().WithFields(map[string]interface{}{
		"url":  req.URL,
		"tags": len(tagNames),
	})

	content := models.BookmarkContent{Title: req.Title, URL: req.URL, Notes: req.Notes}
	bookmark, err := s.bookmarks.Save(content, tagNames, id)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			log.WithError(err).Error("Failed to save bookmark")
		}
		return nil, err
	}

	if id != nil {
		log.WithField("bookmark_id", bookmark.ID).Info("Bookmark updated")
	} else {
		log.WithField("bookmark_id", bookmark.ID).Info("Bookmark created")
	}

	response := toBookmarkResponse(bookmark, sortedDistinct(tagNames))
	return &response, nil
}

// GetBookmark retrieves a bookmark and its tags by id
func (s *BookmarkService) GetBookmark(id uuid.UUID) (*BookmarkResponse, error) {
	bookmark, err := s.bookmarks.GetByID(id)
	if err != nil {
		return nil, err
	}
	responses, err := s.withTags([]models.Bookmark{*bookmark})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// FindBookmarks looks bookmarks up by id, url or title
func (s *BookmarkService) FindBookmarks(query repository.FindQuery) ([]BookmarkResponse, error) {
	bookmarks, err := s.bookmarks.Find(query)
	if err != nil {
		return nil, err
	}
	return s.withTags(bookmarks)
}

// DeleteBookmark deletes a bookmark; its tags stay
func (s *BookmarkService) DeleteBookmark(id uuid.UUID) error {
	if err := s.bookmarks.Delete(id); err != nil {
		return err
	}
	logger.New().WithField("bookmark_id", id).Info("Bookmark deleted")
	return nil
}

// SearchBookmarks searches bookmarks by url, title or tag name
func (s *BookmarkService) SearchBookmarks(term string) (*BookmarkListResponse, error) {
	bookmarks, err := s.bookmarks.Search(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search bookmarks: %w", err)
	}
	return s.toList(bookmarks)
}

// SearchGrouped runs a search and files the results by their first tag
func (s *BookmarkService) SearchGrouped(term string) (*GroupedBookmarksResponse, error) {
	list, err := s.SearchBookmarks(term)
	if err != nil {
		return nil, err
	}
	return &GroupedBookmarksResponse{
		Term:   strings.TrimSpace(term),
		Tags:   grouping.DistinctTags(list.Bookmarks),
		Groups: grouping.GroupByTag(list.Bookmarks),
		Total:  list.Total,
	}, nil
}

// MostRecentBookmarks returns the newest tagged bookmarks
func (s *BookmarkService) MostRecentBookmarks(limit int) (*BookmarkListResponse, error) {
	if limit < 1 {
		return nil, apperrors.ErrInvalidLimit
	}
	bookmarks, err := s.bookmarks.MostRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent bookmarks: %w", err)
	}
	return s.toList(bookmarks)
}

// RandomBookmarks returns a random sample of tagged bookmarks
func (s *BookmarkService) RandomBookmarks(limit int) (*BookmarkListResponse, error) {
	if limit < 1 {
		return nil, apperrors.ErrInvalidLimit
	}
	bookmarks, err := s.bookmarks.Random(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get random bookmarks: %w", err)
	}
	return s.toList(bookmarks)
}

// BookmarksByTag returns the bookmarks carrying the named tag
func (s *BookmarkService) BookmarksByTag(name string) (*BookmarkListResponse, error) {
	bookmarks, err := s.bookmarks.ByTag(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks by tag: %w", err)
	}
	return s.toList(bookmarks)
}

// TotalBookmarksCount returns the number of bookmarks
func (s *BookmarkService) TotalBookmarksCount() (int64, error) {
	total, err := s.bookmarks.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	return total, nil
}

// Overview collects the tag groups, totals, recent and random bookmarks
func (s *BookmarkService) Overview() (*OverviewResponse, error) {
	names, err := s.tags.ListNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	total, err := s.TotalBookmarksCount()
	if err != nil {
		return nil, err
	}
	recent, err := s.MostRecentBookmarks(DefaultRecentLimit)
	if err != nil {
		return nil, err
	}
	random, err := s.RandomBookmarks(DefaultRandomLimit)
	if err != nil {
		return nil, err
	}

	return &OverviewResponse{
		TagGroups:      SplitIntoGroupsOf(names, DefaultTagGroupSize),
		TagCount:       len(names),
		TotalBookmarks: total,
		MostRecent:     recent.Bookmarks,
		Random:         random.Bookmarks,
	}, nil
}

// PrepareDraft prefills the add form for url and title. An existing bookmark
// is looked up by url first, then by title.
func (s *BookmarkService) PrepareDraft(url, title, notes string) (*DraftResponse, error) {
	if url == "" && title == "" {
		return nil, apperrors.ErrEmptyLookup
	}
	draft := &DraftResponse{URL: url, Title: title, Notes: notes}

	existing, err := s.findExisting(url, title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		draft.Existing = existing
		draft.Tags = existing.Tags
		return draft, nil
	}

	draft.Tags, err = s.tags.ExistingNames(TitleWords(title))
	if err != nil {
		return nil, fmt.Errorf("failed to suggest tags: %w", err)
	}
	return draft, nil
}

func (s *BookmarkService) findExisting(url, title string) (*BookmarkResponse, error) {
	for _, query := range []repository.FindQuery{{URL: url}, {Title: title}} {
		if query.URL == "" && query.Title == "" {
			continue
		}
		found, err := s.FindBookmarks(query)
		if err != nil {
			return nil, err
		}
		if len(found) > 0 {
			return &found[0], nil
		}
	}
	return nil, nil
}

func (s *BookmarkService) toList(bookmarks []models.Bookmark) (*BookmarkListResponse, error) {
	responses, err := s.withTags(bookmarks)
	if err != nil {
		return nil, err
	}
	return &BookmarkListResponse{Bookmarks: responses, Total: len(responses)}, nil
}

// withTags loads the tag names of all bookmarks in one query
func (s *BookmarkService) withTags(bookmarks []models.Bookmark) ([]BookmarkResponse, error) {
	responses := make([]BookmarkResponse, 0, len(bookmarks))
	if len(bookmarks) == 0 {
		return responses, nil
	}

	ids := make([]uuid.UUID, len(bookmarks))
	for i := range bookmarks {
		ids[i] = bookmarks[i].ID
	}
	names, err := s.tags.NamesByBookmark(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookmark tags: %w", err)
	}

	for i := range bookmarks {
		responses = append(responses, toBookmarkResponse(&bookmarks[i], names[bookmarks[i].ID]))
	}
	return responses, nil
}

func toBookmarkResponse(bookmark *models.Bookmark, tags []string) BookmarkResponse {
	if tags == nil {
		tags = []string{}
	}
	return BookmarkResponse{
		ID:        bookmark.ID,
		Title:     bookmark.Title,
		URL:       bookmark.URL,
		Notes:     bookmark.Notes,
		CreatedAt: bookmark.CreatedAt,
		Tags:      tags,
	}
}

func sortedDistinct(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
