package service

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "bookmarks-backend/internal/errors"
	"bookmarks-backend/internal/repository"
)

// DefaultTagGroupSize is the number of tag names per group on the overview
const DefaultTagGroupSize = 3

var nonWordChars = regexp.MustCompile(`[^\p{L}\p{N}_]`)

// TagService provides tag-related business logic
type TagService struct {
	repo repository.TagRepositoryInterface
}

// Ensure TagService implements TagServiceInterface
var _ TagServiceInterface = (*TagService)(nil)

// NewTagService creates a new TagService
func NewTagService(repo repository.TagRepositoryInterface) *TagService {
	return &TagService{repo: repo}
}

// TagListResponse represents every tag name split into fixed-size groups
type TagListResponse struct {
	Groups [][]string `json:"groups"`
	Count  int        `json:"count"`
}

// SuggestTags returns the words that already exist as tag names
func (s *TagService) SuggestTags(words []string) ([]string, error) {
	names, err := s.repo.ExistingNames(words)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest tags: %w", err)
	}
	return names, nil
}

// SuggestTagsForTitle suggests existing tags matching the words of a page title
func (s *TagService) SuggestTagsForTitle(title string) ([]string, error) {
	return s.SuggestTags(TitleWords(title))
}

// ListTags returns all tag names sorted, chunked into groups of groupSize
func (s *TagService) ListTags(groupSize int) (*TagListResponse, error) {
	if groupSize < 1 {
		return nil, apperrors.ErrInvalidGroupSize
	}
	names, err := s.repo.ListNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return &TagListResponse{
		Groups: SplitIntoGroupsOf(names, groupSize),
		Count:  len(names),
	}, nil
}

// SplitIntoGroupsOf chunks items into consecutive groups of n; the last group may be shorter.
// A group size below one yields no groups.
func SplitIntoGroupsOf[T any](items []T, n int) [][]T {
	groups := [][]T{}
	if n < 1 {
		return groups
	}
	var group []T
	for i, item := range items {
		if i > 0 && i%n == 0 {
			groups = append(groups, group)
			group = nil
		}
		group = append(group, item)
	}
	if len(group) > 0 {
		groups = append(groups, group)
	}
	return groups
}

// TitleWords lowercases the words of title and strips non-word characters,
// dropping words left empty.
func TitleWords(title string) []string {
	words := []string{}
	for _, word := range strings.Fields(title) {
		if w := nonWordChars.ReplaceAllString(strings.ToLower(word), ""); w != "" {
			words = append(words, w)
		}
	}
	return words
}
