package repository

import (
	"sort"

	"bookmarks-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TagRepository handles database operations for tags
type TagRepository struct {
	db *gorm.DB
}

// Ensure TagRepository implements TagRepositoryInterface
var _ TagRepositoryInterface = (*TagRepository)(nil)

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// ResolveOrCreate returns one tag per distinct name, in first-seen order.
// Existing tags are looked up by name first; rows are created only for the
// names still missing, so calling it twice with the same names is a no-op.
func (r *TagRepository) ResolveOrCreate(names []string) ([]models.Tag, error) {
	distinct := distinctNames(names)
	if len(distinct) == 0 {
		return []models.Tag{}, nil
	}

	// Phase 1: resolve existing tags
	var existing []models.Tag
	if err := r.db.Where("name IN ?", distinct).Order("name ASC").Find(&existing).Error; err != nil {
		return nil, err
	}
	byName := make(map[string]models.Tag, len(distinct))
	for _, tag := range existing {
		if _, seen := byName[tag.Name]; !seen {
			byName[tag.Name] = tag
		}
	}

	// Phase 2: create the missing ones
	missing := make([]models.Tag, 0, len(distinct))
	for _, name := range distinct {
		if _, ok := byName[name]; !ok {
			missing = append(missing, models.Tag{Name: name})
		}
	}
	if len(missing) > 0 {
		if err := r.db.Create(&missing).Error; err != nil {
			return nil, err
		}
		for _, tag := range missing {
			byName[tag.Name] = tag
		}
	}

	tags := make([]models.Tag, 0, len(distinct))
	for _, name := range distinct {
		tags = append(tags, byName[name])
	}
	return tags, nil
}

// ExistingNames returns the words that are existing tag names, sorted by name
func (r *TagRepository) ExistingNames(words []string) ([]string, error) {
	names := []string{}
	if len(words) == 0 {
		return names, nil
	}
	if err := r.db.Model(&models.Tag{}).
		Where("name IN ?", words).
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// ListNames returns every tag name in byte order, whatever the database collation
func (r *TagRepository) ListNames() ([]string, error) {
	names := []string{}
	if err := r.db.Model(&models.Tag{}).Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// NamesByBookmark returns the tag names of each given bookmark, sorted by name.
// Bookmarks without tags are absent from the map.
func (r *TagRepository) NamesByBookmark(ids []uuid.UUID) (map[uuid.UUID][]string, error) {
	result := make(map[uuid.UUID][]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	type row struct {
		BookmarkID uuid.UUID
		Name       string
	}
	var rows []row
	if err := r.db.Table("bookmark_tags").
		Select("bookmark_tags.bookmark_id, tags.name").
		Joins("JOIN tags ON tags.id = bookmark_tags.tag_id").
		Where("bookmark_tags.bookmark_id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, rw := range rows {
		result[rw.BookmarkID] = append(result[rw.BookmarkID], rw.Name)
	}
	for _, names := range result {
		sort.Strings(names)
	}
	return result, nil
}

// distinctNames drops empty and repeated names, keeping first-seen order
func distinctNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
