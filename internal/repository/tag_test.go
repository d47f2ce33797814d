package repository

import (
	"testing"

	"bookmarks-backend/internal/database/models"
	"bookmarks-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TagRepositoryTestSuite tests the TagRepository
type TagRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo *TagRepository
}

// SetupTest opens a fresh database for each test
func (suite *TagRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repo = NewTagRepository(suite.db)
}

func (suite *TagRepositoryTestSuite) tagCount() int64 {
	var n int64
	suite.Require().NoError(suite.db.Model(&models.Tag{}).Count(&n).Error)
	return n
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

// TestResolveOrCreate_CreatesMissing tests that unknown names become tags
func (suite *TagRepositoryTestSuite) TestResolveOrCreate_CreatesMissing() {
	tags, err := suite.repo.ResolveOrCreate([]string{"go", "db"})

	suite.NoError(err)
	suite.Equal([]string{"go", "db"}, tagNames(tags))
	suite.NotEqual(uuid.Nil, tags[0].ID)
	suite.NotEqual(uuid.Nil, tags[1].ID)
	suite.Equal(int64(2), suite.tagCount())
}

// TestResolveOrCreate_Idempotent tests that resolving the same names twice creates nothing new
func (suite *TagRepositoryTestSuite) TestResolveOrCreate_Idempotent() {
	first, err := suite.repo.ResolveOrCreate([]string{"go", "db"})
	suite.Require().NoError(err)

	second, err := suite.repo.ResolveOrCreate([]string{"db", "go"})
	suite.Require().NoError(err)

	suite.Equal(first[0].ID, second[1].ID)
	suite.Equal(first[1].ID, second[0].ID)
	suite.Equal(int64(2), suite.tagCount())
}

// TestResolveOrCreate_MixesExistingAndNew tests that only genuinely new names are inserted
func (suite *TagRepositoryTestSuite) TestResolveOrCreate_MixesExistingAndNew() {
	existing, err := suite.repo.ResolveOrCreate([]string{"a"})
	suite.Require().NoError(err)

	tags, err := suite.repo.ResolveOrCreate([]string{"a", "b"})

	suite.NoError(err)
	suite.Equal([]string{"a", "b"}, tagNames(tags))
	suite.Equal(existing[0].ID, tags[0].ID)
	suite.Equal(int64(2), suite.tagCount())
}

// TestResolveOrCreate_DedupesInput tests that repeated names are created once
func (suite *TagRepositoryTestSuite) TestResolveOrCreate_DedupesInput() {
	tags, err := suite.repo.ResolveOrCreate([]string{"new", "new", "", "other", "new"})

	suite.NoError(err)
	suite.Equal([]string{"new", "other"}, tagNames(tags))
	suite.Equal(int64(2), suite.tagCount())
}

// TestResolveOrCreate_Empty tests that no names means no work
func (suite *TagRepositoryTestSuite) TestResolveOrCreate_Empty() {
	tags, err := suite.repo.ResolveOrCreate(nil)

	suite.NoError(err)
	suite.Empty(tags)
	suite.Equal(int64(0), suite.tagCount())
}

// TestExistingNames tests the exact-match filter used for suggestions
func (suite *TagRepositoryTestSuite) TestExistingNames() {
	_, err := suite.repo.ResolveOrCreate([]string{"news", "golang"})
	suite.Require().NoError(err)

	names, err := suite.repo.ExistingNames([]string{"sports", "news", "go", "golang"})

	suite.NoError(err)
	suite.Equal([]string{"golang", "news"}, names)
	suite.Equal(int64(2), suite.tagCount())
}

// TestExistingNames_Empty tests that an empty word list matches nothing
func (suite *TagRepositoryTestSuite) TestExistingNames_Empty() {
	names, err := suite.repo.ExistingNames([]string{})

	suite.NoError(err)
	suite.Empty(names)
}

// TestListNames tests lexicographic ordering of all tag names
func (suite *TagRepositoryTestSuite) TestListNames() {
	_, err := suite.repo.ResolveOrCreate([]string{"zeta", "alpha", "mu"})
	suite.Require().NoError(err)

	names, err := suite.repo.ListNames()

	suite.NoError(err)
	suite.Equal([]string{"alpha", "mu", "zeta"}, names)
}

// TestListNames_ByteOrder tests that upper case, punctuation and accents sort by bytes
func (suite *TagRepositoryTestSuite) TestListNames_ByteOrder() {
	_, err := suite.repo.ResolveOrCreate([]string{"b", "émigré", "B", "_x", "a", "Z"})
	suite.Require().NoError(err)

	names, err := suite.repo.ListNames()

	suite.NoError(err)
	suite.Equal([]string{"B", "Z", "_x", "a", "b", "émigré"}, names)
}

// TestNamesByBookmark tests tag name lookup per bookmark
func (suite *TagRepositoryTestSuite) TestNamesByBookmark() {
	bookmarks := NewBookmarkRepository(suite.db)
	factory := testutils.NewBookmarkFactory()

	tagged, err := bookmarks.Save(factory.ContentWith("Tagged", "http://a.com"), []string{"web", "go"}, nil)
	suite.Require().NoError(err)
	untagged, err := bookmarks.Save(factory.ContentWith("Untagged", "http://b.com"), nil, nil)
	suite.Require().NoError(err)

	names, err := suite.repo.NamesByBookmark([]uuid.UUID{tagged.ID, untagged.ID})

	suite.NoError(err)
	suite.Equal([]string{"go", "web"}, names[tagged.ID])
	_, ok := names[untagged.ID]
	suite.False(ok)
}

// Run the test suite
func TestTagRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TagRepositoryTestSuite))
}
