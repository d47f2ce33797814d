package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bookmarks-backend/internal/api/handlers"
	apperrors "bookmarks-backend/internal/errors"
	"bookmarks-backend/internal/mocks"
	"bookmarks-backend/internal/repository"
	"bookmarks-backend/internal/service"
	"bookmarks-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BookmarkHandlerTestSuite defines the test suite for BookmarkHandler
type BookmarkHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBookmarkServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *BookmarkHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBookmarkServiceInterface(suite.ctrl)
	handler := handlers.NewBookmarkHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	r := suite.http.Router
	r.GET("/overview", handler.Overview)
	r.GET("/bookmarks/search", handler.SearchBookmarks)
	r.GET("/bookmarks/search/grouped", handler.SearchGrouped)
	r.GET("/bookmarks/lookup", handler.LookupBookmarks)
	r.GET("/bookmarks/draft", handler.PrepareDraft)
	r.GET("/bookmarks/count", handler.Count)
	r.GET("/bookmarks/recent", handler.MostRecent)
	r.GET("/bookmarks/random", handler.Random)
	r.GET("/bookmarks/:id", handler.GetBookmark)
	r.POST("/bookmarks", handler.CreateBookmark)
	r.PUT("/bookmarks/:id", handler.UpdateBookmark)
	r.DELETE("/bookmarks/:id", handler.DeleteBookmark)
	r.GET("/tags/:name/bookmarks", handler.ByTag)
}

func (suite *BookmarkHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func sampleBookmark(tags ...string) service.BookmarkResponse {
	return service.BookmarkResponse{
		ID:        uuid.New(),
		Title:     "X",
		URL:       "http://x.com",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Tags:      tags,
	}
}

func (suite *BookmarkHandlerTestSuite) TestCreateBookmark_Success() {
	created := sampleBookmark("news")
	suite.mockService.EXPECT().
		SaveBookmark(&service.SaveBookmarkRequest{URL: "http://x.com", Title: "X", Tags: "news"}, nil).
		Return(&created, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/bookmarks", map[string]string{
		"url":   "http://x.com",
		"title": "X",
		"tags":  "news",
	})

	var got service.BookmarkResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), created.ID, got.ID)
	assert.Equal(suite.T(), []string{"news"}, got.Tags)
}

func (suite *BookmarkHandlerTestSuite) TestCreateBookmark_MissingTags() {
	suite.mockService.EXPECT().SaveBookmark(gomock.Any(), nil).Return(nil, apperrors.ErrTagsRequired)

	w := suite.http.MakeRequest(http.MethodPost, "/bookmarks", map[string]string{"url": "http://x.com"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "tags required")
}

func (suite *BookmarkHandlerTestSuite) TestCreateBookmark_InvalidBody() {
	w := suite.http.MakeRequest(http.MethodPost, "/bookmarks", "not an object")

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid request body")
}

func (suite *BookmarkHandlerTestSuite) TestCreateBookmark_WriteFailure() {
	suite.mockService.EXPECT().SaveBookmark(gomock.Any(), nil).
		Return(nil, apperrors.NewWriteError("save bookmark", errors.New("disk I/O error")))

	w := suite.http.MakeRequest(http.MethodPost, "/bookmarks", map[string]string{"url": "http://x.com", "tags": "a"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to save bookmark")
	assert.NotContains(suite.T(), w.Body.String(), "disk I/O error")
}

func (suite *BookmarkHandlerTestSuite) TestUpdateBookmark_Success() {
	updated := sampleBookmark("b", "c")
	id := updated.ID
	suite.mockService.EXPECT().SaveBookmark(gomock.Any(), &id).Return(&updated, nil)

	w := suite.http.MakeRequest(http.MethodPut, "/bookmarks/"+id.String(), map[string]string{"url": "http://x.com", "tags": "b c"})

	var got service.BookmarkResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), []string{"b", "c"}, got.Tags)
}

func (suite *BookmarkHandlerTestSuite) TestUpdateBookmark_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().SaveBookmark(gomock.Any(), &id).Return(nil, apperrors.ErrBookmarkNotFound)

	w := suite.http.MakeRequest(http.MethodPut, "/bookmarks/"+id.String(), map[string]string{"url": "http://x.com", "tags": "a"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "bookmark not found")
}

func (suite *BookmarkHandlerTestSuite) TestUpdateBookmark_InvalidID() {
	w := suite.http.MakeRequest(http.MethodPut, "/bookmarks/not-a-uuid", map[string]string{"url": "http://x.com", "tags": "a"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid bookmark ID")
}

func (suite *BookmarkHandlerTestSuite) TestGetBookmark() {
	b := sampleBookmark("a")
	suite.mockService.EXPECT().GetBookmark(b.ID).Return(&b, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/bookmarks/"+b.ID.String(), nil)

	var got service.BookmarkResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), b.ID, got.ID)
}

func (suite *BookmarkHandlerTestSuite) TestDeleteBookmark() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteBookmark(id).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/bookmarks/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *BookmarkHandlerTestSuite) TestDeleteBookmark_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteBookmark(id).Return(apperrors.ErrBookmarkNotFound)

	w := suite.http.MakeRequest(http.MethodDelete, "/bookmarks/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "not found")
}

func (suite *BookmarkHandlerTestSuite) TestLookupBookmarks() {
	b := sampleBookmark("a")
	suite.mockService.EXPECT().
		FindBookmarks(repository.FindQuery{URL: "http://x.com", Title: "X"}).
		Return([]service.BookmarkResponse{b}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/bookmarks/lookup?url=http://x.com&title=X", nil)

	var got service.BookmarkListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), 1, got.Total)
}

func (suite *BookmarkHandlerTestSuite) TestLookupBookmarks_ByID() {
	id := uuid.New()
	suite.mockService.EXPECT().FindBookmarks(repository.FindQuery{ID: &id}).Return(nil, apperrors.ErrBookmarkNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/bookmarks/lookup?id="+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "")
}

func (suite *BookmarkHandlerTestSuite) TestLookupBookmarks_NoKey() {
	suite.mockService.EXPECT().FindBookmarks(repository.FindQuery{}).Return(nil, apperrors.ErrEmptyLookup)

	w := suite.http.MakeRequest(http.MethodGet, "/bookmarks/lookup", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "one of id, url or title is required")
}

func (suite *BookmarkHandlerTestSuite) TestPrepareDraft() {
	draft := &service.DraftResponse{URL: "http://x.com", Title: "Go Blog", Tags: []string{"go"}}
	suite.mockService.EXPECT().PrepareDraft("http://x.com", "Go Blog", "").Return(draft, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/bookmarks/draft?url=http://x.com&title=Go+Blog", nil)

	var got service.DraftResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), []string{"go"}, got.Tags)
	assert.Nil(suite.T(), got.Existing)
}

func (suite *BookmarkHandlerTestSuite) TestSearchBookmarks() {
	suite.mockService.EXPECT().SearchBookmarks("go lang").
		Return(&service.BookmarkListResponse{Bookmarks: []service.BookmarkResponse{sampleBookmark("go")}, Total: 1}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/bookmarks/search?t=go+lang", nil)

	var got service.BookmarkListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), 1, got.Total)
}

func (suite *BookmarkHandlerTestSuite) TestSearchBookmarks_ReadFailure() {
	suite.mockService.EXPECT().SearchBookmarks("").Return(nil, errors.New("db failed"))

	w := suite.http.MakeRequest(http.MethodGet, "/bookmarks/search", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to search bookmarks")
}

func (suite *BookmarkHandlerTestSuite) TestSearchGrouped() {
	b := sampleBookmark("go", "web")
	suite.mockService.EXPECT().SearchGrouped("go").Return(&service.GroupedBookmarksResponse{
		Term:   "go",
		Tags:   []string{"go", "web"},
		Groups: map[string][]service.BookmarkResponse{"go": {b}},
		Total:  1,
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/bookmarks/search/grouped?t=go", nil)

	var got service.GroupedBookmarksResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Len(suite.T(), got.Groups["go"], 1)
}

func (suite *BookmarkHandlerTestSuite) TestMostRecent_DefaultLimit() {
	suite.mockService.EXPECT().MostRecentBookmarks(service.DefaultRecentLimit).
		Return(&service.BookmarkListResponse{Bookmarks: []service.BookmarkResponse{}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/bookmarks/recent", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BookmarkHandlerTestSuite) TestRandom_CustomLimit() {
	suite.mockService.EXPECT().RandomBookmarks(5).
		Return(&service.BookmarkListResponse{Bookmarks: []service.BookmarkResponse{}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/bookmarks/random?limit=5", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BookmarkHandlerTestSuite) TestRandom_InvalidLimit() {
	w := suite.http.MakeRequest(http.MethodGet, "/bookmarks/random?limit=abc", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "limit")

	suite.mockService.EXPECT().RandomBookmarks(0).Return(nil, apperrors.ErrInvalidLimit)
	w = suite.http.MakeRequest(http.MethodGet, "/bookmarks/random?limit=0", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "limit")
}

func (suite *BookmarkHandlerTestSuite) TestCount() {
	suite.mockService.EXPECT().TotalBookmarksCount().Return(int64(7), nil)

	w := suite.http.MakeRequest(http.MethodGet, "/bookmarks/count", nil)

	var got handlers.CountResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), int64(7), got.Total)
}

func (suite *BookmarkHandlerTestSuite) TestByTag() {
	suite.mockService.EXPECT().BookmarksByTag("news").
		Return(&service.BookmarkListResponse{Bookmarks: []service.BookmarkResponse{sampleBookmark("news")}, Total: 1}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/tags/news/bookmarks", nil)

	var got service.BookmarkListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), "news", got.Bookmarks[0].Tags[0])
}

func (suite *BookmarkHandlerTestSuite) TestOverview() {
	suite.mockService.EXPECT().Overview().Return(&service.OverviewResponse{
		TagGroups:      [][]string{{"a", "b", "c"}, {"d"}},
		TagCount:       4,
		TotalBookmarks: 9,
		MostRecent:     []service.BookmarkResponse{},
		Random:         []service.BookmarkResponse{},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/overview", nil)

	var got service.OverviewResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), 4, got.TagCount)
	assert.Equal(suite.T(), int64(9), got.TotalBookmarks)
}

func TestBookmarkHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookmarkHandlerTestSuite))
}
