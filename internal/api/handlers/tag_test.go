package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"bookmarks-backend/internal/api/handlers"
	apperrors "bookmarks-backend/internal/errors"
	"bookmarks-backend/internal/mocks"
	"bookmarks-backend/internal/service"
	"bookmarks-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TagHandlerTestSuite defines the test suite for TagHandler
type TagHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTagServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *TagHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTagServiceInterface(suite.ctrl)
	handler := handlers.NewTagHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/tags", handler.ListTags)
	suite.http.Router.GET("/tags/suggest", handler.SuggestTags)
}

func (suite *TagHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TagHandlerTestSuite) TestListTags_DefaultGroupSize() {
	suite.mockService.EXPECT().ListTags(service.DefaultTagGroupSize).Return(&service.TagListResponse{
		Groups: [][]string{{"a", "b", "c"}, {"d"}},
		Count:  4,
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/tags", nil)

	var got service.TagListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), 4, got.Count)
	assert.Len(suite.T(), got.Groups, 2)
}

func (suite *TagHandlerTestSuite) TestListTags_InvalidGroupSize() {
	w := suite.http.MakeRequest(http.MethodGet, "/tags?group_size=x", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "group_size")

	suite.mockService.EXPECT().ListTags(0).Return(nil, apperrors.ErrInvalidGroupSize)
	w = suite.http.MakeRequest(http.MethodGet, "/tags?group_size=0", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "group_size")
}

func (suite *TagHandlerTestSuite) TestSuggestTags_Words() {
	suite.mockService.EXPECT().SuggestTags([]string{"news", "sports", "go"}).Return([]string{"news"}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/tags/suggest?words=news,sports&words=go", nil)

	var got handlers.SuggestResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), []string{"news"}, got.Tags)
}

func (suite *TagHandlerTestSuite) TestSuggestTags_Title() {
	suite.mockService.EXPECT().SuggestTagsForTitle("The Go Blog").Return([]string{"go"}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/tags/suggest?title=The+Go+Blog", nil)

	var got handlers.SuggestResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), []string{"go"}, got.Tags)
}

func (suite *TagHandlerTestSuite) TestSuggestTags_Error() {
	suite.mockService.EXPECT().SuggestTagsForTitle("").Return(nil, errors.New("db failed"))

	w := suite.http.MakeRequest(http.MethodGet, "/tags/suggest", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to suggest tags")
}

func TestTagHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TagHandlerTestSuite))
}
