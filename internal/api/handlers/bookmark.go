package handlers

import (
	"net/http"
	"strconv"

	apperrors "bookmarks-backend/internal/errors"
	"bookmarks-backend/internal/repository"
	"bookmarks-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookmarkHandler handles HTTP requests for bookmarks
type BookmarkHandler struct {
	service service.BookmarkServiceInterface
}

// NewBookmarkHandler creates a new bookmark handler
func NewBookmarkHandler(service service.BookmarkServiceInterface) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// CountResponse represents the total number of bookmarks
type CountResponse struct {
	Total int64 `json:"total" example:"42"`
}

// CreateBookmark handles POST /bookmarks
// @Summary Create a bookmark
// @Description Save a new bookmark; tags is a whitespace-separated list and must not be empty
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param bookmark body service.SaveBookmarkRequest true "Bookmark data"
// @Success 201 {object} service.BookmarkResponse "Bookmark created"
// @Failure 400 {object} ErrorResponse "Missing url or tags"
// @Failure 500 {object} ErrorResponse "Save failed"
// @Security BearerAuth
// @Router /bookmarks [post]
func (h *BookmarkHandler) CreateBookmark(c *gin.Context) {
	var req service.SaveBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	bookmark, err := h.service.SaveBookmark(&req, nil)
	if err != nil {
		respondError(c, err, "Failed to save bookmark")
		return
	}

	c.JSON(http.StatusCreated, bookmark)
}

// UpdateBookmark handles PUT /bookmarks/:id
// @Summary Update a bookmark
// @Description Replace the content and tag set of an existing bookmark; created_at is kept
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param id path string true "Bookmark ID (UUID)"
// @Param bookmark body service.SaveBookmarkRequest true "Bookmark data"
// @Success 200 {object} service.BookmarkResponse "Bookmark updated"
// @Failure 400 {object} ErrorResponse "Invalid id, missing url or tags"
// @Failure 404 {object} ErrorResponse "Bookmark not found"
// @Failure 500 {object} ErrorResponse "Save failed"
// @Security BearerAuth
// @Router /bookmarks/{id} [put]
func (h *BookmarkHandler) UpdateBookmark(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.SaveBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	bookmark, err := h.service.SaveBookmark(&req, &id)
	if err != nil {
		respondError(c, err, "Failed to save bookmark")
		return
	}

	c.JSON(http.StatusOK, bookmark)
}

// GetBookmark handles GET /bookmarks/:id
// @Summary Get a bookmark
// @Tags bookmarks
// @Produce json
// @Param id path string true "Bookmark ID (UUID)"
// @Success 200 {object} service.BookmarkResponse "Bookmark with its tags"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Bookmark not found"
// @Security BearerAuth
// @Router /bookmarks/{id} [get]
func (h *BookmarkHandler) GetBookmark(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	bookmark, err := h.service.GetBookmark(id)
	if err != nil {
		respondError(c, err, "Failed to get bookmark")
		return
	}

	c.JSON(http.StatusOK, bookmark)
}

// DeleteBookmark handles DELETE /bookmarks/:id
// @Summary Delete a bookmark
// @Description Delete a bookmark and its tag associations; tags themselves are kept
// @Tags bookmarks
// @Param id path string true "Bookmark ID (UUID)"
// @Success 204 "Bookmark deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Bookmark not found"
// @Security BearerAuth
// @Router /bookmarks/{id} [delete]
func (h *BookmarkHandler) DeleteBookmark(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBookmark(id); err != nil {
		respondError(c, err, "Failed to delete bookmark")
		return
	}

	c.Status(http.StatusNoContent)
}

// LookupBookmarks handles GET /bookmarks/lookup
// @Summary Look bookmarks up by id, url or title
// @Description Exact match on the first parameter given, in the order id, url, title
// @Tags bookmarks
// @Produce json
// @Param id query string false "Bookmark ID (UUID)"
// @Param url query string false "Exact URL"
// @Param title query string false "Exact title"
// @Success 200 {object} service.BookmarkListResponse "Matching bookmarks"
// @Failure 400 {object} ErrorResponse "No lookup key given"
// @Failure 404 {object} ErrorResponse "No bookmark with that id"
// @Security BearerAuth
// @Router /bookmarks/lookup [get]
func (h *BookmarkHandler) LookupBookmarks(c *gin.Context) {
	query := repository.FindQuery{URL: c.Query("url"), Title: c.Query("title")}
	if idStr := c.Query("id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid bookmark ID: invalid UUID format"})
			return
		}
		query.ID = &id
	}

	bookmarks, err := h.service.FindBookmarks(query)
	if err != nil {
		respondError(c, err, "Failed to look up bookmarks")
		return
	}

	c.JSON(http.StatusOK, service.BookmarkListResponse{Bookmarks: bookmarks, Total: len(bookmarks)})
}

// PrepareDraft handles GET /bookmarks/draft
// @Summary Prefill the add form
// @Description Return the existing bookmark for url or title with its tags, or tag suggestions from the title
// @Tags bookmarks
// @Produce json
// @Param url query string false "Page URL"
// @Param title query string false "Page title"
// @Param notes query string false "Notes"
// @Success 200 {object} service.DraftResponse "Form data"
// @Failure 400 {object} ErrorResponse "Neither url nor title given"
// @Security BearerAuth
// @Router /bookmarks/draft [get]
func (h *BookmarkHandler) PrepareDraft(c *gin.Context) {
	draft, err := h.service.PrepareDraft(c.Query("url"), c.Query("title"), c.Query("notes"))
	if err != nil {
		respondError(c, err, "Failed to prepare bookmark")
		return
	}

	c.JSON(http.StatusOK, draft)
}

// SearchBookmarks handles GET /bookmarks/search
// @Summary Search bookmarks
// @Description Blank term lists every bookmark; otherwise match url or title substrings (case-insensitive) or an exact tag name
// @Tags bookmarks
// @Produce json
// @Param t query string false "Search term"
// @Success 200 {object} service.BookmarkListResponse "Matching bookmarks, newest first"
// @Security BearerAuth
// @Router /bookmarks/search [get]
func (h *BookmarkHandler) SearchBookmarks(c *gin.Context) {
	result, err := h.service.SearchBookmarks(c.Query("t"))
	if err != nil {
		respondError(c, err, "Failed to search bookmarks")
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchGrouped handles GET /bookmarks/search/grouped
// @Summary Search bookmarks grouped by first tag
// @Tags bookmarks
// @Produce json
// @Param t query string false "Search term"
// @Success 200 {object} service.GroupedBookmarksResponse "Results filed under each bookmark's first tag"
// @Security BearerAuth
// @Router /bookmarks/search/grouped [get]
func (h *BookmarkHandler) SearchGrouped(c *gin.Context) {
	result, err := h.service.SearchGrouped(c.Query("t"))
	if err != nil {
		respondError(c, err, "Failed to search bookmarks")
		return
	}

	c.JSON(http.StatusOK, result)
}

// MostRecent handles GET /bookmarks/recent
// @Summary Most recent tagged bookmarks
// @Tags bookmarks
// @Produce json
// @Param limit query int false "Maximum number of bookmarks" default(100)
// @Success 200 {object} service.BookmarkListResponse "Newest first"
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Security BearerAuth
// @Router /bookmarks/recent [get]
func (h *BookmarkHandler) MostRecent(c *gin.Context) {
	limit, ok := parseLimit(c, service.DefaultRecentLimit)
	if !ok {
		return
	}

	result, err := h.service.MostRecentBookmarks(limit)
	if err != nil {
		respondError(c, err, "Failed to get recent bookmarks")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Random handles GET /bookmarks/random
// @Summary Random tagged bookmarks
// @Tags bookmarks
// @Produce json
// @Param limit query int false "Maximum number of bookmarks" default(10)
// @Success 200 {object} service.BookmarkListResponse "Random sample"
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Security BearerAuth
// @Router /bookmarks/random [get]
func (h *BookmarkHandler) Random(c *gin.Context) {
	limit, ok := parseLimit(c, service.DefaultRandomLimit)
	if !ok {
		return
	}

	result, err := h.service.RandomBookmarks(limit)
	if err != nil {
		respondError(c, err, "Failed to get random bookmarks")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Count handles GET /bookmarks/count
// @Summary Count bookmarks
// @Tags bookmarks
// @Produce json
// @Success 200 {object} CountResponse "Total number of bookmarks"
// @Security BearerAuth
// @Router /bookmarks/count [get]
func (h *BookmarkHandler) Count(c *gin.Context) {
	total, err := h.service.TotalBookmarksCount()
	if err != nil {
		respondError(c, err, "Failed to count bookmarks")
		return
	}

	c.JSON(http.StatusOK, CountResponse{Total: total})
}

// ByTag handles GET /tags/:name/bookmarks
// @Summary Bookmarks carrying a tag
// @Tags tags
// @Produce json
// @Param name path string true "Tag name"
// @Success 200 {object} service.BookmarkListResponse "Newest first"
// @Security BearerAuth
// @Router /tags/{name}/bookmarks [get]
func (h *BookmarkHandler) ByTag(c *gin.Context) {
	result, err := h.service.BookmarksByTag(c.Param("name"))
	if err != nil {
		respondError(c, err, "Failed to get bookmarks by tag")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Overview handles GET /overview
// @Summary Landing page data
// @Description Tag groups of three, tag and bookmark totals, the 100 most recent and 10 random bookmarks
// @Tags bookmarks
// @Produce json
// @Success 200 {object} service.OverviewResponse "Overview"
// @Security BearerAuth
// @Router /overview [get]
func (h *BookmarkHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview()
	if err != nil {
		respondError(c, err, "Failed to build overview")
		return
	}

	c.JSON(http.StatusOK, overview)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid bookmark ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

func parseLimit(c *gin.Context, fallback int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return fallback, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrInvalidLimit.Error()})
		return 0, false
	}
	return limit, true
}
