package handlers

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "bookmarks-backend/internal/errors"
	"bookmarks-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TagHandler handles HTTP requests for tags
type TagHandler struct {
	service service.TagServiceInterface
}

// NewTagHandler creates a new tag handler
func NewTagHandler(service service.TagServiceInterface) *TagHandler {
	return &TagHandler{service: service}
}

// SuggestResponse represents suggested tag names
type SuggestResponse struct {
	Tags []string `json:"tags"`
}

// ListTags handles GET /tags
// @Summary List tags
// @Description All tag names sorted, in consecutive groups of group_size
// @Tags tags
// @Produce json
// @Param group_size query int false "Tags per group" default(3)
// @Success 200 {object} service.TagListResponse "Grouped tag names"
// @Failure 400 {object} ErrorResponse "Invalid group size"
// @Security BearerAuth
// @Router /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	groupSize := service.DefaultTagGroupSize
	if raw := c.Query("group_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrInvalidGroupSize.Error()})
			return
		}
		groupSize = n
	}

	result, err := h.service.ListTags(groupSize)
	if err != nil {
		respondError(c, err, "Failed to list tags")
		return
	}

	c.JSON(http.StatusOK, result)
}

// SuggestTags handles GET /tags/suggest
// @Summary Suggest existing tags
// @Description Return the given words (or the words of title) that are existing tag names
// @Tags tags
// @Produce json
// @Param words query string false "Space or comma separated candidate words"
// @Param title query string false "Page title to take words from when words is empty"
// @Success 200 {object} SuggestResponse "Existing tag names, sorted"
// @Security BearerAuth
// @Router /tags/suggest [get]
func (h *TagHandler) SuggestTags(c *gin.Context) {
	var words []string
	for _, value := range c.QueryArray("words") {
		words = append(words, strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})...)
	}

	var (
		tags []string
		err  error
	)
	if len(words) > 0 {
		tags, err = h.service.SuggestTags(words)
	} else {
		tags, err = h.service.SuggestTagsForTitle(c.Query("title"))
	}
	if err != nil {
		respondError(c, err, "Failed to suggest tags")
		return
	}

	c.JSON(http.StatusOK, SuggestResponse{Tags: tags})
}
