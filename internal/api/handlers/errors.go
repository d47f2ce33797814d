package handlers

import (
	"net/http"

	apperrors "bookmarks-backend/internal/errors"
	"bookmarks-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP status codes. Unexpected errors
// are logged and reported without their details.
func respondError(c *gin.Context, err error, msg string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(msg)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
	}
}
