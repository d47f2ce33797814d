package auth

import (
	"net/http"

	apperrors "bookmarks-backend/internal/errors"
	"bookmarks-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login
// @Summary Log in as the owner
// @Description Exchange the configured owner credentials for a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Owner credentials"
// @Success 200 {object} LoginResponse "Signed access token"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid username or password"
// @Failure 500 {object} map[string]interface{} "Token signing failed"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	log := logger.WithContext(c.Request.Context()).WithField("username", req.Username)
	resp, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			log.Warn("Rejected login attempt")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	log.Info("Owner logged in")
	c.JSON(http.StatusOK, resp)
}
