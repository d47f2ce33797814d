package handlers_test

import (
	"net/http"
	"testing"

	"bookmarks-backend/internal/api/handlers"
	"bookmarks-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	handler := handlers.NewHealthHandler(db)

	h := testutils.SetupHTTPTest()
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)
	h.Router.GET("/health/live", handler.Live)

	t.Run("healthy store", func(t *testing.T) {
		var got handlers.HealthResponse
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &got)
		assert.Equal(t, "healthy", got.Status)
		assert.Equal(t, "healthy", got.Services["database"])
	})

	t.Run("ready", func(t *testing.T) {
		var got map[string]interface{}
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusOK, &got)
		assert.Equal(t, true, got["ready"])
	})

	t.Run("live", func(t *testing.T) {
		w := h.MakeRequest(http.MethodGet, "/health/live", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("closed store", func(t *testing.T) {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		var got handlers.HealthResponse
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &got)
		assert.Equal(t, "unhealthy", got.Status)

		w := h.MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
