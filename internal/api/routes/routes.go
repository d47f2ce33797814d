package routes

import (
	"fmt"

	"bookmarks-backend/internal/api/handlers"
	"bookmarks-backend/internal/api/middleware"
	"bookmarks-backend/internal/auth"
	"bookmarks-backend/internal/config"
	"bookmarks-backend/internal/repository"
	"bookmarks-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize repositories
	bookmarkRepo := repository.NewBookmarkRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// Initialize services
	bookmarkService := service.NewBookmarkService(bookmarkRepo, tagRepo, validator)
	tagService := service.NewTagService(tagRepo)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)
	tagHandler := handlers.NewTagHandler(tagService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/api/auth/login", authHandler.Login)

	// API v1 routes - all endpoints require the owner's token
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/overview", bookmarkHandler.Overview)

		bookmarks := v1.Group("/bookmarks")
		{
			bookmarks.GET("/search", bookmarkHandler.SearchBookmarks)
			bookmarks.GET("/search/grouped", bookmarkHandler.SearchGrouped)
			bookmarks.GET("/lookup", bookmarkHandler.LookupBookmarks)
			bookmarks.GET("/draft", bookmarkHandler.PrepareDraft)
			bookmarks.GET("/count", bookmarkHandler.Count)
			bookmarks.GET("/recent", bookmarkHandler.MostRecent)
			bookmarks.GET("/random", bookmarkHandler.Random)
			bookmarks.GET("/:id", bookmarkHandler.GetBookmark)
			bookmarks.POST("", bookmarkHandler.CreateBookmark)
			bookmarks.PUT("/:id", bookmarkHandler.UpdateBookmark)
			bookmarks.DELETE("/:id", bookmarkHandler.DeleteBookmark)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", tagHandler.ListTags)
			tags.GET("/suggest", tagHandler.SuggestTags)
			tags.GET("/:name/bookmarks", bookmarkHandler.ByTag)
		}
	}

	return router, nil
}
