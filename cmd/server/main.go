package main

import (
	"bookmarks-backend/internal/api/routes"
	"bookmarks-backend/internal/config"
	"bookmarks-backend/internal/database"
	"bookmarks-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	_ "bookmarks-backend/docs" // This is needed for swag
)

//	@title			Bookmarks Backend API
//	@version		1.0
//	@description	Personal bookmark manager: bookmarks, tags, search and tag suggestions.

//	@host		localhost:5000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel, nil)

	gormLevel := gormlogger.Error
	if cfg.LogLevel == "debug" {
		gormLevel = gormlogger.Info
	}
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, &database.Options{LogLevel: gormLevel})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	logrus.WithFields(logrus.Fields{
		"port":   cfg.Port,
		"driver": cfg.DatabaseDriver,
	}).Info("Starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
