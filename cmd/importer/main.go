package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"bookmarks-backend/internal/config"
	"bookmarks-backend/internal/database"
	"bookmarks-backend/internal/importer"
	"bookmarks-backend/internal/logger"
	"bookmarks-backend/internal/repository"
	"bookmarks-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	dataDir := flag.String("dir", "scripts/data", "directory of bookmark YAML files")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load config: ", err)
	}
	logger.Setup(cfg.LogLevel, os.Stdout)

	// Postgres may still be starting when run next to docker compose
	db, err := connectWithRetry(cfg.DatabaseDriver, cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	entries, err := importer.LoadDir(*dataDir)
	if err != nil {
		logrus.Fatal("Failed to load bookmark files: ", err)
	}

	bookmarks := service.NewBookmarkService(
		repository.NewBookmarkRepository(db),
		repository.NewTagRepository(db),
		validator.New(),
	)
	result, err := importer.New(bookmarks).Import(entries)
	if err != nil {
		logrus.Fatal("Import failed: ", err)
	}

	fmt.Printf("created=%d updated=%d skipped=%d\n", result.Created, result.Updated, result.Skipped)
}

// connectWithRetry attempts to initialize the DB with retries to wait for database readiness.
func connectWithRetry(driver, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: gormlogger.Silent}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(driver, dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
