package testutils

import (
	"path/filepath"
	"testing"
	"time"

	"bookmarks-backend/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a migrated SQLite database in a temporary directory owned by t.
// The database is closed before the directory is removed.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bookmarks.db")
	db, err := database.Initialize(database.DriverSQLite, path, &database.Options{
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Clock is a manual clock for deterministic created_at ordering in tests
type Clock struct {
	current time.Time
	step    time.Duration
}

// NewClock starts at start and advances by step on every call to Now
func NewClock(start time.Time, step time.Duration) *Clock {
	return &Clock{current: start, step: step}
}

// Now returns the current time and advances the clock
func (c *Clock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}
