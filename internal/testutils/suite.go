package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"bookmarks-backend/internal/config"
	"bookmarks-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
)

const (
	pgUser     = "bookmarks"
	pgPassword = "bookmarks"
	pgDatabase = "bookmarks_test"
)

// one Postgres container per test process, shared by every suite
var (
	pgOnce     sync.Once
	pgInitErr  error
	pgPool     *dockertest.Pool
	pgResource *dockertest.Resource
	pgDB       *gorm.DB
	pgConfig   *config.Config
)

// PostgresSuite gives an integration suite access to the shared Postgres store
type PostgresSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupPostgresSuite starts the shared Postgres container on first use and
// returns a handle on the migrated database.
func SetupPostgresSuite(t *testing.T) *PostgresSuite {
	pgOnce.Do(func() { pgInitErr = startPostgres() })
	if pgInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", pgInitErr)
	}
	return &PostgresSuite{DB: pgDB, Config: pgConfig}
}

// Reset empties the bookmark tables. Associations go first so no foreign key is violated.
func (s *PostgresSuite) Reset() {
	if s.DB == nil {
		return
	}
	for _, table := range []string{"bookmark_tags", "bookmarks", "tags"} {
		if s.DB.Migrator().HasTable(table) {
			s.DB.Exec(`DELETE FROM "` + table + `"`)
		}
	}
}

// CleanupSharedContainer closes the pool and purges the container; TestMain calls it once.
func CleanupSharedContainer() {
	if pgDB != nil {
		if sqlDB, err := pgDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		pgDB = nil
	}
	if pgPool != nil && pgResource != nil {
		log.Printf("Purging Docker container: %s", pgResource.Container.Name)
		if err := pgPool.Purge(pgResource); err != nil {
			log.Printf("WARN: could not purge shared resource: %v", err)
		}
		pgResource = nil
		pgPool = nil
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pgPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	pgResource = resource

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, hostPort, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		gdb, err := database.Initialize(database.DriverPostgres, dsn, nil)
		if err != nil {
			return err
		}
		pgDB = gdb
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	pgConfig = &config.Config{
		Environment:    "test",
		LogLevel:       "debug",
		DatabaseDriver: database.DriverPostgres,
		DatabaseURL:    dsn,
	}

	log.Printf("Shared Postgres ready on %s", hostPort)
	return nil
}
