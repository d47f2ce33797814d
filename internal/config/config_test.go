package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; viper treats empty values as unset
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "LOG_LEVEL",
		"DB_DRIVER", "DATABASE_URL", "SQLITE_PATH",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
		"OWNER_USERNAME", "OWNER_PASSWORD", "JWT_SECRET", "TOKEN_TTL_MINUTES",
		"ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func setOwner(t *testing.T) {
	t.Helper()
	t.Setenv("OWNER_USERNAME", "owner")
	t.Setenv("OWNER_PASSWORD", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	setOwner(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "bookmarks.db", cfg.DatabaseURL)
	assert.Equal(t, 7*24*60, cfg.TokenTTLMinutes)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5000"}, cfg.AllowedOrigins)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	setOwner(t)
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SQLITE_PATH", "/tmp/marks.db")
	t.Setenv("TOKEN_TTL_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/marks.db", cfg.DatabaseURL)
	assert.Equal(t, 15, cfg.TokenTTLMinutes)
	assert.Equal(t, "owner", cfg.OwnerUsername)
}

func TestLoad_BuildsPostgresURL(t *testing.T) {
	clearEnv(t)
	setOwner(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "marks")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "library")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://marks:pw@db:5432/library?sslmode=disable", cfg.DatabaseURL)
}

func TestLoad_ExplicitDatabaseURLWins(t *testing.T) {
	clearEnv(t)
	setOwner(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://elsewhere/db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://elsewhere/db", cfg.DatabaseURL)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing owner",
			env:     map[string]string{},
			wantErr: "OWNER_USERNAME and OWNER_PASSWORD are required",
		},
		{
			name:    "unsupported driver",
			env:     map[string]string{"OWNER_USERNAME": "owner", "OWNER_PASSWORD": "secret", "DB_DRIVER": "mysql"},
			wantErr: `unsupported DB_DRIVER "mysql"`,
		},
		{
			name:    "default secret in production",
			env:     map[string]string{"OWNER_USERNAME": "owner", "OWNER_PASSWORD": "secret", "ENVIRONMENT": "production"},
			wantErr: "JWT_SECRET must be set in production",
		},
		{
			name:    "non-positive token ttl",
			env:     map[string]string{"OWNER_USERNAME": "owner", "OWNER_PASSWORD": "secret", "TOKEN_TTL_MINUTES": "-5"},
			wantErr: "TOKEN_TTL_MINUTES must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_ProductionWithSecret(t *testing.T) {
	clearEnv(t)
	setOwner(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "a-real-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
