package auth

import (
	"fmt"
	"time"

	"bookmarks-backend/internal/config"
)

// AuthConfig holds the single owner's credentials and token settings
type AuthConfig struct {
	Username  string
	Password  string
	JWTSecret string
	TokenTTL  time.Duration
}

// NewAuthConfig builds the auth configuration from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		Username:  cfg.OwnerUsername,
		Password:  cfg.OwnerPassword,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  time.Duration(cfg.TokenTTLMinutes) * time.Minute,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Username == "" || c.Password == "" {
		return fmt.Errorf("owner username and password are required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
