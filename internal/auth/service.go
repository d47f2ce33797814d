package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	apperrors "bookmarks-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "bookmarks-backend"

// AuthService authenticates the owner and issues session tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Username             string `json:"username" example:"owner"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest represents the owner's credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"owner"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"604800"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, now: time.Now}, nil
}

// Login checks the owner's credentials and returns a signed token
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.config.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.config.Password)) == 1
	if !userOK || !passOK {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(username)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL.Seconds()),
	}, nil
}

// GenerateJWT creates a JWT token for the owner
func (s *AuthService) GenerateJWT(username string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("invalid token: %v", err))
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.Username == s.config.Username {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
