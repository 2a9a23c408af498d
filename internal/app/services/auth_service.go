package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/pkg/apperrors"
	"github.com/tullab/tullab/internal/pkg/auth"
	"github.com/tullab/tullab/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, expiresIn int, err error)
}

// authServiceImpl implements the AuthService interface.
// The board has a single admin account, configured at startup; everyone
// else reads without logging in.
type authServiceImpl struct {
	jwtService    *auth.JWTService
	adminUsername string
	adminPassHash string
}

// NewAuthService creates a new auth service instance. The configured admin
// password is hashed here so the plain text never outlives startup.
func NewAuthService(jwtService *auth.JWTService, adminUsername, adminPassword string) (AuthService, error) {
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &authServiceImpl{
		jwtService:    jwtService,
		adminUsername: adminUsername,
		adminPassHash: hash,
	}, nil
}

// Login verifies the admin credentials and issues an access token
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (string, int, error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passwordMatch := auth.CheckPassword(s.adminPassHash, password)

	if !usernameMatch || !passwordMatch {
		logger.Warn().Str("username", username).Msg("Failed login attempt")
		return "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(s.adminUsername, models.RoleAdmin)
	if err != nil {
		return "", 0, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, expiresIn, nil
}
