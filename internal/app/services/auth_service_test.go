package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/pkg/apperrors"
	"github.com/tullab/tullab/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (AuthService, *auth.JWTService) {
	t.Helper()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "tullab.test",
	})

	svc, err := NewAuthService(jwtService, "admin", "correct-horse")
	if err != nil {
		t.Fatalf("NewAuthService() error = %v", err)
	}
	return svc, jwtService
}

func TestLoginSuccess(t *testing.T) {
	svc, jwtService := newTestAuthService(t)

	token, expiresIn, err := svc.Login(context.Background(), "admin", "correct-horse")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "admin")
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("claims.Role = %q, want %q", claims.Role, models.RoleAdmin)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "wrong"},
		{name: "wrong username", username: "root", password: "correct-horse"},
		{name: "both wrong", username: "root", password: "wrong"},
		{name: "empty credentials", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tt.username, tt.password)
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}
