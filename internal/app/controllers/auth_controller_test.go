package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tullab/tullab/internal/app/models/dto"
	"github.com/tullab/tullab/internal/app/services"
	"github.com/tullab/tullab/internal/pkg/apperrors"
)

func newAuthRouter(svc services.AuthService) *gin.Engine {
	ctrl := NewAuthController(svc)

	router := gin.New()
	router.POST("/api/v1/auth/login", ctrl.Login)
	return router
}

func TestLogin(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{token: "signed.jwt.token", expiresIn: 3600})

	body := []byte(`{"username":"admin","password":"correct horse battery staple"}`)
	w := performRequest(router, http.MethodPost, "/api/v1/auth/login", body)

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var resp dto.LoginResponse
	decodeSuccess(t, w, &resp)
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{err: apperrors.ErrInvalidCredentials})

	body := []byte(`{"username":"admin","password":"wrong"}`)
	w := performRequest(router, http.MethodPost, "/api/v1/auth/login", body)

	require.Equal(t, http.StatusUnauthorized, w.Code, "body: %s", w.Body.String())
	env := decodeError(t, w)
	assert.Equal(t, string(dto.ErrorCodeInvalidCredentials), env.Error.Code)
}

func TestLoginBindingErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"username":"admin"}`},
		{"missing username", `{"password":"secret"}`},
		{"malformed json", `{"username"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(&fakeAuthService{token: "unused"})

			w := performRequest(router, http.MethodPost, "/api/v1/auth/login", []byte(tt.body))

			require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", w.Body.String())
			env := decodeError(t, w)
			assert.Equal(t, string(dto.ErrorCodeValidationFailed), env.Error.Code)
		})
	}
}
