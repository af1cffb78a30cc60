package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yatnesh1410/MovieAPI/domain"
	"github.com/Yatnesh1410/MovieAPI/internal/mocks"
)

func authTestRouter(svc domain.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/api/v1/auth/register", h.Register)
	r.POST("/api/v1/auth/login", h.Login)
	r.POST("/api/v1/auth/refresh", h.Refresh)
	return r
}

func okAuthResult() *domain.AuthResult {
	return &domain.AuthResult{
		User:         &domain.User{ID: 1, Email: "user@example.com", Role: "user"},
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    1500,
	}
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *mocks.MockAuthService
		wantStatus int
	}{
		{
			name: "created",
			body: `{"email":"user@example.com","password":"secret123"}`,
			svc: &mocks.MockAuthService{
				RegisterFunc: func(ctx context.Context, email, password, role string) (*domain.AuthResult, error) {
					return okAuthResult(), nil
				},
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing email",
			body:       `{"password":"secret123"}`,
			svc:        &mocks.MockAuthService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			body:       `{"email":"user@example.com","password":"short"}`,
			svc:        &mocks.MockAuthService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       `{"email":"user@example.com","password":"secret123"}`,
			svc:        &mocks.MockAuthService{}, // default returns ErrUserAlreadyExists
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authTestRouter(tt.svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthHandler_Register_DefaultsRole(t *testing.T) {
	var gotRole string
	svc := &mocks.MockAuthService{
		RegisterFunc: func(ctx context.Context, email, password, role string) (*domain.AuthResult, error) {
			gotRole = role
			return okAuthResult(), nil
		},
	}
	r := authTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{"email":"user@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "user", gotRole)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *mocks.MockAuthService
		wantStatus int
	}{
		{
			name: "ok",
			body: `{"email":"user@example.com","password":"secret123"}`,
			svc: &mocks.MockAuthService{
				LoginFunc: func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return okAuthResult(), nil
				},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad credentials",
			body:       `{"email":"user@example.com","password":"wrong-pass"}`,
			svc:        &mocks.MockAuthService{}, // default returns ErrInvalidCredentials
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			svc:        &mocks.MockAuthService{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authTestRouter(tt.svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthHandler_Login_ResponseBody(t *testing.T) {
	svc := &mocks.MockAuthService{
		LoginFunc: func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return okAuthResult(), nil
		},
	}
	r := authTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"user@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "access-token", body["access_token"])
	assert.Equal(t, "refresh-token", body["refresh_token"])
	assert.EqualValues(t, 1500, body["expires_in"])
}

func TestAuthHandler_Refresh(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *mocks.MockAuthService
		wantStatus int
	}{
		{
			name: "ok",
			body: `{"refresh_token":"refresh-token"}`,
			svc: &mocks.MockAuthService{
				RefreshFunc: func(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
					return okAuthResult(), nil
				},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown token",
			body:       `{"refresh_token":"ghost"}`,
			svc:        &mocks.MockAuthService{}, // default returns ErrRefreshTokenNotFound
			wantStatus: http.StatusNotFound,
		},
		{
			name: "expired token",
			body: `{"refresh_token":"stale"}`,
			svc: &mocks.MockAuthService{
				RefreshFunc: func(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
					return nil, domain.ErrRefreshTokenExpired
				},
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing token",
			body:       `{}`,
			svc:        &mocks.MockAuthService{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authTestRouter(tt.svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
