package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Yatnesh1410/MovieAPI/domain"
	"github.com/Yatnesh1410/MovieAPI/internal/mocks"
)

func forgotTestRouter(svc domain.PasswordResetService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewForgotPasswordHandler(svc)
	r := gin.New()
	r.POST("/forgot-password/verify-mail/:email", h.VerifyMail)
	r.POST("/forgot-password/verify-otp/:otp/:email", h.VerifyOTP)
	r.POST("/forgot-password/change-password/:email", h.ChangePassword)
	return r
}

func TestForgotPasswordHandler_VerifyMail(t *testing.T) {
	tests := []struct {
		name       string
		svc        *mocks.MockPasswordResetService
		wantStatus int
	}{
		{
			name: "ok",
			svc: &mocks.MockPasswordResetService{
				IssueOTPFunc: func(ctx context.Context, email string) (*domain.PasswordReset, error) {
					return &domain.PasswordReset{OTP: 123456}, nil
				},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown user",
			svc:        &mocks.MockPasswordResetService{}, // default returns ErrUserNotFound
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := forgotTestRouter(tt.svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/forgot-password/verify-mail/user@example.com", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestForgotPasswordHandler_VerifyOTP(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		svc        *mocks.MockPasswordResetService
		wantStatus int
	}{
		{
			name: "ok",
			path: "/forgot-password/verify-otp/123456/user@example.com",
			svc: &mocks.MockPasswordResetService{
				VerifyOTPFunc: func(ctx context.Context, email string, otp int) error {
					return nil
				},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong code",
			path:       "/forgot-password/verify-otp/999999/user@example.com",
			svc:        &mocks.MockPasswordResetService{}, // default returns ErrOTPInvalid
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "expired code",
			path: "/forgot-password/verify-otp/123456/user@example.com",
			svc: &mocks.MockPasswordResetService{
				VerifyOTPFunc: func(ctx context.Context, email string, otp int) error {
					return domain.ErrOTPExpired
				},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-numeric code",
			path:       "/forgot-password/verify-otp/abcdef/user@example.com",
			svc:        &mocks.MockPasswordResetService{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := forgotTestRouter(tt.svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestForgotPasswordHandler_ChangePassword(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *mocks.MockPasswordResetService
		wantStatus int
	}{
		{
			name:       "ok",
			body:       `{"new_password":"newsecret1","confirm_password":"newsecret1"}`,
			svc:        &mocks.MockPasswordResetService{},
			wantStatus: http.StatusOK,
		},
		{
			name: "mismatch",
			body: `{"new_password":"newsecret1","confirm_password":"different1"}`,
			svc: &mocks.MockPasswordResetService{
				ChangePasswordFunc: func(ctx context.Context, email, newPassword, confirmPassword string) error {
					return domain.ErrPasswordMismatch
				},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			body:       `{"new_password":"short","confirm_password":"short"}`,
			svc:        &mocks.MockPasswordResetService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			body: `{"new_password":"newsecret1","confirm_password":"newsecret1"}`,
			svc: &mocks.MockPasswordResetService{
				ChangePasswordFunc: func(ctx context.Context, email, newPassword, confirmPassword string) error {
					return domain.ErrUserNotFound
				},
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := forgotTestRouter(tt.svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/forgot-password/change-password/user@example.com", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
