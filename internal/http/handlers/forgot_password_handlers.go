package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// ForgotPasswordHandler handles password reset endpoints
type ForgotPasswordHandler struct {
	resetService domain.PasswordResetService
}

// NewForgotPasswordHandler creates new forgot password handler
func NewForgotPasswordHandler(resetService domain.PasswordResetService) *ForgotPasswordHandler {
	return &ForgotPasswordHandler{resetService: resetService}
}

// ChangePasswordRequest represents the password change request body
type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// VerifyMail generates an OTP for the account and mails it
func (h *ForgotPasswordHandler) VerifyMail(c *gin.Context) {
	email := c.Param("email")

	if _, err := h.resetService.IssueOTP(c.Request.Context(), email); err != nil {
		status := statusForResetError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to registered email"})
}

// VerifyOTP checks the supplied OTP against the account's pending requests
func (h *ForgotPasswordHandler) VerifyOTP(c *gin.Context) {
	email := c.Param("email")
	otp, err := strconv.Atoi(c.Param("otp"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OTP must be numeric"})
		return
	}

	if err := h.resetService.VerifyOTP(c.Request.Context(), email, otp); err != nil {
		status := statusForResetError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified"})
}

// ChangePassword sets a new password for the account
func (h *ForgotPasswordHandler) ChangePassword(c *gin.Context) {
	email := c.Param("email")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.resetService.ChangePassword(c.Request.Context(), email, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		status := statusForResetError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

func statusForResetError(err error) int {
	switch err {
	case domain.ErrUserNotFound:
		return http.StatusNotFound
	case domain.ErrOTPInvalid, domain.ErrOTPExpired, domain.ErrPasswordMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
