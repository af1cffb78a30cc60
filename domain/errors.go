package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
)

// Refresh token errors
var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token has expired")
)

// Access token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Password reset errors
var (
	ErrOTPInvalid       = errors.New("invalid otp code")
	ErrOTPExpired       = errors.New("otp has expired")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Catalog errors
var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrPosterExists  = errors.New("poster file already exists")
	ErrEmptyFile     = errors.New("uploaded file is empty")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)
