package domain

import (
	"context"
	"io"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// RefreshTokenRepository defines refresh token data access operations.
// The user_id column carries a unique constraint so the one-token-per-user
// invariant holds under concurrent inserts.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	FindByTokenValue(ctx context.Context, tokenValue string) (*RefreshToken, error)
	FindByUserID(ctx context.Context, userID uint) (*RefreshToken, error)
	Delete(ctx context.Context, id uint) error
}

// PasswordResetRepository defines OTP record data access operations
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *PasswordReset) error
	FindByOTPAndUser(ctx context.Context, otp int, userID uint) (*PasswordReset, error)
	Delete(ctx context.Context, id uint) error
}

// MovieRepository defines movie data access operations
type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	FindByID(ctx context.Context, id uint) (*Movie, error)
	FindAll(ctx context.Context) ([]*Movie, error)
	FindPage(ctx context.Context, page, size int, sortBy, dir string) ([]*Movie, int64, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id uint) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}

// RefreshTokenService defines the refresh token lifecycle
type RefreshTokenService interface {
	CreateOrReuse(ctx context.Context, email string) (*RefreshToken, error)
	Verify(ctx context.Context, tokenValue string) (*RefreshToken, error)
}

// PasswordResetService defines the OTP-based password reset flow
type PasswordResetService interface {
	IssueOTP(ctx context.Context, email string) (*PasswordReset, error)
	VerifyOTP(ctx context.Context, email string, otp int) error
	ChangePassword(ctx context.Context, email, newPassword, confirmPassword string) error
}

// MovieService defines catalog business logic
type MovieService interface {
	Add(ctx context.Context, movie *Movie, poster io.Reader, posterName string) (*Movie, error)
	Get(ctx context.Context, id uint) (*Movie, error)
	List(ctx context.Context) ([]*Movie, error)
	ListPage(ctx context.Context, page, size int, sortBy, dir string) (*MoviePage, error)
	Update(ctx context.Context, movie *Movie, poster io.Reader, posterName string) (*Movie, error)
	Delete(ctx context.Context, id uint) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines access token operations
type TokenService interface {
	GenerateAccessToken(email, role string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// MailService defines outbound mail operations
type MailService interface {
	SendEmail(to, subject, body string) error
}

// PosterStorage defines poster file operations
type PosterStorage interface {
	Save(filename string, r io.Reader) error
	Open(filename string) (io.ReadCloser, error)
	Remove(filename string) error
	Exists(filename string) bool
}

// MovieCache defines the read-through cache for catalog entries
type MovieCache interface {
	Get(ctx context.Context, id uint) (*Movie, bool)
	Set(ctx context.Context, movie *Movie)
	Invalidate(ctx context.Context, id uint)
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
