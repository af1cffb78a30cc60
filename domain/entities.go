package domain

import "time"

// User represents a registered account
type User struct {
	ID           uint
	Email        string
	PasswordHash string `gorm:"column:password"`
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is an opaque credential exchanged for new access tokens.
// A user owns at most one at a time.
type RefreshToken struct {
	ID         uint
	TokenValue string
	ExpiresAt  time.Time
	UserID     uint
	User       *User
}

// Expired reports whether the token deadline passed at instant now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// PasswordReset is a persisted OTP record gating a password change.
// Several may coexist for the same user.
type PasswordReset struct {
	ID        uint
	OTP       int
	ExpiresAt time.Time
	UserID    uint
}

// Expired reports whether the OTP deadline passed at instant now.
func (p *PasswordReset) Expired(now time.Time) bool {
	return p.ExpiresAt.Before(now)
}

// AuthRequest represents authentication credentials
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims represents verified access token claims
type TokenClaims struct {
	Subject   string `json:"sub"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Movie represents a catalog entry
type Movie struct {
	ID          uint
	Title       string
	Director    string
	Studio      string
	Cast        []string
	ReleaseYear int
	Poster      string
	PosterURL   string
}

// MoviePage is one page of a sorted movie listing
type MoviePage struct {
	Movies        []*Movie
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
	IsLast        bool
}
