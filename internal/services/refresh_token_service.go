package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// RefreshTokenServiceImpl implements domain.RefreshTokenService.
//
// A user owns at most one refresh token row, enforced by a unique constraint
// on user_id. An existing row is reused as-is, even when its deadline has
// already passed: a stale token then simply fails the next Verify, which
// deletes it, so the following login mints a fresh one.
type RefreshTokenServiceImpl struct {
	userRepo  domain.UserRepository
	tokenRepo domain.RefreshTokenRepository
	ttl       time.Duration

	now      func() time.Time
	newToken func() string
}

// NewRefreshTokenService creates a new refresh token service
func NewRefreshTokenService(userRepo domain.UserRepository, tokenRepo domain.RefreshTokenRepository, ttl time.Duration) *RefreshTokenServiceImpl {
	return &RefreshTokenServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		ttl:       ttl,
		now:       time.Now,
		newToken:  uuid.NewString,
	}
}

// CreateOrReuse implements domain.RefreshTokenService
func (s *RefreshTokenServiceImpl) CreateOrReuse(ctx context.Context, email string) (*domain.RefreshToken, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	existing, err := s.tokenRepo.FindByUserID(ctx, user.ID)
	if err == nil {
		if existing.User == nil {
			existing.User = user
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrRefreshTokenNotFound) {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	token := &domain.RefreshToken{
		TokenValue: s.newToken(),
		ExpiresAt:  s.now().Add(s.ttl),
		UserID:     user.ID,
		User:       user,
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		// A concurrent login won the insert; the unique constraint on
		// user_id keeps the relation 1:1, so adopt the winner's token.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.tokenRepo.FindByUserID(ctx, user.ID)
		}
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return token, nil
}

// Verify implements domain.RefreshTokenService. Expiry is a one-shot
// deadline: detection deletes the row and the caller must log in again.
func (s *RefreshTokenServiceImpl) Verify(ctx context.Context, tokenValue string) (*domain.RefreshToken, error) {
	token, err := s.tokenRepo.FindByTokenValue(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, domain.ErrRefreshTokenNotFound) {
			return nil, domain.ErrRefreshTokenNotFound
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if token.Expired(s.now()) {
		if err := s.tokenRepo.Delete(ctx, token.ID); err != nil {
			return nil, fmt.Errorf("failed to delete expired refresh token: %w", err)
		}
		return nil, domain.ErrRefreshTokenExpired
	}

	return token, nil
}

var _ domain.RefreshTokenService = (*RefreshTokenServiceImpl)(nil)
