package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Yatnesh1410/MovieAPI/domain"
	"github.com/Yatnesh1410/MovieAPI/internal/mocks"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newRefreshService(userRepo *mocks.MockUserRepository, tokenRepo *mocks.MockRefreshTokenRepository) *RefreshTokenServiceImpl {
	svc := NewRefreshTokenService(userRepo, tokenRepo, 30*time.Second)
	svc.now = func() time.Time { return fixedNow }
	svc.newToken = func() string { return "token-1" }
	return svc
}

func TestRefreshTokenService_CreateOrReuse(t *testing.T) {
	user := &domain.User{ID: 7, Email: "user@example.com"}
	existing := &domain.RefreshToken{
		ID:         3,
		TokenValue: "existing-token",
		ExpiresAt:  fixedNow.Add(time.Minute),
		UserID:     7,
		User:       user,
	}

	tests := []struct {
		name      string
		userRepo  *mocks.MockUserRepository
		tokenRepo *mocks.MockRefreshTokenRepository
		wantToken string
		wantErr   error
	}{
		{
			name: "unknown user",
			userRepo: &mocks.MockUserRepository{
				FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				},
			},
			tokenRepo: &mocks.MockRefreshTokenRepository{},
			wantErr:   domain.ErrUserNotFound,
		},
		{
			name: "reuses existing token",
			userRepo: &mocks.MockUserRepository{
				FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
					return user, nil
				},
			},
			tokenRepo: &mocks.MockRefreshTokenRepository{
				FindByUserIDFunc: func(ctx context.Context, userID uint) (*domain.RefreshToken, error) {
					return existing, nil
				},
			},
			wantToken: "existing-token",
		},
		{
			name: "reuses token past its deadline",
			userRepo: &mocks.MockUserRepository{
				FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
					return user, nil
				},
			},
			tokenRepo: &mocks.MockRefreshTokenRepository{
				FindByUserIDFunc: func(ctx context.Context, userID uint) (*domain.RefreshToken, error) {
					return &domain.RefreshToken{
						ID:         3,
						TokenValue: "stale-token",
						ExpiresAt:  fixedNow.Add(-time.Hour),
						UserID:     7,
						User:       user,
					}, nil
				},
			},
			wantToken: "stale-token",
		},
		{
			name: "mints when none exists",
			userRepo: &mocks.MockUserRepository{
				FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
					return user, nil
				},
			},
			tokenRepo: &mocks.MockRefreshTokenRepository{
				FindByUserIDFunc: func(ctx context.Context, userID uint) (*domain.RefreshToken, error) {
					return nil, domain.ErrRefreshTokenNotFound
				},
			},
			wantToken: "token-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newRefreshService(tt.userRepo, tt.tokenRepo)

			token, err := svc.CreateOrReuse(context.Background(), "user@example.com")

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token.TokenValue != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, token.TokenValue)
			}
			if token.UserID != user.ID {
				t.Errorf("expected user id %d, got %d", user.ID, token.UserID)
			}
		})
	}
}

func TestRefreshTokenService_CreateOrReuse_NewTokenDeadline(t *testing.T) {
	userRepo := &mocks.MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		},
	}
	var created *domain.RefreshToken
	tokenRepo := &mocks.MockRefreshTokenRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*domain.RefreshToken, error) {
			return nil, domain.ErrRefreshTokenNotFound
		},
		CreateFunc: func(ctx context.Context, token *domain.RefreshToken) error {
			created = token
			return nil
		},
	}
	svc := newRefreshService(userRepo, tokenRepo)

	token, err := svc.CreateOrReuse(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected token to be persisted")
	}
	want := fixedNow.Add(30 * time.Second)
	if !token.ExpiresAt.Equal(want) {
		t.Errorf("expected deadline %v, got %v", want, token.ExpiresAt)
	}
}

func TestRefreshTokenService_CreateOrReuse_ConcurrentInsert(t *testing.T) {
	user := &domain.User{ID: 9, Email: "racer@example.com"}
	winner := &domain.RefreshToken{ID: 8, TokenValue: "winner-token", UserID: 9, User: user, ExpiresAt: fixedNow.Add(time.Minute)}

	findCalls := 0
	userRepo := &mocks.MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
	}
	tokenRepo := &mocks.MockRefreshTokenRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*domain.RefreshToken, error) {
			findCalls++
			if findCalls == 1 {
				return nil, domain.ErrRefreshTokenNotFound
			}
			return winner, nil
		},
		CreateFunc: func(ctx context.Context, token *domain.RefreshToken) error {
			return gorm.ErrDuplicatedKey
		},
	}
	svc := newRefreshService(userRepo, tokenRepo)

	token, err := svc.CreateOrReuse(context.Background(), "racer@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.TokenValue != "winner-token" {
		t.Errorf("expected concurrent winner's token, got %q", token.TokenValue)
	}
}

func TestRefreshTokenService_Verify(t *testing.T) {
	tests := []struct {
		name       string
		tokenRepo  *mocks.MockRefreshTokenRepository
		wantErr    error
		wantDelete bool
	}{
		{
			name: "unknown token",
			tokenRepo: &mocks.MockRefreshTokenRepository{
				FindByTokenValueFunc: func(ctx context.Context, tokenValue string) (*domain.RefreshToken, error) {
					return nil, domain.ErrRefreshTokenNotFound
				},
			},
			wantErr: domain.ErrRefreshTokenNotFound,
		},
		{
			name: "valid token",
			tokenRepo: &mocks.MockRefreshTokenRepository{
				FindByTokenValueFunc: func(ctx context.Context, tokenValue string) (*domain.RefreshToken, error) {
					return &domain.RefreshToken{ID: 1, TokenValue: tokenValue, ExpiresAt: fixedNow.Add(time.Minute)}, nil
				},
			},
		},
		{
			name: "expired token is deleted",
			tokenRepo: &mocks.MockRefreshTokenRepository{
				FindByTokenValueFunc: func(ctx context.Context, tokenValue string) (*domain.RefreshToken, error) {
					return &domain.RefreshToken{ID: 1, TokenValue: tokenValue, ExpiresAt: fixedNow.Add(-time.Second)}, nil
				},
			},
			wantErr:    domain.ErrRefreshTokenExpired,
			wantDelete: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			tt.tokenRepo.DeleteFunc = func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			}
			svc := newRefreshService(&mocks.MockUserRepository{}, tt.tokenRepo)

			_, err := svc.Verify(context.Background(), "some-token")

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if deleted != tt.wantDelete {
				t.Errorf("delete called = %v, want %v", deleted, tt.wantDelete)
			}
		})
	}
}

func TestRefreshTokenService_Verify_ExactDeadlineStillValid(t *testing.T) {
	tokenRepo := &mocks.MockRefreshTokenRepository{
		FindByTokenValueFunc: func(ctx context.Context, tokenValue string) (*domain.RefreshToken, error) {
			return &domain.RefreshToken{ID: 1, TokenValue: tokenValue, ExpiresAt: fixedNow}, nil
		},
	}
	svc := newRefreshService(&mocks.MockUserRepository{}, tokenRepo)

	token, err := svc.Verify(context.Background(), "boundary-token")
	if err != nil {
		t.Fatalf("token expiring exactly now should verify, got %v", err)
	}
	if token.TokenValue != "boundary-token" {
		t.Errorf("unexpected token %q", token.TokenValue)
	}
}
