package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	repo := NewUserRepository(db)
	user := &domain.User{Email: email, PasswordHash: "hash", Role: "user"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestRefreshTokenRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "user@example.com")
	expires := time.Now().Add(30 * time.Second).UTC().Truncate(time.Second)

	token := &domain.RefreshToken{TokenValue: "tok-1", ExpiresAt: expires, UserID: user.ID}
	require.NoError(t, repo.Create(ctx, token))
	assert.NotZero(t, token.ID)

	byValue, err := repo.FindByTokenValue(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byValue.UserID)
	require.NotNil(t, byValue.User, "owning user must be preloaded")
	assert.Equal(t, "user@example.com", byValue.User.Email)

	byUser, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", byUser.TokenValue)
}

func TestRefreshTokenRepository_OneTokenPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "user@example.com")
	expires := time.Now().Add(time.Minute)

	require.NoError(t, repo.Create(ctx, &domain.RefreshToken{TokenValue: "tok-1", ExpiresAt: expires, UserID: user.ID}))

	err := repo.Create(ctx, &domain.RefreshToken{TokenValue: "tok-2", ExpiresAt: expires, UserID: user.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestRefreshTokenRepository_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	_, err := repo.FindByTokenValue(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrRefreshTokenNotFound)

	_, err = repo.FindByUserID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrRefreshTokenNotFound)
}

func TestRefreshTokenRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "user@example.com")
	token := &domain.RefreshToken{TokenValue: "tok-1", ExpiresAt: time.Now().Add(time.Minute), UserID: user.ID}
	require.NoError(t, repo.Create(ctx, token))

	require.NoError(t, repo.Delete(ctx, token.ID))

	_, err := repo.FindByTokenValue(ctx, "tok-1")
	assert.ErrorIs(t, err, domain.ErrRefreshTokenNotFound)

	// deletion frees the slot for a fresh token
	require.NoError(t, repo.Create(ctx, &domain.RefreshToken{TokenValue: "tok-2", ExpiresAt: time.Now().Add(time.Minute), UserID: user.ID}))
}
