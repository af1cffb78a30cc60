package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// RefreshTokenRepositoryImpl implements domain.RefreshTokenRepository using GORM
type RefreshTokenRepositoryImpl struct {
	db *gorm.DB
}

// DBRefreshToken represents the database model for RefreshToken. The unique
// index on UserID makes the user-to-token relation a true 1:1 at the storage
// level, so concurrent logins cannot insert two tokens for one user.
type DBRefreshToken struct {
	ID         uint      `gorm:"primaryKey"`
	TokenValue string    `gorm:"uniqueIndex;size:64"`
	ExpiresAt  time.Time `gorm:"index"`
	UserID     uint      `gorm:"uniqueIndex"`
	User       *DBUser   `gorm:"foreignKey:UserID"`
}

// TableName returns the table name for GORM
func (DBRefreshToken) TableName() string {
	return "refresh_tokens"
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *gorm.DB) domain.RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{db: db}
}

// Create implements domain.RefreshTokenRepository. A second insert for the
// same user fails with gorm.ErrDuplicatedKey.
func (r *RefreshTokenRepositoryImpl) Create(ctx context.Context, token *domain.RefreshToken) error {
	dbToken := &DBRefreshToken{
		TokenValue: token.TokenValue,
		ExpiresAt:  token.ExpiresAt,
		UserID:     token.UserID,
	}
	if err := r.db.WithContext(ctx).Create(dbToken).Error; err != nil {
		return err
	}
	token.ID = dbToken.ID
	return nil
}

// FindByTokenValue implements domain.RefreshTokenRepository. The owning user
// is preloaded so callers can mint access tokens from the result.
func (r *RefreshTokenRepositoryImpl) FindByTokenValue(ctx context.Context, tokenValue string) (*domain.RefreshToken, error) {
	var dbToken DBRefreshToken
	err := r.db.WithContext(ctx).Preload("User").Where("token_value = ?", tokenValue).First(&dbToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return refreshTokenToDomain(&dbToken), nil
}

// FindByUserID implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*domain.RefreshToken, error) {
	var dbToken DBRefreshToken
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&dbToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return refreshTokenToDomain(&dbToken), nil
}

// Delete implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBRefreshToken{}, id).Error
}

func refreshTokenToDomain(dbToken *DBRefreshToken) *domain.RefreshToken {
	token := &domain.RefreshToken{
		ID:         dbToken.ID,
		TokenValue: dbToken.TokenValue,
		ExpiresAt:  dbToken.ExpiresAt,
		UserID:     dbToken.UserID,
	}
	if dbToken.User != nil {
		token.User = userToDomain(dbToken.User)
	}
	return token
}
