package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// PasswordResetRepositoryImpl implements domain.PasswordResetRepository using GORM
type PasswordResetRepositoryImpl struct {
	db *gorm.DB
}

// DBPasswordReset represents the database model for PasswordReset. No
// uniqueness is enforced on (otp, user_id): several live OTP records may
// coexist for one user.
type DBPasswordReset struct {
	ID        uint      `gorm:"primaryKey"`
	OTP       int       `gorm:"index;column:otp"`
	ExpiresAt time.Time `gorm:"index"`
	UserID    uint      `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBPasswordReset) TableName() string {
	return "password_reset_requests"
}

// NewPasswordResetRepository creates a new password reset repository
func NewPasswordResetRepository(db *gorm.DB) domain.PasswordResetRepository {
	return &PasswordResetRepositoryImpl{db: db}
}

// Create implements domain.PasswordResetRepository
func (r *PasswordResetRepositoryImpl) Create(ctx context.Context, reset *domain.PasswordReset) error {
	dbReset := &DBPasswordReset{
		OTP:       reset.OTP,
		ExpiresAt: reset.ExpiresAt,
		UserID:    reset.UserID,
	}
	if err := r.db.WithContext(ctx).Create(dbReset).Error; err != nil {
		return err
	}
	reset.ID = dbReset.ID
	return nil
}

// FindByOTPAndUser implements domain.PasswordResetRepository
func (r *PasswordResetRepositoryImpl) FindByOTPAndUser(ctx context.Context, otp int, userID uint) (*domain.PasswordReset, error) {
	var dbReset DBPasswordReset
	err := r.db.WithContext(ctx).Where("otp = ? AND user_id = ?", otp, userID).First(&dbReset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOTPInvalid
		}
		return nil, err
	}
	return &domain.PasswordReset{
		ID:        dbReset.ID,
		OTP:       dbReset.OTP,
		ExpiresAt: dbReset.ExpiresAt,
		UserID:    dbReset.UserID,
	}, nil
}

// Delete implements domain.PasswordResetRepository
func (r *PasswordResetRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBPasswordReset{}, id).Error
}
