package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// OTP codes are uniform in [otpMin, otpMax).
const (
	otpMin = 100000
	otpMax = 999999
)

// PasswordResetServiceImpl implements domain.PasswordResetService.
//
// Persisting the OTP record and mailing the code are independent side
// effects: a mail failure is logged but does not roll back the record.
// A successfully verified OTP is left in place until its deadline, and
// ChangePassword is sequenced after VerifyOTP by the HTTP layer only.
type PasswordResetServiceImpl struct {
	userRepo    domain.UserRepository
	resetRepo   domain.PasswordResetRepository
	passwordSvc domain.PasswordService
	mailSvc     domain.MailService
	ttl         time.Duration

	now    func() time.Time
	newOTP func() int
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	userRepo domain.UserRepository,
	resetRepo domain.PasswordResetRepository,
	passwordSvc domain.PasswordService,
	mailSvc domain.MailService,
	ttl time.Duration,
) *PasswordResetServiceImpl {
	return &PasswordResetServiceImpl{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		passwordSvc: passwordSvc,
		mailSvc:     mailSvc,
		ttl:         ttl,
		now:         time.Now,
		newOTP:      secureOTP,
	}
}

// IssueOTP implements domain.PasswordResetService
func (s *PasswordResetServiceImpl) IssueOTP(ctx context.Context, email string) (*domain.PasswordReset, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	reset := &domain.PasswordReset{
		OTP:       s.newOTP(),
		ExpiresAt: s.now().Add(s.ttl),
		UserID:    user.ID,
	}

	if err := s.resetRepo.Create(ctx, reset); err != nil {
		return nil, fmt.Errorf("failed to store reset request: %w", err)
	}

	subject := "OTP for forgot password request"
	body := fmt.Sprintf("This is the OTP for your forgot password request: %d. Valid for %d minutes.",
		reset.OTP, int(s.ttl.Minutes()))
	if err := s.mailSvc.SendEmail(email, subject, body); err != nil {
		log.Printf("OTP_MAIL_FAILED: email=%s error=%v", email, err)
	}

	return reset, nil
}

// VerifyOTP implements domain.PasswordResetService. An expired record is
// deleted on detection, so retrying the same code reports ErrOTPInvalid.
func (s *PasswordResetServiceImpl) VerifyOTP(ctx context.Context, email string, otp int) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	reset, err := s.resetRepo.FindByOTPAndUser(ctx, otp, user.ID)
	if err != nil {
		return domain.ErrOTPInvalid
	}

	if reset.Expired(s.now()) {
		if err := s.resetRepo.Delete(ctx, reset.ID); err != nil {
			return fmt.Errorf("failed to delete expired reset request: %w", err)
		}
		return domain.ErrOTPExpired
	}

	return nil
}

// ChangePassword implements domain.PasswordResetService
func (s *PasswordResetServiceImpl) ChangePassword(ctx context.Context, email, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return domain.ErrPasswordMismatch
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, email, hash)
}

// secureOTP draws a code from crypto/rand, uniform in [otpMin, otpMax).
func secureOTP() int {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin))
	if err != nil {
		panic(fmt.Sprintf("otp generation: %v", err))
	}
	return otpMin + int(n.Int64())
}

var _ domain.PasswordResetService = (*PasswordResetServiceImpl)(nil)
