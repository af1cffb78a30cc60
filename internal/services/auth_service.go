package services

import (
	"context"
	"fmt"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	refreshSvc  domain.RefreshTokenService
	expiresIn   int64
}

// NewAuthService creates a new auth service. expiresIn is the access token
// lifetime in seconds, reported to clients alongside each token pair.
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	refreshSvc domain.RefreshTokenService,
	expiresIn int64,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		refreshSvc:  refreshSvc,
		expiresIn:   expiresIn,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, email, password, role string) (*domain.AuthResult, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh implements domain.AuthService. The refresh token itself is not
// rotated: its value is echoed back next to the new access token.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	token, err := s.refreshSvc.Verify(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user := token.User
	if user == nil {
		user, err = s.userRepo.FindByID(ctx, token.UserID)
		if err != nil {
			return nil, domain.ErrUserNotFound
		}
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: token.TokenValue,
		ExpiresIn:    s.expiresIn,
	}, nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	accessToken, err := s.tokenSvc.GenerateAccessToken(user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.refreshSvc.CreateOrReuse(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain refresh token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken.TokenValue,
		ExpiresIn:    s.expiresIn,
	}, nil
}
