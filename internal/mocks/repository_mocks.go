package mocks

import (
	"context"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, email, passwordHash string) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, email, passwordHash)
	}
	return nil
}

// MockRefreshTokenRepository implements domain.RefreshTokenRepository for testing
type MockRefreshTokenRepository struct {
	CreateFunc           func(ctx context.Context, token *domain.RefreshToken) error
	FindByTokenValueFunc func(ctx context.Context, tokenValue string) (*domain.RefreshToken, error)
	FindByUserIDFunc     func(ctx context.Context, userID uint) (*domain.RefreshToken, error)
	DeleteFunc           func(ctx context.Context, id uint) error
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *MockRefreshTokenRepository) FindByTokenValue(ctx context.Context, tokenValue string) (*domain.RefreshToken, error) {
	if m.FindByTokenValueFunc != nil {
		return m.FindByTokenValueFunc(ctx, tokenValue)
	}
	return nil, domain.ErrRefreshTokenNotFound
}

func (m *MockRefreshTokenRepository) FindByUserID(ctx context.Context, userID uint) (*domain.RefreshToken, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrRefreshTokenNotFound
}

func (m *MockRefreshTokenRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockPasswordResetRepository implements domain.PasswordResetRepository for testing
type MockPasswordResetRepository struct {
	CreateFunc           func(ctx context.Context, reset *domain.PasswordReset) error
	FindByOTPAndUserFunc func(ctx context.Context, otp int, userID uint) (*domain.PasswordReset, error)
	DeleteFunc           func(ctx context.Context, id uint) error
}

func (m *MockPasswordResetRepository) Create(ctx context.Context, reset *domain.PasswordReset) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reset)
	}
	return nil
}

func (m *MockPasswordResetRepository) FindByOTPAndUser(ctx context.Context, otp int, userID uint) (*domain.PasswordReset, error) {
	if m.FindByOTPAndUserFunc != nil {
		return m.FindByOTPAndUserFunc(ctx, otp, userID)
	}
	return nil, domain.ErrOTPInvalid
}

func (m *MockPasswordResetRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockMovieRepository implements domain.MovieRepository for testing
type MockMovieRepository struct {
	CreateFunc   func(ctx context.Context, movie *domain.Movie) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Movie, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Movie, error)
	FindPageFunc func(ctx context.Context, page, size int, sortBy, dir string) ([]*domain.Movie, int64, error)
	UpdateFunc   func(ctx context.Context, movie *domain.Movie) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, movie)
	}
	return nil
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id uint) (*domain.Movie, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrMovieNotFound
}

func (m *MockMovieRepository) FindAll(ctx context.Context) ([]*domain.Movie, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockMovieRepository) FindPage(ctx context.Context, page, size int, sortBy, dir string) ([]*domain.Movie, int64, error) {
	if m.FindPageFunc != nil {
		return m.FindPageFunc(ctx, page, size, sortBy, dir)
	}
	return nil, 0, nil
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, movie)
	}
	return nil
}

func (m *MockMovieRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var _ domain.UserRepository = (*MockUserRepository)(nil)
var _ domain.RefreshTokenRepository = (*MockRefreshTokenRepository)(nil)
var _ domain.PasswordResetRepository = (*MockPasswordResetRepository)(nil)
var _ domain.MovieRepository = (*MockMovieRepository)(nil)
