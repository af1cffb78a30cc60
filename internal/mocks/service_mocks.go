package mocks

import (
	"bytes"
	"context"
	"io"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed_"+password
}

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateAccessTokenFunc func(email, role string) (string, error)
	ValidateAccessTokenFunc func(token string) (*domain.TokenClaims, error)
}

func (m *MockTokenService) GenerateAccessToken(email, role string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(email, role)
	}
	return "access_" + email, nil
}

func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// MockRefreshTokenService implements domain.RefreshTokenService for testing
type MockRefreshTokenService struct {
	CreateOrReuseFunc func(ctx context.Context, email string) (*domain.RefreshToken, error)
	VerifyFunc        func(ctx context.Context, tokenValue string) (*domain.RefreshToken, error)
}

func (m *MockRefreshTokenService) CreateOrReuse(ctx context.Context, email string) (*domain.RefreshToken, error) {
	if m.CreateOrReuseFunc != nil {
		return m.CreateOrReuseFunc(ctx, email)
	}
	return &domain.RefreshToken{TokenValue: "refresh_" + email}, nil
}

func (m *MockRefreshTokenService) Verify(ctx context.Context, tokenValue string) (*domain.RefreshToken, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, tokenValue)
	}
	return nil, domain.ErrRefreshTokenNotFound
}

// MockMailService implements domain.MailService for testing. Sent messages
// are recorded for assertions.
type MockMailService struct {
	SendEmailFunc func(to, subject, body string) error
	Sent          []SentMail
}

// SentMail records one delivered message
type SentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *MockMailService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

// MockPosterStorage implements domain.PosterStorage backed by a map
type MockPosterStorage struct {
	SaveFunc   func(filename string, r io.Reader) error
	OpenFunc   func(filename string) (io.ReadCloser, error)
	RemoveFunc func(filename string) error
	ExistsFunc func(filename string) bool
	Files      map[string][]byte
}

func (m *MockPosterStorage) Save(filename string, r io.Reader) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(filename, r)
	}
	if m.Files == nil {
		m.Files = make(map[string][]byte)
	}
	if _, ok := m.Files[filename]; ok {
		return domain.ErrPosterExists
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return domain.ErrEmptyFile
	}
	m.Files[filename] = data
	return nil
}

func (m *MockPosterStorage) Open(filename string) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(filename)
	}
	data, ok := m.Files[filename]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MockPosterStorage) Remove(filename string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(filename)
	}
	delete(m.Files, filename)
	return nil
}

func (m *MockPosterStorage) Exists(filename string) bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(filename)
	}
	_, ok := m.Files[filename]
	return ok
}

// MockMovieCache implements domain.MovieCache backed by a map
type MockMovieCache struct {
	GetFunc        func(ctx context.Context, id uint) (*domain.Movie, bool)
	SetFunc        func(ctx context.Context, movie *domain.Movie)
	InvalidateFunc func(ctx context.Context, id uint)
	Entries        map[uint]*domain.Movie
}

func (m *MockMovieCache) Get(ctx context.Context, id uint) (*domain.Movie, bool) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	movie, ok := m.Entries[id]
	return movie, ok
}

func (m *MockMovieCache) Set(ctx context.Context, movie *domain.Movie) {
	if m.SetFunc != nil {
		m.SetFunc(ctx, movie)
		return
	}
	if m.Entries == nil {
		m.Entries = make(map[uint]*domain.Movie)
	}
	m.Entries[movie.ID] = movie
}

func (m *MockMovieCache) Invalidate(ctx context.Context, id uint) {
	if m.InvalidateFunc != nil {
		m.InvalidateFunc(ctx, id)
		return
	}
	delete(m.Entries, id)
}

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, email, password, role string) (*domain.AuthResult, error)
	LoginFunc    func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RefreshFunc  func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
}

func (m *MockAuthService) Register(ctx context.Context, email, password, role string) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, role)
	}
	return nil, domain.ErrUserAlreadyExists
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return nil, domain.ErrRefreshTokenNotFound
}

// MockPasswordResetService implements domain.PasswordResetService for testing
type MockPasswordResetService struct {
	IssueOTPFunc       func(ctx context.Context, email string) (*domain.PasswordReset, error)
	VerifyOTPFunc      func(ctx context.Context, email string, otp int) error
	ChangePasswordFunc func(ctx context.Context, email, newPassword, confirmPassword string) error
}

func (m *MockPasswordResetService) IssueOTP(ctx context.Context, email string) (*domain.PasswordReset, error) {
	if m.IssueOTPFunc != nil {
		return m.IssueOTPFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockPasswordResetService) VerifyOTP(ctx context.Context, email string, otp int) error {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, otp)
	}
	return domain.ErrOTPInvalid
}

func (m *MockPasswordResetService) ChangePassword(ctx context.Context, email, newPassword, confirmPassword string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, email, newPassword, confirmPassword)
	}
	return nil
}

// MockMovieService implements domain.MovieService for testing
type MockMovieService struct {
	AddFunc      func(ctx context.Context, movie *domain.Movie, poster io.Reader, posterName string) (*domain.Movie, error)
	GetFunc      func(ctx context.Context, id uint) (*domain.Movie, error)
	ListFunc     func(ctx context.Context) ([]*domain.Movie, error)
	ListPageFunc func(ctx context.Context, page, size int, sortBy, dir string) (*domain.MoviePage, error)
	UpdateFunc   func(ctx context.Context, movie *domain.Movie, poster io.Reader, posterName string) (*domain.Movie, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *MockMovieService) Add(ctx context.Context, movie *domain.Movie, poster io.Reader, posterName string) (*domain.Movie, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, movie, poster, posterName)
	}
	return movie, nil
}

func (m *MockMovieService) Get(ctx context.Context, id uint) (*domain.Movie, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrMovieNotFound
}

func (m *MockMovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockMovieService) ListPage(ctx context.Context, page, size int, sortBy, dir string) (*domain.MoviePage, error) {
	if m.ListPageFunc != nil {
		return m.ListPageFunc(ctx, page, size, sortBy, dir)
	}
	return &domain.MoviePage{PageNumber: page, PageSize: size}, nil
}

func (m *MockMovieService) Update(ctx context.Context, movie *domain.Movie, poster io.Reader, posterName string) (*domain.Movie, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, movie, poster, posterName)
	}
	return movie, nil
}

func (m *MockMovieService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCasbinEnforcer implements domain.CasbinEnforcer for testing
type MockCasbinEnforcer struct {
	AddPolicyFunc    func(params ...interface{}) (bool, error)
	RemovePolicyFunc func(params ...interface{}) (bool, error)
	EnforceFunc      func(rvals ...interface{}) (bool, error)
	GetPolicyFunc    func() ([][]string, error)
	SavePolicyFunc   func() error
}

func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(params...)
	}
	return true, nil
}

func (m *MockCasbinEnforcer) RemovePolicy(params ...interface{}) (bool, error) {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(params...)
	}
	return true, nil
}

func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(rvals...)
	}
	return false, nil
}

func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc()
	}
	return nil, nil
}

func (m *MockCasbinEnforcer) SavePolicy() error {
	if m.SavePolicyFunc != nil {
		return m.SavePolicyFunc()
	}
	return nil
}

var _ domain.AuthService = (*MockAuthService)(nil)
var _ domain.PasswordResetService = (*MockPasswordResetService)(nil)
var _ domain.MovieService = (*MockMovieService)(nil)
var _ domain.PasswordService = (*MockPasswordService)(nil)
var _ domain.TokenService = (*MockTokenService)(nil)
var _ domain.RefreshTokenService = (*MockRefreshTokenService)(nil)
var _ domain.MailService = (*MockMailService)(nil)
var _ domain.PosterStorage = (*MockPosterStorage)(nil)
var _ domain.MovieCache = (*MockMovieCache)(nil)
var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)
