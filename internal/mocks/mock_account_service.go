package mocks

import (
	"context"

	"github.com/you/accountsvc/domain"
)

// MockAccountService implements domain.AccountService interface for testing
type MockAccountService struct {
	RegisterFunc             func(ctx context.Context, name, email, password string) (*domain.Account, error)
	ConfirmEmailFunc         func(ctx context.Context, id string) error
	LoginFunc                func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	VerifyOTPFunc            func(ctx context.Context, email, code string) (string, error)
	ResetPasswordFunc        func(ctx context.Context, resetToken, newPassword string) error
	GetAccountFunc           func(ctx context.Context, id string) (*domain.Account, error)
}

// NewMockAccountService creates a new MockAccountService with default behaviors
func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

// Register registers a new account
func (m *MockAccountService) Register(ctx context.Context, name, email, password string) (*domain.Account, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	// Default behavior: success with a fixed account
	return &domain.Account{
		ID:    "00000000-0000-0000-0000-000000000001",
		Name:  name,
		Email: email,
		Roles: domain.DefaultRoles(),
	}, nil
}

// ConfirmEmail confirms an account's email
func (m *MockAccountService) ConfirmEmail(ctx context.Context, id string) error {
	if m.ConfirmEmailFunc != nil {
		return m.ConfirmEmailFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Login authenticates an account
func (m *MockAccountService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: success with a fixed token
	return &domain.AuthResult{
		Account: &domain.Account{
			ID:        "00000000-0000-0000-0000-000000000001",
			Name:      "Test User",
			Email:     email,
			Confirmed: true,
			Roles:     domain.DefaultRoles(),
		},
		AccessToken: "access_token_test",
		ExpiresIn:   3600,
	}, nil
}

// RequestPasswordReset starts a password reset
func (m *MockAccountService) RequestPasswordReset(ctx context.Context, email string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// VerifyOTP checks a reset code
func (m *MockAccountService) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	// Default behavior: predictable fake token
	return "reset_token_" + email, nil
}

// ResetPassword completes a password reset
func (m *MockAccountService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, resetToken, newPassword)
	}
	// Default behavior: success
	return nil
}

// GetAccount loads an account by id
func (m *MockAccountService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetAccountFunc != nil {
		return m.GetAccountFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AccountService = (*MockAccountService)(nil)
