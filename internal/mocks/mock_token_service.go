package mocks

import "github.com/you/accountsvc/domain"

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateAccessTokenFunc func(account *domain.Account) (string, error)
	ValidateAccessTokenFunc func(token string) (*domain.TokenClaims, error)
	GenerateResetTokenFunc  func(email string) (string, error)
	ValidateResetTokenFunc  func(token string) (string, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken generates an access token for an account
func (m *MockTokenService) GenerateAccessToken(account *domain.Account) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(account)
	}
	// Default behavior: predictable fake token
	return "access_token_" + account.ID, nil
}

// ValidateAccessToken validates an access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// GenerateResetToken generates a password-reset token for an email
func (m *MockTokenService) GenerateResetToken(email string) (string, error) {
	if m.GenerateResetTokenFunc != nil {
		return m.GenerateResetTokenFunc(email)
	}
	// Default behavior: predictable fake token
	return "reset_token_" + email, nil
}

// ValidateResetToken validates a password-reset token
func (m *MockTokenService) ValidateResetToken(token string) (string, error) {
	if m.ValidateResetTokenFunc != nil {
		return m.ValidateResetTokenFunc(token)
	}
	// Default behavior: invalid
	return "", domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
