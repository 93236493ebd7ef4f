package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/you/accountsvc/domain"
)

// AccountServiceConfig carries the settings the lifecycle service needs
// beyond its collaborators.
type AccountServiceConfig struct {
	ServerAPIURL string        // base URL embedded in confirmation links
	AccessTTL    time.Duration // lifetime of issued access tokens
}

// AccountServiceImpl implements domain.AccountService
type AccountServiceImpl struct {
	accountRepo domain.AccountRepository
	otpCache    domain.OTPCache
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	notifySvc   domain.NotificationService
	config      AccountServiceConfig

	// generateOTP is swapped out by tests for a deterministic code.
	generateOTP func() (string, error)
}

// NewAccountService creates a new account lifecycle service
func NewAccountService(
	accountRepo domain.AccountRepository,
	otpCache domain.OTPCache,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notifySvc domain.NotificationService,
	config AccountServiceConfig,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		otpCache:    otpCache,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		notifySvc:   notifySvc,
		config:      config,
		generateOTP: generateOTPCode,
	}
}

// Register implements domain.AccountService
func (s *AccountServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.Account, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrMissingInput
	}

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.Internal("find account by email", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyRegistered
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, domain.Internal("hash password", err)
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Confirmed:    false,
		Roles:        domain.DefaultRoles(),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		// The unique index is the authority on duplicates; the lookup above
		// only catches the common case.
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.ErrEmailAlreadyRegistered
		}
		return nil, domain.Internal("create account", err)
	}

	url := fmt.Sprintf("%s/auth/confirm/%s", s.config.ServerAPIURL, account.ID)
	body := strings.Replace(verificationEmailTemplate, "{url}", url, 1)
	if err := s.notifySvc.SendEmail(account.Email, "Verify your email", body); err != nil {
		// The account stays registered even when the confirmation mail cannot
		// be delivered; it remains unconfirmed until a later confirmation.
		log.Printf("CONFIRMATION_EMAIL_FAILED: account_id=%s error=%v", account.ID, err)
	}

	return account, nil
}

// ConfirmEmail implements domain.AccountService. Confirming an already
// confirmed account is not an error.
func (s *AccountServiceImpl) ConfirmEmail(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrMissingInput
	}

	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidConfirmationLink
		}
		return domain.Internal("find account by id", err)
	}

	account.Confirmed = true
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return domain.Internal("update account", err)
	}
	return nil
}

// Login implements domain.AccountService
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown email and wrong password are indistinguishable to the
			// caller, so the login surface cannot enumerate addresses.
			return nil, domain.ErrIncorrectPassword
		}
		return nil, domain.Internal("find account by email", err)
	}

	if !account.Confirmed {
		return nil, domain.ErrEmailNotAuthenticated
	}

	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		return nil, domain.ErrIncorrectPassword
	}

	token, err := s.tokenSvc.GenerateAccessToken(account)
	if err != nil {
		return nil, domain.Internal("generate access token", err)
	}

	return &domain.AuthResult{
		Account:     account,
		AccessToken: token,
		ExpiresIn:   int64(s.config.AccessTTL.Seconds()),
	}, nil
}

// RequestPasswordReset implements domain.AccountService
func (s *AccountServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrMissingInput
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return domain.Internal("find account by email", err)
	}

	if !account.Confirmed {
		return domain.ErrEmailNotAuthenticated
	}

	code, err := s.generateOTP()
	if err != nil {
		return domain.Internal("generate otp code", err)
	}

	// Overwrites any pending code for this address.
	s.otpCache.Put(email, code)

	body := strings.Replace(passwordResetRequestTemplate, "{verificationCode}", code, 1)
	if err := s.notifySvc.SendEmail(email, "Reset your password", body); err != nil {
		// The orphaned cache entry expires on its own.
		return domain.Internal("send password reset email", err)
	}
	return nil
}

// VerifyOTP implements domain.AccountService. The code is single use: a
// match deletes the entry and returns a short-lived reset token that
// authorizes ResetPassword.
func (s *AccountServiceImpl) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	stored, ok := s.otpCache.Get(email)
	if !ok || stored != code {
		// Absent, expired, evicted and mismatched all look identical.
		return "", domain.ErrOTPInvalid
	}

	s.otpCache.Delete(email)

	resetToken, err := s.tokenSvc.GenerateResetToken(email)
	if err != nil {
		return "", domain.Internal("generate reset token", err)
	}
	return resetToken, nil
}

// ResetPassword implements domain.AccountService
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" || newPassword == "" {
		return domain.ErrMissingInput
	}

	email, err := s.tokenSvc.ValidateResetToken(resetToken)
	if err != nil {
		return err
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return domain.Internal("find account by email", err)
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return domain.Internal("hash password", err)
	}

	account.PasswordHash = hash
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return domain.Internal("update account", err)
	}
	return nil
}

// GetAccount implements domain.AccountService
func (s *AccountServiceImpl) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return s.accountRepo.FindByID(ctx, id)
}

// generateOTPCode draws a uniform 6-digit code in [100000, 999999].
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

var _ domain.AccountService = (*AccountServiceImpl)(nil)
