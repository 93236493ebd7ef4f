package domain

import "context"

// AccountRepository defines account data access operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	Update(ctx context.Context, account *Account) error
}

// AccountService defines the account lifecycle business logic
type AccountService interface {
	Register(ctx context.Context, name, email, password string) (*Account, error)
	ConfirmEmail(ctx context.Context, id string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (string, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	GetAccount(ctx context.Context, id string) (*Account, error)
}

// OTPCache defines the in-process store for pending password-reset codes.
// Implementations must be safe for concurrent use and must never return an
// expired or evicted entry.
type OTPCache interface {
	Put(email, code string)
	Get(email string) (string, bool)
	Delete(email string)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(account *Account) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	GenerateResetToken(email string) (string, error)
	ValidateResetToken(token string) (string, error)
}

// NotificationService defines outbound notification operations
type NotificationService interface {
	SendEmail(to, subject, body string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() ([][]string, error)
}

// TokenClaims represents verified bearer token claims
type TokenClaims struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Roles     []Role `json:"roles"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
