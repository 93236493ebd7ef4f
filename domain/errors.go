package domain

import (
	"errors"
	"fmt"
)

// Registration and login errors
var (
	ErrMissingInput            = errors.New("missing input")
	ErrEmailAlreadyRegistered  = errors.New("email already registered")
	ErrInvalidConfirmationLink = errors.New("invalid confirmation link")
	ErrEmailNotAuthenticated   = errors.New("email not authenticated")
	ErrIncorrectPassword       = errors.New("incorrect password")
	ErrUserNotFound            = errors.New("user not found")
)

// OTP errors
var (
	ErrOTPInvalid = errors.New("invalid otp code")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Store errors
var (
	ErrDuplicateKey = errors.New("duplicate key")
)

// ErrInternal is the catch-all for unexpected store or notifier failures.
// Callers match it with errors.Is and surface an opaque message; the cause
// is flattened into the error string for logs only.
var ErrInternal = errors.New("internal failure")

// Internal wraps an unexpected error as ErrInternal.
func Internal(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
