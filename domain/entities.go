package domain

import "time"

// Role is an access level granted to an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// DefaultRoles returns the role set assigned to newly registered accounts.
func DefaultRoles() []Role {
	return []Role{RoleUser}
}

// Account represents a registered identity in the system
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Confirmed    bool
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the account carries the given role.
func (a *Account) HasRole(role Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AuthRequest represents authentication credentials
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResult represents a successful authentication outcome
type AuthResult struct {
	Account     *Account
	AccessToken string
	ExpiresIn   int64
}
