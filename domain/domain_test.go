package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestInternal(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("create account", cause)

	if !errors.Is(err, ErrInternal) {
		t.Fatal("Internal must match ErrInternal with errors.Is")
	}
	if errors.Is(err, cause) {
		t.Fatal("the cause must be flattened, not wrapped")
	}
	if !strings.Contains(err.Error(), "create account") {
		t.Errorf("operation missing from message: %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("cause missing from message: %v", err)
	}
}

func TestAccount_HasRole(t *testing.T) {
	account := &Account{Roles: []Role{RoleUser}}

	if !account.HasRole(RoleUser) {
		t.Error("expected RoleUser")
	}
	if account.HasRole(RoleAdmin) {
		t.Error("unexpected RoleAdmin")
	}
}

func TestDefaultRoles(t *testing.T) {
	roles := DefaultRoles()
	if len(roles) != 1 || roles[0] != RoleUser {
		t.Fatalf("new accounts start as plain users, got %v", roles)
	}

	// Callers may append to the returned slice.
	roles[0] = RoleAdmin
	if DefaultRoles()[0] != RoleUser {
		t.Fatal("DefaultRoles must return a fresh slice")
	}
}
