package app

import (
	"errors"
	"testing"

	"github.com/you/accountsvc/internal/mocks"
	"github.com/you/accountsvc/internal/services"
)

func TestSeedPolicies_EmptyStore(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	var added [][]interface{}
	enforcer.AddPolicyFunc = func(params ...interface{}) (bool, error) {
		added = append(added, params)
		return true, nil
	}

	if err := seedPolicies(services.NewPolicyServiceWithEnforcer(enforcer)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("expected 2 seeded rules, got %d", len(added))
	}
	if added[0][0] != "role_admin" || added[1][0] != "role_user" {
		t.Errorf("unexpected seed subjects: %v", added)
	}
}

func TestSeedPolicies_PopulatedStoreUntouched(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.GetPolicyFunc = func() ([][]string, error) {
		return [][]string{{"role_user", "/auth/me", "GET"}}, nil
	}
	enforcer.AddPolicyFunc = func(params ...interface{}) (bool, error) {
		t.Fatal("a populated store must not be reseeded")
		return false, nil
	}

	if err := seedPolicies(services.NewPolicyServiceWithEnforcer(enforcer)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSeedPolicies_ReadFailureSurfaces(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.GetPolicyFunc = func() ([][]string, error) {
		return nil, errors.New("adapter unavailable")
	}

	if err := seedPolicies(services.NewPolicyServiceWithEnforcer(enforcer)); err == nil {
		t.Fatal("expected the read failure to surface")
	}
}

func TestSeedPolicies_WriteFailureDoesNotHaltSeeding(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	attempts := 0
	enforcer.AddPolicyFunc = func(params ...interface{}) (bool, error) {
		attempts++
		return false, errors.New("adapter unavailable")
	}

	// Failures are logged per rule; the remaining rules are still attempted.
	if err := seedPolicies(services.NewPolicyServiceWithEnforcer(enforcer)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected both rules attempted, got %d", attempts)
	}
}
