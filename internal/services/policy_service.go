package services

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"github.com/you/accountsvc/domain"
)

// casbinEnforcerAdapter narrows *casbin.Enforcer to the domain port so the
// policy service can be exercised against a fake.
type casbinEnforcerAdapter struct {
	e *casbin.Enforcer
}

func (a *casbinEnforcerAdapter) AddPolicy(params ...interface{}) (bool, error) {
	return a.e.AddPolicy(params...)
}

func (a *casbinEnforcerAdapter) RemovePolicy(params ...interface{}) (bool, error) {
	return a.e.RemovePolicy(params...)
}

func (a *casbinEnforcerAdapter) Enforce(rvals ...interface{}) (bool, error) {
	return a.e.Enforce(rvals...)
}

func (a *casbinEnforcerAdapter) GetPolicy() ([][]string, error) {
	return a.e.GetPolicy()
}

func (a *casbinEnforcerAdapter) SavePolicy() error {
	return a.e.SavePolicy()
}

// PolicyServiceImpl implements domain.PolicyService. Rules are triples of
// (role subject, resource path, action pattern); mutations persist through
// the enforcer's adapter.
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyService creates a policy service over the real Casbin enforcer
func NewPolicyService(enforcer *casbin.Enforcer) domain.PolicyService {
	return &PolicyServiceImpl{enforcer: &casbinEnforcerAdapter{e: enforcer}}
}

// NewPolicyServiceWithEnforcer creates a policy service over any enforcer
// implementation (used by tests)
func NewPolicyServiceWithEnforcer(enforcer domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{enforcer: enforcer}
}

// AddPolicy grants (role, resource, action) and persists the rule set
func (p *PolicyServiceImpl) AddPolicy(role, resource, action string) error {
	if _, err := p.enforcer.AddPolicy(role, resource, action); err != nil {
		return fmt.Errorf("add policy %s %s %s: %w", role, resource, action, err)
	}
	return p.enforcer.SavePolicy()
}

// RemovePolicy revokes (role, resource, action) and persists the rule set
func (p *PolicyServiceImpl) RemovePolicy(role, resource, action string) error {
	if _, err := p.enforcer.RemovePolicy(role, resource, action); err != nil {
		return fmt.Errorf("remove policy %s %s %s: %w", role, resource, action, err)
	}
	return p.enforcer.SavePolicy()
}

// CheckPermission reports whether role may perform action on resource
func (p *PolicyServiceImpl) CheckPermission(role, resource, action string) (bool, error) {
	return p.enforcer.Enforce(role, resource, action)
}

// GetPolicies returns every stored rule
func (p *PolicyServiceImpl) GetPolicies() ([][]string, error) {
	return p.enforcer.GetPolicy()
}

var _ domain.PolicyService = (*PolicyServiceImpl)(nil)
