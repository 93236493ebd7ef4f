package mocks

import (
	"sync"

	"github.com/you/accountsvc/domain"
)

// MockOTPCache implements domain.OTPCache interface for testing
type MockOTPCache struct {
	PutFunc    func(email, code string)
	GetFunc    func(email string) (string, bool)
	DeleteFunc func(email string)

	mu      sync.Mutex
	entries map[string]string
}

// NewMockOTPCache creates a new MockOTPCache backed by a plain map
func NewMockOTPCache() *MockOTPCache {
	return &MockOTPCache{entries: make(map[string]string)}
}

// Put stores a code
func (m *MockOTPCache) Put(email, code string) {
	if m.PutFunc != nil {
		m.PutFunc(email, code)
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[email] = code
}

// Get returns a stored code
func (m *MockOTPCache) Get(email string) (string, bool) {
	if m.GetFunc != nil {
		return m.GetFunc(email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	code, ok := m.entries[email]
	return code, ok
}

// Delete removes a stored code
func (m *MockOTPCache) Delete(email string) {
	if m.DeleteFunc != nil {
		m.DeleteFunc(email)
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, email)
}

// Compile-time interface compliance verification
var _ domain.OTPCache = (*MockOTPCache)(nil)
