package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordServiceImpl_HashAndVerify(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	hash, err := svc.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	if !svc.Verify(hash, "pw1") {
		t.Error("correct password rejected")
	}
	if svc.Verify(hash, "pw2") {
		t.Error("wrong password accepted")
	}
	if svc.Verify("not-a-hash", "pw1") {
		t.Error("malformed hash accepted")
	}
}

func TestPasswordServiceImpl_HashesAreSalted(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	h1, err := svc.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := svc.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password must differ")
	}
}

func TestNewPasswordService_DefaultCost(t *testing.T) {
	svc := NewPasswordService(0)

	hash, err := svc.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}
