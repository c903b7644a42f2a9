package auth

import (
	"strings"
	"testing"
)

func TestPasswordServiceImpl_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("minha-senha-secreta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "minha-senha-secreta" {
		t.Fatal("hash must not equal the raw password")
	}
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Errorf("expected a bcrypt hash at cost 10, got %q", hash)
	}

	if !svc.Verify(hash, "minha-senha-secreta") {
		t.Error("correct password must verify")
	}
	if svc.Verify(hash, "senha-errada") {
		t.Error("wrong password must not verify")
	}
}

func TestPasswordServiceImpl_HashesAreSalted(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Hash("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ")
	}
}
