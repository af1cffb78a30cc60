package auth

import (
	"strings"
	"testing"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("password stored in the clear")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("not a bcrypt hash: %q", hash)
	}

	if !svc.Verify(hash, "secret123") {
		t.Error("correct password rejected")
	}
	if svc.Verify(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestPasswordService_HashesDiffer(t *testing.T) {
	svc := NewPasswordService()

	a, err := svc.Hash("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := svc.Hash("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Error("bcrypt hashes must be salted")
	}
}
