package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if err := ComparePassword(hash, "admin123"); err != nil {
		t.Fatalf("compare with correct password: %v", err)
	}
	if err := ComparePassword(hash, "wrong-password"); err == nil {
		t.Fatal("compare with wrong password must fail")
	}
}

func TestHashPasswordNormalizesBadCost(t *testing.T) {
	hash, err := HashPassword("admin123", -1)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}
