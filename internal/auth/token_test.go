package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/legalsuite/case-service/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, expiresAt, err := tm.GenerateToken("user-1", domain.UserRoleAdmin)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expiry must be in the future, got %v", expiresAt)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != domain.UserRoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	claims := &Claims{
		UserID: "user-1",
		Role:   domain.UserRoleOperator,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.ParseToken(expired); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("issuer-secret", 60)
	verifier := NewTokenManager("other-secret", 60)

	token, _, err := issuer.GenerateToken("user-1", domain.UserRoleOperator)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	if _, err := tm.ParseToken("not-a-jwt"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}
