package service

import (
	"context"
	"errors"
	"testing"

	"github.com/legalsuite/case-service/internal/config"
	"github.com/legalsuite/case-service/internal/domain"
	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4, // minimum cost keeps the tests fast
		},
	}
	return NewAuthService(cfg, users), users
}

func TestLoginUnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	svc, _ := newAuthFixture(t)

	if _, _, _, err := svc.RegisterUser(context.Background(), "admin_user", "admin123", domain.UserRoleAdmin); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, errUnknown := svc.Login(context.Background(), "nobody", "admin123")
	_, _, errWrongPw := svc.Login(context.Background(), "admin_user", "wrong-password")

	var deUnknown, deWrongPw *apperrors.DomainError
	if !errors.As(errUnknown, &deUnknown) || !errors.As(errWrongPw, &deWrongPw) {
		t.Fatalf("expected DomainError for both failures: %v / %v", errUnknown, errWrongPw)
	}
	if deUnknown.Code != deWrongPw.Code || deUnknown.Message != deWrongPw.Message || deUnknown.HTTPStatus != deWrongPw.HTTPStatus {
		t.Fatalf("credential failures must be indistinguishable: %+v vs %+v", deUnknown, deWrongPw)
	}
	if deUnknown.HTTPStatus != 401 {
		t.Fatalf("expected 401, got %d", deUnknown.HTTPStatus)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, _, _, err := svc.RegisterUser(context.Background(), "operator_user", "operator123", domain.UserRoleOperator)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, exp, err := svc.Login(context.Background(), "operator_user", "operator123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if exp.IsZero() {
		t.Fatal("expected a non-zero expiry")
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != domain.UserRoleOperator {
		t.Fatalf("claims do not match user: %+v", claims)
	}
}

func TestLoginIsCaseSensitiveOnUsername(t *testing.T) {
	svc, _ := newAuthFixture(t)

	if _, _, _, err := svc.RegisterUser(context.Background(), "admin_user", "admin123", domain.UserRoleAdmin); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "Admin_User", "admin123")
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "INVALID_CREDENTIALS" {
		t.Fatalf("expected INVALID_CREDENTIALS, got %v", err)
	}
}

func TestRegisterUserRejectsDuplicateUsername(t *testing.T) {
	svc, _ := newAuthFixture(t)

	if _, _, _, err := svc.RegisterUser(context.Background(), "admin_user", "admin123", domain.UserRoleAdmin); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, _, err := svc.RegisterUser(context.Background(), "admin_user", "other-pass", domain.UserRoleOperator)
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
}

func TestRegisterUserStoresHashNotPlaintext(t *testing.T) {
	service, repo := newAuthFixture(t)

	user, _, _, err := service.RegisterUser(context.Background(), "admin_user", "admin123", domain.UserRoleAdmin)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	stored, err := repo.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.PasswordHash == "admin123" || stored.PasswordHash == "" {
		t.Fatalf("password must be stored as a hash, got %q", stored.PasswordHash)
	}
}
