package auth

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/legalsuite/case-service/internal/domain"
	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

// newProtectedApp wires the middleware into a minimal fiber app. The error
// handler maps DomainError to its HTTP status so the tests can observe the
// same codes the real transport layer reports.
func newProtectedApp(tm *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var de *apperrors.DomainError
			if errors.As(err, &de) {
				return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": de.Message})
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})

	mw := NewAuthMiddleware(tm)
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewInternalError(errors.New("principal missing after auth"))
		}
		return c.JSON(fiber.Map{"uid": principal.UserID, "role": principal.Role})
	})
	return app
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	app := newProtectedApp(NewTokenManager("test-secret", 60))

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	app := newProtectedApp(NewTokenManager("test-secret", 60))

	for _, header := range []string{"Basic abc", "Bearer", "just-a-token"} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request with %q: %v", header, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, resp.StatusCode)
		}
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	app := newProtectedApp(NewTokenManager("test-secret", 60))

	other := NewTokenManager("other-secret", 60)
	token, _, err := other.GenerateToken("user-1", domain.UserRoleAdmin)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	app := newProtectedApp(tm)

	token, _, err := tm.GenerateToken("user-1", domain.UserRoleOperator)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthorize(t *testing.T) {
	if !Authorize(domain.UserRoleOperator) {
		t.Fatal("no requirement must allow any role")
	}
	if !Authorize(domain.UserRoleAdmin, domain.UserRoleAdmin, domain.UserRoleOperator) {
		t.Fatal("listed role must pass")
	}
	if Authorize(domain.UserRoleOperator, domain.UserRoleAdmin) {
		t.Fatal("unlisted role must fail")
	}
}
