package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/legalsuite/case-service/internal/domain"
	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

// Authorize reports whether the role satisfies the requirement. An empty
// requirement means any authenticated role passes.
func Authorize(role domain.UserRole, required ...domain.UserRole) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

// RequireRole ensures the principal holds one of the allowed roles. No
// current route restricts beyond "any authenticated user", but the data
// model defines two roles so the hook stays wired.
func RequireRole(allowed ...domain.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("authentication required")
		}
		if !Authorize(principal.Role, allowed...) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
