package observability

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"
const requestIDKey = "request_id"

// RequestID propagates or assigns a request identifier.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDHeader, rid)
		c.Locals(requestIDKey, rid)
		return c.Next()
	}
}

// RequestIDFromContext returns the identifier assigned by RequestID.
func RequestIDFromContext(c *fiber.Ctx) string {
	if rid, ok := c.Locals(requestIDKey).(string); ok {
		return rid
	}
	return ""
}
