package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/legalsuite/case-service/internal/observability"
	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as error handling and
// logging. Error mapping runs inside the request logger so the logger and the
// request metrics observe the mapped status, not the pre-error default.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, timeout time.Duration) {
	app.Use(observability.RequestID())
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(observability.RequestLogger(logger))
	app.Use(errorHandlingMiddleware(logger))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware maps classified errors to the wire shape
// {"error": string | []string}. Validation failures carry every violation.
func errorHandlingMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				observability.ObserveError(c.Route().Path, c.Method(), domainErr.Code)

				var body fiber.Map
				if len(domainErr.Violations) > 0 {
					body = fiber.Map{"error": domainErr.Violations}
				} else {
					body = fiber.Map{"error": domainErr.Message}
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(body)
				err = nil
			}
		}()
		return c.Next()
	}
}
