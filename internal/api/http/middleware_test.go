package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

func newObservedApp(t *testing.T) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), 0)
	return app, logs
}

func TestErrorMiddlewareRendersViolationList(t *testing.T) {
	app, _ := newObservedApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError([]string{
			"case_number must be at least 3 characters",
			"plaintiff is required",
		})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error []string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Error) != 2 {
		t.Fatalf("expected both violations on the wire, got %v", body.Error)
	}
}

func TestErrorMiddlewareRendersMessageString(t *testing.T) {
	app, _ := newObservedApp(t)
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("lawyer")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "lawyer not found" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestRequestLoggerSeesMappedStatus(t *testing.T) {
	app, logs := newObservedApp(t)
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("lawsuit")
	})

	if _, err := app.Test(httptest.NewRequest("GET", "/missing", nil)); err != nil {
		t.Fatalf("request: %v", err)
	}

	var status int64
	for _, entry := range logs.All() {
		if entry.Message != "request" {
			continue
		}
		for _, field := range entry.Context {
			if field.Key == "status" {
				status = field.Integer
			}
		}
	}
	if status != int64(fiber.StatusNotFound) {
		t.Fatalf("request log must carry the mapped status, got %d", status)
	}
}
