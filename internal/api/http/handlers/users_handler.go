package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/legalsuite/case-service/internal/api/dto"
	"github.com/legalsuite/case-service/internal/service"
	"github.com/legalsuite/case-service/internal/validation"
	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

// UsersHandler exposes login and operator account endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Login handles POST /login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if violations := validation.Struct(req); violations != nil {
		return apperrors.NewValidationError(violations)
	}

	token, exp, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{Token: token, ExpiresAt: exp})
}

// Register handles POST /api/users.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if violations := validation.Struct(req); violations != nil {
		return apperrors.NewValidationError(violations)
	}

	user, token, exp, err := h.auth.RegisterUser(c.UserContext(), req.Username, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"user": dto.NewUserResponse(user),
		"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}

// List handles GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.UserContext())
	if err != nil {
		return err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(result)
}
