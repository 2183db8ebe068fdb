package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/legalsuite/case-service/internal/api/dto"
	"github.com/legalsuite/case-service/internal/service"
	"github.com/legalsuite/case-service/internal/validation"
	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

// LawyersHandler exposes the lawyer directory.
type LawyersHandler struct {
	lawyers *service.LawyerService
}

// NewLawyersHandler constructs handler.
func NewLawyersHandler(lawyerService *service.LawyerService) *LawyersHandler {
	return &LawyersHandler{lawyers: lawyerService}
}

// Create handles POST /api/lawyers.
func (h *LawyersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLawyerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if violations := validation.Struct(req); violations != nil {
		return apperrors.NewValidationError(violations)
	}

	lawyer, err := h.lawyers.CreateLawyer(c.UserContext(), service.LawyerCreateInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialization: req.Specialization,
		Status:         req.Status,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.NewLawyerResponse(lawyer))
}

// List handles GET /api/lawyers.
func (h *LawyersHandler) List(c *fiber.Ctx) error {
	lawyers, err := h.lawyers.ListLawyers(c.UserContext())
	if err != nil {
		return err
	}

	result := make([]dto.LawyerResponse, 0, len(lawyers))
	for i := range lawyers {
		result = append(result, dto.NewLawyerResponse(&lawyers[i]))
	}
	return c.JSON(result)
}

// Get handles GET /api/lawyers/:id.
func (h *LawyersHandler) Get(c *fiber.Ctx) error {
	lawyer, err := h.lawyers.GetLawyer(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewLawyerResponse(lawyer))
}
