package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/legalsuite/case-service/internal/api/dto"
	"github.com/legalsuite/case-service/internal/service"
	"github.com/legalsuite/case-service/internal/validation"
	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

// LawsuitsHandler exposes the lawsuit lifecycle endpoints.
type LawsuitsHandler struct {
	lawsuits *service.LawsuitService
}

// NewLawsuitsHandler constructs handler.
func NewLawsuitsHandler(lawsuitService *service.LawsuitService) *LawsuitsHandler {
	return &LawsuitsHandler{lawsuits: lawsuitService}
}

// Create handles POST /api/lawsuits.
func (h *LawsuitsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLawsuitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if violations := validation.Struct(req); violations != nil {
		return apperrors.NewValidationError(violations)
	}

	lawsuit, err := h.lawsuits.CreateLawsuit(c.UserContext(), service.LawsuitCreateInput{
		CaseNumber: req.CaseNumber,
		Plaintiff:  req.Plaintiff,
		Defendant:  req.Defendant,
		CaseType:   req.CaseType,
		Status:     req.Status,
		LawyerID:   req.LawyerID,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.NewLawsuitResponse(lawsuit))
}

// List handles GET /api/lawsuits with optional status and lawyer_id filters.
func (h *LawsuitsHandler) List(c *fiber.Ctx) error {
	filter := service.LawsuitListFilter{}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if lawyerID := c.Query("lawyer_id"); lawyerID != "" {
		filter.LawyerID = &lawyerID
	}

	lawsuits, err := h.lawsuits.ListLawsuits(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewLawsuitResponses(lawsuits))
}

// Assign handles PUT /api/lawsuits/:id/assign.
func (h *LawsuitsHandler) Assign(c *fiber.Ctx) error {
	var req dto.AssignLawyerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if violations := validation.Struct(req); violations != nil {
		return apperrors.NewValidationError(violations)
	}

	lawsuit, err := h.lawsuits.AssignLawyer(c.UserContext(), c.Params("id"), req.LawyerID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewLawsuitResponse(lawsuit))
}

// Resolve handles PUT /api/lawsuits/:id/resolve.
func (h *LawsuitsHandler) Resolve(c *fiber.Ctx) error {
	lawsuit, err := h.lawsuits.ResolveLawsuit(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewLawsuitResponse(lawsuit))
}
