package dto

import (
	"time"

	"github.com/legalsuite/case-service/internal/domain"
)

// CreateLawyerRequest payload.
type CreateLawyerRequest struct {
	Name           string              `json:"name" validate:"required,min=2,max=100"`
	Email          string              `json:"email" validate:"required,email"`
	Phone          string              `json:"phone" validate:"required,min=7,max=20"`
	Specialization string              `json:"specialization" validate:"required,min=2,max=100"`
	Status         domain.LawyerStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

// LawyerResponse projects a lawyer.
type LawyerResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Specialization string              `json:"specialization"`
	Status         domain.LawyerStatus `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
}

// NewLawyerResponse maps a domain lawyer.
func NewLawyerResponse(lawyer *domain.Lawyer) LawyerResponse {
	return LawyerResponse{
		ID:             lawyer.ID,
		Name:           lawyer.Name,
		Email:          lawyer.Email,
		Phone:          lawyer.Phone,
		Specialization: lawyer.Specialization,
		Status:         lawyer.Status,
		CreatedAt:      lawyer.CreatedAt,
	}
}
