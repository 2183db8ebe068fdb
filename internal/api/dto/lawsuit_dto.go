package dto

import (
	"time"

	"github.com/legalsuite/case-service/internal/domain"
)

// CreateLawsuitRequest payload.
type CreateLawsuitRequest struct {
	CaseNumber string               `json:"case_number" validate:"required,min=3,max=50"`
	Plaintiff  string               `json:"plaintiff" validate:"required,min=2,max=100"`
	Defendant  string               `json:"defendant" validate:"required,min=2,max=100"`
	CaseType   domain.CaseType      `json:"case_type" validate:"required,oneof=civil criminal labor commercial"`
	Status     domain.LawsuitStatus `json:"status" validate:"required,oneof=pending assigned resolved"`
	LawyerID   *string              `json:"lawyer_id" validate:"omitempty,uuid"`
}

// AssignLawyerRequest payload.
type AssignLawyerRequest struct {
	LawyerID string `json:"lawyer_id" validate:"required"`
}

// LawsuitResponse projects a lawsuit.
type LawsuitResponse struct {
	ID         string               `json:"id"`
	CaseNumber string               `json:"case_number"`
	Plaintiff  string               `json:"plaintiff"`
	Defendant  string               `json:"defendant"`
	CaseType   domain.CaseType      `json:"case_type"`
	Status     domain.LawsuitStatus `json:"status"`
	LawyerID   *string              `json:"lawyer_id"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// NewLawsuitResponse maps a domain lawsuit.
func NewLawsuitResponse(lawsuit *domain.Lawsuit) LawsuitResponse {
	return LawsuitResponse{
		ID:         lawsuit.ID,
		CaseNumber: lawsuit.CaseNumber,
		Plaintiff:  lawsuit.Plaintiff,
		Defendant:  lawsuit.Defendant,
		CaseType:   lawsuit.CaseType,
		Status:     lawsuit.Status,
		LawyerID:   lawsuit.LawyerID,
		CreatedAt:  lawsuit.CreatedAt,
		UpdatedAt:  lawsuit.UpdatedAt,
	}
}

// NewLawsuitResponses maps a slice of lawsuits.
func NewLawsuitResponses(lawsuits []domain.Lawsuit) []LawsuitResponse {
	result := make([]LawsuitResponse, 0, len(lawsuits))
	for i := range lawsuits {
		result = append(result, NewLawsuitResponse(&lawsuits[i]))
	}
	return result
}

// LawyerReportResponse pairs a lawyer's identity with a caseload projection.
type LawyerReportResponse struct {
	Lawyer   LawyerReportIdentity `json:"lawyer"`
	Lawsuits []LawsuitReportItem  `json:"lawsuits"`
}

// LawyerReportIdentity is the lawyer projection inside a report.
type LawyerReportIdentity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LawsuitReportItem is the lawsuit projection inside a report.
type LawsuitReportItem struct {
	ID         string               `json:"id"`
	CaseNumber string               `json:"case_number"`
	Status     domain.LawsuitStatus `json:"status"`
}

// NewLawyerReportResponse maps a lawyer and their caseload.
func NewLawyerReportResponse(lawyer *domain.Lawyer, lawsuits []domain.Lawsuit) LawyerReportResponse {
	items := make([]LawsuitReportItem, 0, len(lawsuits))
	for i := range lawsuits {
		items = append(items, LawsuitReportItem{
			ID:         lawsuits[i].ID,
			CaseNumber: lawsuits[i].CaseNumber,
			Status:     lawsuits[i].Status,
		})
	}
	return LawyerReportResponse{
		Lawyer:   LawyerReportIdentity{ID: lawyer.ID, Name: lawyer.Name},
		Lawsuits: items,
	}
}
