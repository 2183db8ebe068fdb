package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/legalsuite/case-service/internal/domain"
	"github.com/legalsuite/case-service/internal/repository"
	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

// ReportService builds read-only projections over lawyers and their caseload.
type ReportService struct {
	lawyers  repository.LawyerRepository
	lawsuits repository.LawsuitRepository
}

// NewReportService constructs the service.
func NewReportService(lawyers repository.LawyerRepository, lawsuits repository.LawsuitRepository) *ReportService {
	return &ReportService{lawyers: lawyers, lawsuits: lawsuits}
}

// LawyerReport pairs a lawyer's identity with every lawsuit referencing them.
type LawyerReport struct {
	Lawyer   *domain.Lawyer
	Lawsuits []domain.Lawsuit
}

// GetLawyerReport returns the lawyer plus their current caseload, in the
// same stable order the lawsuit listing uses.
func (s *ReportService) GetLawyerReport(ctx context.Context, lawyerID string) (*LawyerReport, error) {
	if uuid.Validate(lawyerID) != nil {
		return nil, apperrors.NewNotFound("lawyer")
	}

	lawyer, err := s.lawyers.GetByID(ctx, lawyerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("lawyer")
		}
		return nil, apperrors.MapError(err)
	}

	lawsuits, err := s.lawsuits.ListByLawyer(ctx, lawyerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	return &LawyerReport{Lawyer: lawyer, Lawsuits: lawsuits}, nil
}
