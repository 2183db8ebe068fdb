package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/legalsuite/case-service/internal/domain"
	"github.com/legalsuite/case-service/internal/repository"
	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

// LawyerService manages the lawyer directory.
type LawyerService struct {
	lawyers repository.LawyerRepository
}

// NewLawyerService constructs the service.
func NewLawyerService(lawyers repository.LawyerRepository) *LawyerService {
	return &LawyerService{lawyers: lawyers}
}

// LawyerCreateInput describes lawyer creation payload.
type LawyerCreateInput struct {
	Name           string
	Email          string
	Phone          string
	Specialization string
	Status         domain.LawyerStatus
}

// CreateLawyer registers a lawyer. Status defaults to active.
func (s *LawyerService) CreateLawyer(ctx context.Context, input LawyerCreateInput) (*domain.Lawyer, error) {
	lawyer := &domain.Lawyer{
		Name:           strings.TrimSpace(input.Name),
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		Specialization: strings.TrimSpace(input.Specialization),
		Status:         input.Status,
	}
	if lawyer.Status == "" {
		lawyer.Status = domain.LawyerStatusActive
	}

	if err := s.lawyers.Create(ctx, lawyer); err != nil {
		return nil, apperrors.MapError(err)
	}
	return lawyer, nil
}

// ListLawyers returns every lawyer.
func (s *LawyerService) ListLawyers(ctx context.Context) ([]domain.Lawyer, error) {
	lawyers, err := s.lawyers.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return lawyers, nil
}

// GetLawyer returns a single lawyer by id.
func (s *LawyerService) GetLawyer(ctx context.Context, id string) (*domain.Lawyer, error) {
	if uuid.Validate(id) != nil {
		return nil, apperrors.NewNotFound("lawyer")
	}
	lawyer, err := s.lawyers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("lawyer")
		}
		return nil, apperrors.MapError(err)
	}
	return lawyer, nil
}
