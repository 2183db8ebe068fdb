package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/legalsuite/case-service/internal/domain"
	"github.com/legalsuite/case-service/internal/events"
	"github.com/legalsuite/case-service/internal/repository"
	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

// LawsuitService owns the lawsuit lifecycle: creation, listing, lawyer
// assignment and resolution. It is the only writer of the status field.
type LawsuitService struct {
	lawsuits   repository.LawsuitRepository
	lawyers    repository.LawyerRepository
	dispatcher events.Dispatcher
}

// LawsuitDependencies bundles repositories.
type LawsuitDependencies struct {
	LawsuitRepo repository.LawsuitRepository
	LawyerRepo  repository.LawyerRepository
	Dispatcher  events.Dispatcher
}

// NewLawsuitService creates the service.
func NewLawsuitService(deps LawsuitDependencies) *LawsuitService {
	return &LawsuitService{
		lawsuits:   deps.LawsuitRepo,
		lawyers:    deps.LawyerRepo,
		dispatcher: deps.Dispatcher,
	}
}

// LawsuitCreateInput describes lawsuit creation payload. Field-shape
// constraints are checked declaratively at the boundary; this service
// enforces the status/lawyer_id coupling.
type LawsuitCreateInput struct {
	CaseNumber string
	Plaintiff  string
	Defendant  string
	CaseType   domain.CaseType
	Status     domain.LawsuitStatus
	LawyerID   *string
}

// LawsuitListFilter captures the optional listing filters.
type LawsuitListFilter struct {
	Status   *string
	LawyerID *string
}

// CreateLawsuit persists a new lawsuit after enforcing that status and
// lawyer_id cannot diverge: assigned requires a resolvable active lawyer,
// and a lawyer reference is only allowed on an assigned lawsuit.
func (s *LawsuitService) CreateLawsuit(ctx context.Context, input LawsuitCreateInput) (*domain.Lawsuit, error) {
	var violations []string
	if input.Status == domain.LawsuitStatusAssigned && input.LawyerID == nil {
		violations = append(violations, "lawyer_id is required when status is assigned")
	}
	if input.Status != domain.LawsuitStatusAssigned && input.LawyerID != nil {
		violations = append(violations, "lawyer_id must be empty unless status is assigned")
	}
	if len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	if input.LawyerID != nil {
		if err := s.checkAssignableLawyer(ctx, *input.LawyerID); err != nil {
			return nil, err
		}
	}

	lawsuit := &domain.Lawsuit{
		CaseNumber: strings.TrimSpace(input.CaseNumber),
		Plaintiff:  strings.TrimSpace(input.Plaintiff),
		Defendant:  strings.TrimSpace(input.Defendant),
		CaseType:   input.CaseType,
		Status:     input.Status,
		LawyerID:   input.LawyerID,
	}
	if err := s.lawsuits.Create(ctx, lawsuit); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.EventLawsuitCreated, lawsuit.ID, events.LawsuitCreatedPayload{
		CaseNumber: lawsuit.CaseNumber,
		CaseType:   lawsuit.CaseType,
		Status:     lawsuit.Status,
	})
	return lawsuit, nil
}

// ListLawsuits returns lawsuits matching the optional equality filters.
func (s *LawsuitService) ListLawsuits(ctx context.Context, filter LawsuitListFilter) ([]domain.Lawsuit, error) {
	var violations []string
	repoFilter := repository.LawsuitFilter{}

	if filter.Status != nil {
		status := domain.LawsuitStatus(*filter.Status)
		switch status {
		case domain.LawsuitStatusPending, domain.LawsuitStatusAssigned, domain.LawsuitStatusResolved:
			repoFilter.Status = &status
		default:
			violations = append(violations, "status must be one of: pending, assigned, resolved")
		}
	}
	if filter.LawyerID != nil {
		if uuid.Validate(*filter.LawyerID) != nil {
			violations = append(violations, "lawyer_id must be a valid identifier")
		} else {
			repoFilter.LawyerID = filter.LawyerID
		}
	}
	if len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	lawsuits, err := s.lawsuits.List(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return lawsuits, nil
}

// AssignLawyer binds a lawyer to a lawsuit and advances its status to
// assigned in a single atomic write. Re-assigning the same lawyer to an
// already-assigned lawsuit succeeds and leaves state unchanged.
func (s *LawsuitService) AssignLawyer(ctx context.Context, lawsuitID, lawyerID string) (*domain.Lawsuit, error) {
	if uuid.Validate(lawsuitID) != nil {
		return nil, apperrors.NewNotFound("lawsuit")
	}

	lawsuit, err := s.lawsuits.GetByID(ctx, lawsuitID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("lawsuit")
		}
		return nil, apperrors.MapError(err)
	}
	if lawsuit.Status == domain.LawsuitStatusResolved {
		return nil, apperrors.NewValidationError([]string{"lawsuit is resolved and can no longer be assigned"})
	}

	if err := s.checkAssignableLawyer(ctx, lawyerID); err != nil {
		return nil, err
	}

	updated, err := s.lawsuits.AssignLawyer(ctx, lawsuitID, lawyerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// lost a race against resolution; the transition is still rejected
			return nil, apperrors.NewValidationError([]string{"lawsuit is resolved and can no longer be assigned"})
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.EventLawsuitAssigned, updated.ID, events.LawsuitAssignedPayload{
		LawyerID: lawyerID,
	})
	return updated, nil
}

// ResolveLawsuit moves an assigned lawsuit to the terminal resolved state.
// Resolving an already-resolved lawsuit is a no-op success; a pending
// lawsuit cannot skip assignment.
func (s *LawsuitService) ResolveLawsuit(ctx context.Context, lawsuitID string) (*domain.Lawsuit, error) {
	if uuid.Validate(lawsuitID) != nil {
		return nil, apperrors.NewNotFound("lawsuit")
	}

	lawsuit, err := s.lawsuits.GetByID(ctx, lawsuitID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("lawsuit")
		}
		return nil, apperrors.MapError(err)
	}
	if lawsuit.Status == domain.LawsuitStatusResolved {
		return lawsuit, nil
	}
	if lawsuit.Status == domain.LawsuitStatusPending {
		return nil, apperrors.NewValidationError([]string{"lawsuit must be assigned before it can be resolved"})
	}

	updated, err := s.lawsuits.Resolve(ctx, lawsuitID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.EventLawsuitResolved, updated.ID, events.LawsuitResolvedPayload{
		LawyerID: updated.LawyerID,
	})
	return updated, nil
}

// checkAssignableLawyer verifies the reference resolves to an existing,
// active lawyer. Violations are reported as validation failures.
func (s *LawsuitService) checkAssignableLawyer(ctx context.Context, lawyerID string) error {
	if uuid.Validate(lawyerID) != nil {
		return apperrors.NewValidationError([]string{"lawyer_id must be a valid identifier"})
	}
	lawyer, err := s.lawyers.GetByID(ctx, lawyerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError([]string{"lawyer_id does not reference an existing lawyer"})
		}
		return apperrors.MapError(err)
	}
	if !lawyer.Active() {
		return apperrors.NewValidationError([]string{"lawyer_id references an inactive lawyer"})
	}
	return nil
}

func (s *LawsuitService) publishEvent(ctx context.Context, eventType events.EventType, lawsuitID string, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		LawsuitID: lawsuitID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
