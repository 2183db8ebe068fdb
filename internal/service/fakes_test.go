package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/legalsuite/case-service/internal/domain"
	"github.com/legalsuite/case-service/internal/repository"
)

type fakeUserRepo struct {
	users map[string]*domain.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	var result []domain.User
	for _, user := range r.users {
		result = append(result, *user)
	}
	return result, nil
}

type fakeLawyerRepo struct {
	lawyers map[string]*domain.Lawyer
	order   []string
}

func newFakeLawyerRepo() *fakeLawyerRepo {
	return &fakeLawyerRepo{lawyers: make(map[string]*domain.Lawyer)}
}

func (r *fakeLawyerRepo) Create(_ context.Context, lawyer *domain.Lawyer) error {
	lawyer.ID = uuid.NewString()
	lawyer.CreatedAt = time.Now()
	lawyer.UpdatedAt = lawyer.CreatedAt
	stored := *lawyer
	r.lawyers[lawyer.ID] = &stored
	r.order = append(r.order, lawyer.ID)
	return nil
}

func (r *fakeLawyerRepo) GetByID(_ context.Context, id string) (*domain.Lawyer, error) {
	if lawyer, ok := r.lawyers[id]; ok {
		copied := *lawyer
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeLawyerRepo) List(_ context.Context) ([]domain.Lawyer, error) {
	result := make([]domain.Lawyer, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.lawyers[id])
	}
	return result, nil
}

type fakeLawsuitRepo struct {
	lawsuits map[string]*domain.Lawsuit
	order    []string
}

func newFakeLawsuitRepo() *fakeLawsuitRepo {
	return &fakeLawsuitRepo{lawsuits: make(map[string]*domain.Lawsuit)}
}

func (r *fakeLawsuitRepo) Create(_ context.Context, lawsuit *domain.Lawsuit) error {
	lawsuit.ID = uuid.NewString()
	lawsuit.CreatedAt = time.Now()
	lawsuit.UpdatedAt = lawsuit.CreatedAt
	stored := *lawsuit
	r.lawsuits[lawsuit.ID] = &stored
	r.order = append(r.order, lawsuit.ID)
	return nil
}

func (r *fakeLawsuitRepo) GetByID(_ context.Context, id string) (*domain.Lawsuit, error) {
	if lawsuit, ok := r.lawsuits[id]; ok {
		copied := *lawsuit
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeLawsuitRepo) List(_ context.Context, filter repository.LawsuitFilter) ([]domain.Lawsuit, error) {
	var result []domain.Lawsuit
	for _, id := range r.order {
		lawsuit := r.lawsuits[id]
		if filter.Status != nil && lawsuit.Status != *filter.Status {
			continue
		}
		if filter.LawyerID != nil {
			if lawsuit.LawyerID == nil || *lawsuit.LawyerID != *filter.LawyerID {
				continue
			}
		}
		result = append(result, *lawsuit)
	}
	return result, nil
}

func (r *fakeLawsuitRepo) ListByLawyer(ctx context.Context, lawyerID string) ([]domain.Lawsuit, error) {
	return r.List(ctx, repository.LawsuitFilter{LawyerID: &lawyerID})
}

// AssignLawyer mirrors the conditional single-statement update: both fields
// change together and resolved rows are untouchable.
func (r *fakeLawsuitRepo) AssignLawyer(_ context.Context, lawsuitID, lawyerID string) (*domain.Lawsuit, error) {
	lawsuit, ok := r.lawsuits[lawsuitID]
	if !ok || lawsuit.Status == domain.LawsuitStatusResolved {
		return nil, pgx.ErrNoRows
	}
	lawsuit.LawyerID = &lawyerID
	lawsuit.Status = domain.LawsuitStatusAssigned
	lawsuit.UpdatedAt = time.Now()
	copied := *lawsuit
	return &copied, nil
}

func (r *fakeLawsuitRepo) Resolve(_ context.Context, lawsuitID string) (*domain.Lawsuit, error) {
	lawsuit, ok := r.lawsuits[lawsuitID]
	if !ok || lawsuit.Status == domain.LawsuitStatusPending {
		return nil, pgx.ErrNoRows
	}
	lawsuit.Status = domain.LawsuitStatusResolved
	lawsuit.UpdatedAt = time.Now()
	copied := *lawsuit
	return &copied, nil
}
