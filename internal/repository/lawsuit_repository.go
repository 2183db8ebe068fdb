package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/legalsuite/case-service/internal/domain"
)

// LawsuitFilter captures the optional equality filters for listings.
type LawsuitFilter struct {
	Status   *domain.LawsuitStatus
	LawyerID *string
}

// LawsuitRepository encapsulates lawsuit persistence.
//
// AssignLawyer and Resolve are the only writers of the status column after
// creation; each performs its transition as a single conditional UPDATE so
// status and lawyer_id can never be observed out of step.
type LawsuitRepository interface {
	Create(ctx context.Context, lawsuit *domain.Lawsuit) error
	GetByID(ctx context.Context, id string) (*domain.Lawsuit, error)
	List(ctx context.Context, filter LawsuitFilter) ([]domain.Lawsuit, error)
	ListByLawyer(ctx context.Context, lawyerID string) ([]domain.Lawsuit, error)
	AssignLawyer(ctx context.Context, lawsuitID, lawyerID string) (*domain.Lawsuit, error)
	Resolve(ctx context.Context, lawsuitID string) (*domain.Lawsuit, error)
}

type lawsuitRepository struct {
	pool *pgxpool.Pool
}

// NewLawsuitRepository instantiates the repository.
func NewLawsuitRepository(pool *pgxpool.Pool) LawsuitRepository {
	return &lawsuitRepository{pool: pool}
}

const lawsuitColumns = `id, case_number, plaintiff, defendant, case_type, status, lawyer_id, created_at, updated_at`

func (r *lawsuitRepository) Create(ctx context.Context, lawsuit *domain.Lawsuit) error {
	const query = `
        INSERT INTO lawsuits (case_number, plaintiff, defendant, case_type, status, lawyer_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		lawsuit.CaseNumber,
		lawsuit.Plaintiff,
		lawsuit.Defendant,
		lawsuit.CaseType,
		lawsuit.Status,
		lawsuit.LawyerID,
	).Scan(&lawsuit.ID, &lawsuit.CreatedAt, &lawsuit.UpdatedAt)
}

func (r *lawsuitRepository) GetByID(ctx context.Context, id string) (*domain.Lawsuit, error) {
	query := fmt.Sprintf(`SELECT %s FROM lawsuits WHERE id=$1`, lawsuitColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *lawsuitRepository) List(ctx context.Context, filter LawsuitFilter) ([]domain.Lawsuit, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.LawyerID != nil {
		args = append(args, *filter.LawyerID)
		clauses = append(clauses, fmt.Sprintf("lawyer_id=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM lawsuits WHERE %s ORDER BY created_at`,
		lawsuitColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLawsuits(rows)
}

func (r *lawsuitRepository) ListByLawyer(ctx context.Context, lawyerID string) ([]domain.Lawsuit, error) {
	return r.List(ctx, LawsuitFilter{LawyerID: &lawyerID})
}

// AssignLawyer writes lawyer_id and status together in one statement. The
// status guard keeps resolved lawsuits immutable even under concurrent calls.
func (r *lawsuitRepository) AssignLawyer(ctx context.Context, lawsuitID, lawyerID string) (*domain.Lawsuit, error) {
	query := fmt.Sprintf(`
        UPDATE lawsuits SET lawyer_id=$1, status='assigned', updated_at=NOW()
        WHERE id=$2 AND status <> 'resolved'
        RETURNING %s`, lawsuitColumns)
	return r.fetchSingle(ctx, query, lawyerID, lawsuitID)
}

// Resolve advances an assigned lawsuit to the terminal resolved state.
func (r *lawsuitRepository) Resolve(ctx context.Context, lawsuitID string) (*domain.Lawsuit, error) {
	query := fmt.Sprintf(`
        UPDATE lawsuits SET status='resolved', updated_at=NOW()
        WHERE id=$1 AND status IN ('assigned', 'resolved')
        RETURNING %s`, lawsuitColumns)
	return r.fetchSingle(ctx, query, lawsuitID)
}

func (r *lawsuitRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Lawsuit, error) {
	var lawsuit domain.Lawsuit
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&lawsuit.ID,
		&lawsuit.CaseNumber,
		&lawsuit.Plaintiff,
		&lawsuit.Defendant,
		&lawsuit.CaseType,
		&lawsuit.Status,
		&lawsuit.LawyerID,
		&lawsuit.CreatedAt,
		&lawsuit.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &lawsuit, nil
}

func scanLawsuits(rows pgx.Rows) ([]domain.Lawsuit, error) {
	var result []domain.Lawsuit
	for rows.Next() {
		var lawsuit domain.Lawsuit
		if err := rows.Scan(
			&lawsuit.ID,
			&lawsuit.CaseNumber,
			&lawsuit.Plaintiff,
			&lawsuit.Defendant,
			&lawsuit.CaseType,
			&lawsuit.Status,
			&lawsuit.LawyerID,
			&lawsuit.CreatedAt,
			&lawsuit.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, lawsuit)
	}
	return result, rows.Err()
}
