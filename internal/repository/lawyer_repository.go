package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/legalsuite/case-service/internal/domain"
)

// LawyerRepository handles persistence for lawyers.
type LawyerRepository interface {
	Create(ctx context.Context, lawyer *domain.Lawyer) error
	GetByID(ctx context.Context, id string) (*domain.Lawyer, error)
	List(ctx context.Context) ([]domain.Lawyer, error)
}

type lawyerRepository struct {
	pool *pgxpool.Pool
}

// NewLawyerRepository instantiates the repository.
func NewLawyerRepository(pool *pgxpool.Pool) LawyerRepository {
	return &lawyerRepository{pool: pool}
}

func (r *lawyerRepository) Create(ctx context.Context, lawyer *domain.Lawyer) error {
	const query = `
        INSERT INTO lawyers (name, email, phone, specialization, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		lawyer.Name,
		lawyer.Email,
		lawyer.Phone,
		lawyer.Specialization,
		lawyer.Status,
	).Scan(&lawyer.ID, &lawyer.CreatedAt, &lawyer.UpdatedAt)
}

func (r *lawyerRepository) GetByID(ctx context.Context, id string) (*domain.Lawyer, error) {
	const query = `
        SELECT id, name, email, phone, specialization, status, created_at, updated_at
        FROM lawyers WHERE id=$1`

	var lawyer domain.Lawyer
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&lawyer.ID,
		&lawyer.Name,
		&lawyer.Email,
		&lawyer.Phone,
		&lawyer.Specialization,
		&lawyer.Status,
		&lawyer.CreatedAt,
		&lawyer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &lawyer, nil
}

func (r *lawyerRepository) List(ctx context.Context) ([]domain.Lawyer, error) {
	const query = `
        SELECT id, name, email, phone, specialization, status, created_at, updated_at
        FROM lawyers ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Lawyer
	for rows.Next() {
		var lawyer domain.Lawyer
		if err := rows.Scan(
			&lawyer.ID,
			&lawyer.Name,
			&lawyer.Email,
			&lawyer.Phone,
			&lawyer.Specialization,
			&lawyer.Status,
			&lawyer.CreatedAt,
			&lawyer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, lawyer)
	}
	return result, rows.Err()
}
