// Package persistence provides candidate repository implementations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hiredeck/hiredeck/internal/candidates/domain"
	sharedPersistence "github.com/hiredeck/hiredeck/internal/shared/infrastructure/persistence"
)

// PostgresCandidateRepository implements domain.Repository using PostgreSQL.
type PostgresCandidateRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCandidateRepository creates a new PostgreSQL candidate repository.
func NewPostgresCandidateRepository(pool *pgxpool.Pool) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{pool: pool}
}

type candidateRow struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Save persists a candidate.
func (r *PostgresCandidateRepository) Save(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			updated_at = NOW()
	`

	execer := sharedPersistence.Executor(ctx, r.pool)
	_, err := execer.Exec(ctx, query,
		candidate.ID(),
		candidate.Name(),
		candidate.Email(),
		candidate.Phone(),
		candidate.CreatedAt(),
		candidate.UpdatedAt(),
	)
	return err
}

// FindByID retrieves a candidate by ID.
func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM candidates
		WHERE id = $1
	`
	return r.queryOne(ctx, query, id)
}

// FindByEmail retrieves a candidate by email.
func (r *PostgresCandidateRepository) FindByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM candidates
		WHERE email = $1
	`
	return r.queryOne(ctx, query, email)
}

// List retrieves all candidates ordered by creation time.
func (r *PostgresCandidateRepository) List(ctx context.Context) ([]*domain.Candidate, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM candidates
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]*domain.Candidate, 0)
	for rows.Next() {
		var row candidateRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Email, &row.Phone, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		candidates = append(candidates, rowToCandidate(row))
	}

	return candidates, rows.Err()
}

func (r *PostgresCandidateRepository) queryOne(ctx context.Context, query string, arg any) (*domain.Candidate, error) {
	var row candidateRow
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&row.ID, &row.Name, &row.Email, &row.Phone, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToCandidate(row), nil
}

func rowToCandidate(row candidateRow) *domain.Candidate {
	return domain.RehydrateCandidate(row.ID, row.Name, row.Email, row.Phone, row.CreatedAt, row.UpdatedAt)
}
