// Package persistence provides application repository implementations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hiredeck/hiredeck/internal/applications/domain"
	sharedPersistence "github.com/hiredeck/hiredeck/internal/shared/infrastructure/persistence"
)

const selectApplicationColumns = `
	SELECT id, candidate_id, position, status, created_at, updated_at
	FROM applications
`

// PostgresApplicationRepository implements domain.Repository using PostgreSQL.
type PostgresApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository.
func NewPostgresApplicationRepository(pool *pgxpool.Pool) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{pool: pool}
}

type applicationRow struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	Position    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Save persists an application.
func (r *PostgresApplicationRepository) Save(ctx context.Context, application *domain.Application) error {
	query := `
		INSERT INTO applications (id, candidate_id, position, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = NOW()
	`

	execer := sharedPersistence.Executor(ctx, r.pool)
	_, err := execer.Exec(ctx, query,
		application.ID(),
		application.CandidateID(),
		application.Position(),
		string(application.Status()),
		application.CreatedAt(),
		application.UpdatedAt(),
	)
	return err
}

// FindByID retrieves an application by ID.
func (r *PostgresApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	var row applicationRow
	err := r.pool.QueryRow(ctx, selectApplicationColumns+` WHERE id = $1`, id).Scan(
		&row.ID, &row.CandidateID, &row.Position, &row.Status, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToApplication(row), nil
}

// FindByCandidate retrieves all applications submitted by a candidate.
func (r *PostgresApplicationRepository) FindByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*domain.Application, error) {
	rows, err := r.pool.Query(ctx, selectApplicationColumns+` WHERE candidate_id = $1 ORDER BY created_at DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

// List retrieves applications, optionally filtered by pipeline stage.
// An empty status returns all applications.
func (r *PostgresApplicationRepository) List(ctx context.Context, status domain.Status) ([]*domain.Application, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status == "" {
		rows, err = r.pool.Query(ctx, selectApplicationColumns+` ORDER BY created_at DESC`)
	} else {
		rows, err = r.pool.Query(ctx, selectApplicationColumns+` WHERE status = $1 ORDER BY created_at DESC`, string(status))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func scanApplications(rows pgx.Rows) ([]*domain.Application, error) {
	applications := make([]*domain.Application, 0)
	for rows.Next() {
		var row applicationRow
		if err := rows.Scan(&row.ID, &row.CandidateID, &row.Position, &row.Status, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		applications = append(applications, rowToApplication(row))
	}
	return applications, rows.Err()
}

func rowToApplication(row applicationRow) *domain.Application {
	return domain.RehydrateApplication(
		row.ID, row.CandidateID, row.Position, domain.Status(row.Status), row.CreatedAt, row.UpdatedAt,
	)
}
