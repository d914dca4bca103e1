package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/hiredeck/hiredeck/internal/candidates/domain"
	sharedPersistence "github.com/hiredeck/hiredeck/internal/shared/infrastructure/persistence"
)

const sqliteSelectCandidate = `
	SELECT id, name, email, phone, created_at, updated_at
	FROM candidates
`

// SQLiteCandidateRepository implements domain.Repository on the embedded
// store used in local mode.
type SQLiteCandidateRepository struct {
	db *sql.DB
}

// NewSQLiteCandidateRepository creates a new SQLite candidate repository.
func NewSQLiteCandidateRepository(db *sql.DB) *SQLiteCandidateRepository {
	return &SQLiteCandidateRepository{db: db}
}

type sqliteExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *SQLiteCandidateRepository) executor(ctx context.Context) sqliteExecutor {
	if info, ok := sharedPersistence.SQLiteTxInfoFromContext(ctx); ok {
		return info.Tx
	}
	return r.db
}

// Save persists a candidate.
func (r *SQLiteCandidateRepository) Save(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (id, name, email, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			updated_at = excluded.updated_at
	`
	_, err := r.executor(ctx).ExecContext(ctx, query,
		candidate.ID().String(),
		candidate.Name(),
		candidate.Email(),
		candidate.Phone(),
		candidate.CreatedAt().UTC(),
		candidate.UpdatedAt().UTC(),
	)
	return err
}

// FindByID retrieves a candidate by ID.
func (r *SQLiteCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	return r.queryOne(ctx, sqliteSelectCandidate+` WHERE id = ?`, id.String())
}

// FindByEmail retrieves a candidate by email.
func (r *SQLiteCandidateRepository) FindByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	return r.queryOne(ctx, sqliteSelectCandidate+` WHERE email = ?`, email)
}

// List retrieves all candidates ordered by creation time.
func (r *SQLiteCandidateRepository) List(ctx context.Context) ([]*domain.Candidate, error) {
	rows, err := r.executor(ctx).QueryContext(ctx, sqliteSelectCandidate+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]*domain.Candidate, 0)
	for rows.Next() {
		candidate, err := scanSQLiteCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

func (r *SQLiteCandidateRepository) queryOne(ctx context.Context, query string, arg any) (*domain.Candidate, error) {
	candidate, err := scanSQLiteCandidate(r.executor(ctx).QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return candidate, nil
}

type candidateScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteCandidate(s candidateScanner) (*domain.Candidate, error) {
	var row candidateRow
	var idStr string
	if err := s.Scan(&idStr, &row.Name, &row.Email, &row.Phone, &row.CreatedAt, &row.UpdatedAt); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	row.ID = id
	return rowToCandidate(row), nil
}
