package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/hiredeck/hiredeck/internal/applications/domain"
	sharedPersistence "github.com/hiredeck/hiredeck/internal/shared/infrastructure/persistence"
)

const sqliteSelectApplication = `
	SELECT id, candidate_id, position, status, created_at, updated_at
	FROM applications
`

// SQLiteApplicationRepository implements domain.Repository on the embedded
// store used in local mode.
type SQLiteApplicationRepository struct {
	db *sql.DB
}

// NewSQLiteApplicationRepository creates a new SQLite application repository.
func NewSQLiteApplicationRepository(db *sql.DB) *SQLiteApplicationRepository {
	return &SQLiteApplicationRepository{db: db}
}

type sqliteExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *SQLiteApplicationRepository) executor(ctx context.Context) sqliteExecutor {
	if info, ok := sharedPersistence.SQLiteTxInfoFromContext(ctx); ok {
		return info.Tx
	}
	return r.db
}

// Save persists an application.
func (r *SQLiteApplicationRepository) Save(ctx context.Context, application *domain.Application) error {
	query := `
		INSERT INTO applications (id, candidate_id, position, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			status = excluded.status,
			updated_at = excluded.updated_at
	`
	_, err := r.executor(ctx).ExecContext(ctx, query,
		application.ID().String(),
		application.CandidateID().String(),
		application.Position(),
		string(application.Status()),
		application.CreatedAt().UTC(),
		application.UpdatedAt().UTC(),
	)
	return err
}

// FindByID retrieves an application by ID.
func (r *SQLiteApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	app, err := scanSQLiteApplication(r.executor(ctx).QueryRowContext(ctx, sqliteSelectApplication+` WHERE id = ?`, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return app, nil
}

// FindByCandidate retrieves all applications submitted by a candidate.
func (r *SQLiteApplicationRepository) FindByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*domain.Application, error) {
	rows, err := r.executor(ctx).QueryContext(ctx,
		sqliteSelectApplication+` WHERE candidate_id = ? ORDER BY created_at DESC`, candidateID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSQLiteApplications(rows)
}

// List retrieves applications, optionally filtered by pipeline stage.
func (r *SQLiteApplicationRepository) List(ctx context.Context, status domain.Status) ([]*domain.Application, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = r.executor(ctx).QueryContext(ctx, sqliteSelectApplication+` ORDER BY created_at DESC`)
	} else {
		rows, err = r.executor(ctx).QueryContext(ctx,
			sqliteSelectApplication+` WHERE status = ? ORDER BY created_at DESC`, string(status))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSQLiteApplications(rows)
}

type applicationScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteApplication(s applicationScanner) (*domain.Application, error) {
	var row applicationRow
	var idStr, candidateIDStr string
	if err := s.Scan(&idStr, &candidateIDStr, &row.Position, &row.Status, &row.CreatedAt, &row.UpdatedAt); err != nil {
		return nil, err
	}

	var err error
	if row.ID, err = uuid.Parse(idStr); err != nil {
		return nil, err
	}
	if row.CandidateID, err = uuid.Parse(candidateIDStr); err != nil {
		return nil, err
	}
	return rowToApplication(row), nil
}

func scanSQLiteApplications(rows *sql.Rows) ([]*domain.Application, error) {
	applications := make([]*domain.Application, 0)
	for rows.Next() {
		app, err := scanSQLiteApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}
