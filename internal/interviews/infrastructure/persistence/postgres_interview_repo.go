// Package persistence provides interview repository implementations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hiredeck/hiredeck/internal/interviews/domain"
	sharedPersistence "github.com/hiredeck/hiredeck/internal/shared/infrastructure/persistence"
)

const selectInterviewColumns = `
	SELECT id, application_id, scheduled_at, duration_minutes, interview_type,
	       status, meeting_url, meeting_id, created_at, updated_at
	FROM interviews
`

// PostgresInterviewRepository implements domain.Repository using PostgreSQL.
type PostgresInterviewRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresInterviewRepository creates a new PostgreSQL interview repository.
func NewPostgresInterviewRepository(pool *pgxpool.Pool) *PostgresInterviewRepository {
	return &PostgresInterviewRepository{pool: pool}
}

type interviewRow struct {
	ID              uuid.UUID
	ApplicationID   uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	InterviewType   string
	Status          string
	MeetingURL      *string
	MeetingID       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Save persists an interview.
func (r *PostgresInterviewRepository) Save(ctx context.Context, interview *domain.Interview) error {
	query := `
		INSERT INTO interviews (id, application_id, scheduled_at, duration_minutes,
		                        interview_type, status, meeting_url, meeting_id,
		                        created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			meeting_url = EXCLUDED.meeting_url,
			meeting_id = EXCLUDED.meeting_id,
			updated_at = NOW()
	`

	execer := sharedPersistence.Executor(ctx, r.pool)
	_, err := execer.Exec(ctx, query,
		interview.ID(),
		interview.ApplicationID(),
		interview.ScheduledAt(),
		interview.DurationMinutes(),
		string(interview.InterviewType()),
		string(interview.Status()),
		interview.MeetingURL(),
		interview.MeetingID(),
		interview.CreatedAt(),
		interview.UpdatedAt(),
	)
	return err
}

// FindByID retrieves an interview by ID.
func (r *PostgresInterviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Interview, error) {
	var row interviewRow
	err := scanInterview(r.pool.QueryRow(ctx, selectInterviewColumns+` WHERE id = $1`, id), &row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToInterview(row), nil
}

// FindByApplication retrieves all interviews for an application.
func (r *PostgresInterviewRepository) FindByApplication(ctx context.Context, applicationID uuid.UUID) ([]*domain.Interview, error) {
	rows, err := r.pool.Query(ctx, selectInterviewColumns+` WHERE application_id = $1 ORDER BY scheduled_at`, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInterviews(rows)
}

// ListScheduledBetween returns scheduled interviews starting in [from, to).
func (r *PostgresInterviewRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*domain.Interview, error) {
	rows, err := r.pool.Query(ctx,
		selectInterviewColumns+` WHERE status = 'scheduled' AND scheduled_at >= $1 AND scheduled_at < $2 ORDER BY scheduled_at`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInterviews(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInterview(s rowScanner, row *interviewRow) error {
	return s.Scan(
		&row.ID, &row.ApplicationID, &row.ScheduledAt, &row.DurationMinutes,
		&row.InterviewType, &row.Status, &row.MeetingURL, &row.MeetingID,
		&row.CreatedAt, &row.UpdatedAt,
	)
}

func scanInterviews(rows pgx.Rows) ([]*domain.Interview, error) {
	interviews := make([]*domain.Interview, 0)
	for rows.Next() {
		var row interviewRow
		if err := scanInterview(rows, &row); err != nil {
			return nil, err
		}
		interviews = append(interviews, rowToInterview(row))
	}
	return interviews, rows.Err()
}

func rowToInterview(row interviewRow) *domain.Interview {
	return domain.RehydrateInterview(
		row.ID, row.ApplicationID, row.ScheduledAt, row.DurationMinutes,
		domain.InterviewType(row.InterviewType), domain.Status(row.Status),
		row.MeetingURL, row.MeetingID, row.CreatedAt, row.UpdatedAt,
	)
}
