package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hiredeck/hiredeck/internal/interviews/domain"
	sharedPersistence "github.com/hiredeck/hiredeck/internal/shared/infrastructure/persistence"
)

const sqliteSelectInterview = `
	SELECT id, application_id, scheduled_at, duration_minutes, interview_type,
	       status, meeting_url, meeting_id, created_at, updated_at
	FROM interviews
`

// SQLiteInterviewRepository implements domain.Repository on the embedded
// store used in local mode.
type SQLiteInterviewRepository struct {
	db *sql.DB
}

// NewSQLiteInterviewRepository creates a new SQLite interview repository.
func NewSQLiteInterviewRepository(db *sql.DB) *SQLiteInterviewRepository {
	return &SQLiteInterviewRepository{db: db}
}

type sqliteExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *SQLiteInterviewRepository) executor(ctx context.Context) sqliteExecutor {
	if info, ok := sharedPersistence.SQLiteTxInfoFromContext(ctx); ok {
		return info.Tx
	}
	return r.db
}

// Save persists an interview.
func (r *SQLiteInterviewRepository) Save(ctx context.Context, interview *domain.Interview) error {
	query := `
		INSERT INTO interviews (id, application_id, scheduled_at, duration_minutes,
		                        interview_type, status, meeting_url, meeting_id,
		                        created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			status = excluded.status,
			meeting_url = excluded.meeting_url,
			meeting_id = excluded.meeting_id,
			updated_at = excluded.updated_at
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		interview.ID().String(),
		interview.ApplicationID().String(),
		interview.ScheduledAt().UTC(),
		interview.DurationMinutes(),
		string(interview.InterviewType()),
		string(interview.Status()),
		interview.MeetingURL(),
		interview.MeetingID(),
		interview.CreatedAt().UTC(),
		interview.UpdatedAt().UTC(),
	)
	return err
}

// FindByID retrieves an interview by ID.
func (r *SQLiteInterviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Interview, error) {
	row := r.executor(ctx).QueryRowContext(ctx, sqliteSelectInterview+` WHERE id = ?`, id.String())
	interview, err := scanSQLiteInterview(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return interview, nil
}

// FindByApplication retrieves all interviews for an application.
func (r *SQLiteInterviewRepository) FindByApplication(ctx context.Context, applicationID uuid.UUID) ([]*domain.Interview, error) {
	rows, err := r.executor(ctx).QueryContext(ctx,
		sqliteSelectInterview+` WHERE application_id = ? ORDER BY scheduled_at`, applicationID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSQLiteInterviews(rows)
}

// ListScheduledBetween returns scheduled interviews starting in [from, to).
func (r *SQLiteInterviewRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*domain.Interview, error) {
	rows, err := r.executor(ctx).QueryContext(ctx,
		sqliteSelectInterview+` WHERE status = 'scheduled' AND scheduled_at >= ? AND scheduled_at < ? ORDER BY scheduled_at`,
		from.UTC(), to.UTC(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSQLiteInterviews(rows)
}

func scanSQLiteInterview(s rowScanner) (*domain.Interview, error) {
	var (
		idStr, appIDStr string
		row             interviewRow
	)
	err := s.Scan(
		&idStr, &appIDStr, &row.ScheduledAt, &row.DurationMinutes,
		&row.InterviewType, &row.Status, &row.MeetingURL, &row.MeetingID,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if row.ID, err = uuid.Parse(idStr); err != nil {
		return nil, err
	}
	if row.ApplicationID, err = uuid.Parse(appIDStr); err != nil {
		return nil, err
	}
	return rowToInterview(row), nil
}

func scanSQLiteInterviews(rows *sql.Rows) ([]*domain.Interview, error) {
	interviews := make([]*domain.Interview, 0)
	for rows.Next() {
		interview, err := scanSQLiteInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, interview)
	}
	return interviews, rows.Err()
}
