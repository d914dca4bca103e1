package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/hiredeck/hiredeck/internal/interviews/domain"
	"github.com/hiredeck/hiredeck/internal/shared/infrastructure/migrations"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// the in-memory store drops state when a second connection opens
	db.SetMaxOpenConns(1)

	require.NoError(t, migrations.RunSQLiteMigrations(context.Background(), db))
	return db
}

func seedApplication(t *testing.T, db *sql.DB) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	candidateID := uuid.New()
	_, err := db.ExecContext(ctx,
		`INSERT INTO candidates (id, name, email, phone, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		candidateID.String(), "Ada", "ada@example.com", "", now, now,
	)
	require.NoError(t, err)

	applicationID := uuid.New()
	_, err = db.ExecContext(ctx,
		`INSERT INTO applications (id, candidate_id, position, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		applicationID.String(), candidateID.String(), "Backend Engineer", "applied", now, now,
	)
	require.NoError(t, err)

	return applicationID
}

func TestSQLiteInterviewRepository_SaveAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteInterviewRepository(db)
	ctx := context.Background()

	applicationID := seedApplication(t, db)
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	iv, err := domain.NewInterview(applicationID, at, 60, domain.TypeTechnical)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, iv))

	found, err := repo.FindByID(ctx, iv.ID())
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, iv.ID(), found.ID())
	assert.Equal(t, applicationID, found.ApplicationID())
	assert.True(t, at.Equal(found.ScheduledAt()))
	assert.Equal(t, 60, found.DurationMinutes())
	assert.Equal(t, domain.TypeTechnical, found.InterviewType())
	assert.Equal(t, domain.StatusScheduled, found.Status())
	assert.Nil(t, found.MeetingURL())
}

func TestSQLiteInterviewRepository_FindByID_NotFound(t *testing.T) {
	repo := NewSQLiteInterviewRepository(newTestDB(t))

	found, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSQLiteInterviewRepository_UpsertUpdatesStatusAndMeeting(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteInterviewRepository(db)
	ctx := context.Background()

	applicationID := seedApplication(t, db)
	iv, err := domain.NewInterview(applicationID, time.Now().UTC(), 30, domain.TypeHRScreen)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, iv))

	iv.AttachMeeting("meet-1", "https://meet.example.com/1")
	require.NoError(t, iv.Cancel("candidate withdrew"))
	require.NoError(t, repo.Save(ctx, iv))

	found, err := repo.FindByID(ctx, iv.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.StatusCancelled, found.Status())
	require.NotNil(t, found.MeetingURL())
	assert.Equal(t, "https://meet.example.com/1", *found.MeetingURL())
}

func TestSQLiteInterviewRepository_DuplicateSchedulesCoexist(t *testing.T) {
	// two interviews for the same application and time are both kept
	db := newTestDB(t)
	repo := NewSQLiteInterviewRepository(db)
	ctx := context.Background()

	applicationID := seedApplication(t, db)
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	first, err := domain.NewInterview(applicationID, at, 60, domain.TypeTechnical)
	require.NoError(t, err)
	second, err := domain.NewInterview(applicationID, at, 60, domain.TypeTechnical)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	all, err := repo.FindByApplication(ctx, applicationID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteInterviewRepository_ListScheduledBetween(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteInterviewRepository(db)
	ctx := context.Background()

	applicationID := seedApplication(t, db)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	inWindow, err := domain.NewInterview(applicationID, day.Add(10*time.Hour), 60, domain.TypeTechnical)
	require.NoError(t, err)
	afterWindow, err := domain.NewInterview(applicationID, day.AddDate(0, 0, 1).Add(10*time.Hour), 60, domain.TypeFinal)
	require.NoError(t, err)
	cancelled, err := domain.NewInterview(applicationID, day.Add(14*time.Hour), 30, domain.TypeHRScreen)
	require.NoError(t, err)
	require.NoError(t, cancelled.Cancel("withdrawn"))

	for _, iv := range []*domain.Interview{inWindow, afterWindow, cancelled} {
		require.NoError(t, repo.Save(ctx, iv))
	}

	listed, err := repo.ListScheduledBetween(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, inWindow.ID(), listed[0].ID())
}
