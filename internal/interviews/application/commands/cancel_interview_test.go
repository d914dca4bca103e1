package commands

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiredeck/hiredeck/internal/interviews/domain"
)

func TestCancelInterview(t *testing.T) {
	repo := &memoryInterviewRepo{}
	iv, err := domain.NewInterview(uuid.New(), time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), 60, domain.TypeTechnical)
	require.NoError(t, err)
	iv.ClearDomainEvents()
	require.NoError(t, repo.Save(context.Background(), iv))

	handler := NewCancelInterviewHandler(repo, passthroughUoW{}, nil)

	cancelled, err := handler.Handle(context.Background(), CancelInterviewCommand{
		InterviewID: iv.ID(),
		Reason:      "candidate withdrew",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status())

	// record is kept, not deleted
	found, err := repo.FindByID(context.Background(), iv.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.StatusCancelled, found.Status())
}

func TestCancelInterview_NotFound(t *testing.T) {
	handler := NewCancelInterviewHandler(&memoryInterviewRepo{}, passthroughUoW{}, nil)

	_, err := handler.Handle(context.Background(), CancelInterviewCommand{InterviewID: uuid.New()})
	assert.ErrorIs(t, err, ErrInterviewNotFound)
}

func TestCancelInterview_AlreadyCancelled(t *testing.T) {
	repo := &memoryInterviewRepo{}
	iv, err := domain.NewInterview(uuid.New(), time.Now(), 30, domain.TypeHRScreen)
	require.NoError(t, err)
	require.NoError(t, iv.Cancel("first"))
	iv.ClearDomainEvents()
	require.NoError(t, repo.Save(context.Background(), iv))

	handler := NewCancelInterviewHandler(repo, passthroughUoW{}, nil)

	_, err = handler.Handle(context.Background(), CancelInterviewCommand{InterviewID: iv.ID(), Reason: "again"})
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}
