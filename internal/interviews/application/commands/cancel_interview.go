package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hiredeck/hiredeck/internal/interviews/domain"
	sharedApp "github.com/hiredeck/hiredeck/internal/shared/application"
)

// ErrInterviewNotFound is returned when no interview exists for the ID.
var ErrInterviewNotFound = errors.New("interview not found")

// CancelInterviewCommand cancels a scheduled interview.
type CancelInterviewCommand struct {
	InterviewID uuid.UUID
	Reason      string
}

// CancelInterviewHandler handles interview cancellation. Cancellation is a
// status change; the record is kept.
type CancelInterviewHandler struct {
	interviews domain.Repository
	uow        sharedApp.UnitOfWork
	events     sharedApp.EventRecorder
}

// NewCancelInterviewHandler creates a new handler.
func NewCancelInterviewHandler(interviews domain.Repository, uow sharedApp.UnitOfWork, events sharedApp.EventRecorder) *CancelInterviewHandler {
	if events == nil {
		events = sharedApp.NewNoopEventRecorder()
	}
	return &CancelInterviewHandler{interviews: interviews, uow: uow, events: events}
}

// Handle executes the command.
func (h *CancelInterviewHandler) Handle(ctx context.Context, cmd CancelInterviewCommand) (*domain.Interview, error) {
	interview, err := h.interviews.FindByID(ctx, cmd.InterviewID)
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, ErrInterviewNotFound
	}

	if err := interview.Cancel(cmd.Reason); err != nil {
		return nil, err
	}

	err = sharedApp.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		if err := h.interviews.Save(txCtx, interview); err != nil {
			return err
		}
		return sharedApp.RecordAndClear(txCtx, h.events, interview)
	})
	if err != nil {
		return nil, err
	}

	return interview, nil
}
