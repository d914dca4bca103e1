// Package commands contains application pipeline write operations.
package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hiredeck/hiredeck/internal/applications/domain"
	candidateDomain "github.com/hiredeck/hiredeck/internal/candidates/domain"
	sharedApp "github.com/hiredeck/hiredeck/internal/shared/application"
)

// ErrCandidateNotFound is returned when the applying candidate does not exist.
var ErrCandidateNotFound = errors.New("candidate not found")

// SubmitApplicationCommand represents a candidate applying for a position.
type SubmitApplicationCommand struct {
	CandidateID uuid.UUID
	Position    string
}

// SubmitApplicationHandler handles the SubmitApplicationCommand.
type SubmitApplicationHandler struct {
	applications domain.Repository
	candidates   candidateDomain.Repository
	uow          sharedApp.UnitOfWork
	events       sharedApp.EventRecorder
}

// NewSubmitApplicationHandler creates a new handler.
func NewSubmitApplicationHandler(
	applications domain.Repository,
	candidates candidateDomain.Repository,
	uow sharedApp.UnitOfWork,
	events sharedApp.EventRecorder,
) *SubmitApplicationHandler {
	return &SubmitApplicationHandler{
		applications: applications,
		candidates:   candidates,
		uow:          uow,
		events:       events,
	}
}

// Handle executes the command. The application row and its submitted event
// are written in a single transaction.
func (h *SubmitApplicationHandler) Handle(ctx context.Context, cmd SubmitApplicationCommand) (*domain.Application, error) {
	candidate, err := h.candidates.FindByID(ctx, cmd.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}

	app, err := domain.NewApplication(cmd.CandidateID, cmd.Position)
	if err != nil {
		return nil, err
	}

	err = sharedApp.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		if err := h.applications.Save(txCtx, app); err != nil {
			return err
		}
		return sharedApp.RecordAndClear(txCtx, h.events, app)
	})
	if err != nil {
		return nil, err
	}

	return app, nil
}
