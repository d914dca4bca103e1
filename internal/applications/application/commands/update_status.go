package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hiredeck/hiredeck/internal/applications/domain"
	sharedApp "github.com/hiredeck/hiredeck/internal/shared/application"
)

// ErrApplicationNotFound is returned when no application exists for the ID.
var ErrApplicationNotFound = errors.New("application not found")

// UpdateStatusCommand moves an application to a new pipeline stage.
type UpdateStatusCommand struct {
	ApplicationID uuid.UUID
	Target        domain.Status
}

// UpdateStatusHandler handles stage transitions.
type UpdateStatusHandler struct {
	applications domain.Repository
	uow          sharedApp.UnitOfWork
	events       sharedApp.EventRecorder
}

// NewUpdateStatusHandler creates a new handler.
func NewUpdateStatusHandler(
	applications domain.Repository,
	uow sharedApp.UnitOfWork,
	events sharedApp.EventRecorder,
) *UpdateStatusHandler {
	return &UpdateStatusHandler{applications: applications, uow: uow, events: events}
}

// Handle executes the command.
func (h *UpdateStatusHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) (*domain.Application, error) {
	app, err := h.applications.FindByID(ctx, cmd.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	if err := app.TransitionTo(cmd.Target); err != nil {
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

// AdvanceApplicationHandler moves an application to the next stage.
type AdvanceApplicationHandler struct {
	applications domain.Repository
	uow          sharedApp.UnitOfWork
	events       sharedApp.EventRecorder
}

// NewAdvanceApplicationHandler creates a new handler.
func NewAdvanceApplicationHandler(
	applications domain.Repository,
	uow sharedApp.UnitOfWork,
	events sharedApp.EventRecorder,
) *AdvanceApplicationHandler {
	return &AdvanceApplicationHandler{applications: applications, uow: uow, events: events}
}

// Handle advances the application one pipeline stage.
func (h *AdvanceApplicationHandler) Handle(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error) {
	app, err := h.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	if err := app.Advance(); err != nil {
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

// RejectApplicationHandler rejects an application.
type RejectApplicationHandler struct {
	applications domain.Repository
	uow          sharedApp.UnitOfWork
	events       sharedApp.EventRecorder
}

// NewRejectApplicationHandler creates a new handler.
func NewRejectApplicationHandler(
	applications domain.Repository,
	uow sharedApp.UnitOfWork,
	events sharedApp.EventRecorder,
) *RejectApplicationHandler {
	return &RejectApplicationHandler{applications: applications, uow: uow, events: events}
}

// Handle rejects the application.
func (h *RejectApplicationHandler) Handle(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error) {
	app, err := h.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	if err := app.Reject(); err != nil {
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
