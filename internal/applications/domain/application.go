// Package domain contains the job application aggregate and its lifecycle rules.
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	sharedDomain "github.com/hiredeck/hiredeck/internal/shared/domain"
)

// Status represents a stage in the hiring pipeline.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusScreening Status = "screening"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusHired     Status = "hired"
	StatusRejected  Status = "rejected"
)

// Domain errors.
var (
	ErrEmptyPosition     = errors.New("position cannot be empty")
	ErrInvalidStatus     = errors.New("invalid application status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyTerminal   = errors.New("application is in a terminal state")
)

// advancement order of the non-terminal pipeline stages.
var stageOrder = map[Status]int{
	StatusApplied:   0,
	StatusScreening: 1,
	StatusInterview: 2,
	StatusOffer:     3,
	StatusHired:     4,
}

// ParseStatus converts a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusApplied:
		return StatusApplied, nil
	case StatusScreening:
		return StatusScreening, nil
	case StatusInterview:
		return StatusInterview, nil
	case StatusOffer:
		return StatusOffer, nil
	case StatusHired:
		return StatusHired, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsTerminal reports whether no further transitions are allowed from the status.
func (s Status) IsTerminal() bool {
	return s == StatusHired || s == StatusRejected
}

// Application is a candidate's application for a position. It is the
// aggregate root of the hiring pipeline.
type Application struct {
	sharedDomain.BaseAggregateRoot
	candidateID uuid.UUID
	position    string
	status      Status
}

// NewApplication creates a new application in the applied stage.
func NewApplication(candidateID uuid.UUID, position string) (*Application, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return nil, ErrEmptyPosition
	}
	if candidateID == uuid.Nil {
		return nil, errors.New("candidate ID is required")
	}

	app := &Application{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(),
		candidateID:       candidateID,
		position:          position,
		status:            StatusApplied,
	}
	app.AddDomainEvent(NewApplicationSubmitted(app.ID(), candidateID, position))
	return app, nil
}

// RehydrateApplication reconstructs an application from persistence.
func RehydrateApplication(id, candidateID uuid.UUID, position string, status Status, createdAt, updatedAt time.Time) *Application {
	return &Application{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(
			sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		),
		candidateID: candidateID,
		position:    position,
		status:      status,
	}
}

// CandidateID returns the applying candidate's ID.
func (a *Application) CandidateID() uuid.UUID { return a.candidateID }

// Position returns the position applied for.
func (a *Application) Position() string { return a.position }

// Status returns the current pipeline stage.
func (a *Application) Status() Status { return a.status }

// Advance moves the application to the next pipeline stage.
func (a *Application) Advance() error {
	if a.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	order := stageOrder[a.status]
	for next, n := range stageOrder {
		if n == order+1 {
			return a.transitionTo(next)
		}
	}
	return ErrInvalidTransition
}

// Reject moves the application to the rejected stage from any non-terminal stage.
func (a *Application) Reject() error {
	if a.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	return a.transitionTo(StatusRejected)
}

// TransitionTo moves the application to the given stage, enforcing that
// stages only move forward or to rejected.
func (a *Application) TransitionTo(target Status) error {
	if a.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if target == StatusRejected {
		return a.transitionTo(target)
	}
	from, ok := stageOrder[a.status]
	to, okTarget := stageOrder[target]
	if !ok || !okTarget || to <= from {
		return ErrInvalidTransition
	}
	return a.transitionTo(target)
}

func (a *Application) transitionTo(target Status) error {
	previous := a.status
	a.status = target
	a.Touch()
	a.AddDomainEvent(NewApplicationStatusChanged(a.ID(), a.candidateID, previous, target))
	return nil
}
