package domain

import (
	"github.com/google/uuid"

	sharedDomain "github.com/hiredeck/hiredeck/internal/shared/domain"
)

// Event types.
const (
	EventTypeApplicationSubmitted     = "application.submitted"
	EventTypeApplicationStatusChanged = "application.status_changed"
)

// ApplicationSubmitted is raised when a candidate applies for a position.
type ApplicationSubmitted struct {
	sharedDomain.BaseEvent
	CandidateID uuid.UUID `json:"candidate_id"`
	Position    string    `json:"position"`
}

// NewApplicationSubmitted creates an ApplicationSubmitted event.
func NewApplicationSubmitted(applicationID, candidateID uuid.UUID, position string) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:   sharedDomain.NewBaseEvent(applicationID, "application", EventTypeApplicationSubmitted),
		CandidateID: candidateID,
		Position:    position,
	}
}

// ApplicationStatusChanged is raised on every pipeline stage transition.
type ApplicationStatusChanged struct {
	sharedDomain.BaseEvent
	CandidateID uuid.UUID `json:"candidate_id"`
	From        Status    `json:"from"`
	To          Status    `json:"to"`
}

// NewApplicationStatusChanged creates an ApplicationStatusChanged event.
func NewApplicationStatusChanged(applicationID, candidateID uuid.UUID, from, to Status) ApplicationStatusChanged {
	return ApplicationStatusChanged{
		BaseEvent:   sharedDomain.NewBaseEvent(applicationID, "application", EventTypeApplicationStatusChanged),
		CandidateID: candidateID,
		From:        from,
		To:          to,
	}
}
