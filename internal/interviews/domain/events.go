package domain

import (
	"time"

	"github.com/google/uuid"

	sharedDomain "github.com/hiredeck/hiredeck/internal/shared/domain"
)

// Event types.
const (
	EventTypeInterviewScheduled = "interview.scheduled"
	EventTypeInterviewCancelled = "interview.cancelled"
)

// InterviewScheduled is raised when an interview is scheduled.
type InterviewScheduled struct {
	sharedDomain.BaseEvent
	ApplicationID   uuid.UUID     `json:"application_id"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	DurationMinutes int           `json:"duration_minutes"`
	InterviewType   InterviewType `json:"interview_type"`
}

// NewInterviewScheduled creates an InterviewScheduled event.
func NewInterviewScheduled(interviewID, applicationID uuid.UUID, scheduledAt time.Time, durationMinutes int, interviewType InterviewType) InterviewScheduled {
	return InterviewScheduled{
		BaseEvent:       sharedDomain.NewBaseEvent(interviewID, "interview", EventTypeInterviewScheduled),
		ApplicationID:   applicationID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: durationMinutes,
		InterviewType:   interviewType,
	}
}

// InterviewCancelled is raised when an interview is cancelled.
type InterviewCancelled struct {
	sharedDomain.BaseEvent
	ApplicationID uuid.UUID `json:"application_id"`
	Reason        string    `json:"reason"`
}

// NewInterviewCancelled creates an InterviewCancelled event.
func NewInterviewCancelled(interviewID, applicationID uuid.UUID, reason string) InterviewCancelled {
	return InterviewCancelled{
		BaseEvent:     sharedDomain.NewBaseEvent(interviewID, "interview", EventTypeInterviewCancelled),
		ApplicationID: applicationID,
		Reason:        reason,
	}
}
