// Package domain contains the interview entity and scheduling rules.
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	sharedDomain "github.com/hiredeck/hiredeck/internal/shared/domain"
)

// InterviewType classifies the interview round.
type InterviewType string

const (
	TypeHRScreen   InterviewType = "hr_screen"
	TypeTechnical  InterviewType = "technical"
	TypeBehavioral InterviewType = "behavioral"
	TypeFinal      InterviewType = "final"
)

// Status is the interview lifecycle state. Interviews are never deleted;
// cancellation is a status change.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

// Domain errors.
var (
	ErrInvalidDuration      = errors.New("duration must be positive")
	ErrInvalidInterviewType = errors.New("invalid interview type")
	ErrAlreadyCancelled     = errors.New("interview is already cancelled")
)

// ParseInterviewType converts a string into an InterviewType.
func ParseInterviewType(s string) (InterviewType, error) {
	switch InterviewType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeHRScreen:
		return TypeHRScreen, nil
	case TypeTechnical:
		return TypeTechnical, nil
	case TypeBehavioral:
		return TypeBehavioral, nil
	case TypeFinal:
		return TypeFinal, nil
	default:
		return "", ErrInvalidInterviewType
	}
}

// Interview is a scheduled interview for an application.
type Interview struct {
	sharedDomain.BaseAggregateRoot
	applicationID   uuid.UUID
	scheduledAt     time.Time
	durationMinutes int
	interviewType   InterviewType
	status          Status
	meetingURL      *string
	meetingID       *string
}

// NewInterview creates a scheduled interview.
func NewInterview(applicationID uuid.UUID, scheduledAt time.Time, durationMinutes int, interviewType InterviewType) (*Interview, error) {
	if applicationID == uuid.Nil {
		return nil, errors.New("application ID is required")
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if _, err := ParseInterviewType(string(interviewType)); err != nil {
		return nil, err
	}

	iv := &Interview{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(),
		applicationID:     applicationID,
		scheduledAt:       scheduledAt.UTC(),
		durationMinutes:   durationMinutes,
		interviewType:     interviewType,
		status:            StatusScheduled,
	}
	iv.AddDomainEvent(NewInterviewScheduled(iv.ID(), applicationID, iv.scheduledAt, durationMinutes, interviewType))
	return iv, nil
}

// RehydrateInterview reconstructs an interview from persistence.
func RehydrateInterview(
	id, applicationID uuid.UUID,
	scheduledAt time.Time,
	durationMinutes int,
	interviewType InterviewType,
	status Status,
	meetingURL, meetingID *string,
	createdAt, updatedAt time.Time,
) *Interview {
	return &Interview{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(
			sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		),
		applicationID:   applicationID,
		scheduledAt:     scheduledAt,
		durationMinutes: durationMinutes,
		interviewType:   interviewType,
		status:          status,
		meetingURL:      meetingURL,
		meetingID:       meetingID,
	}
}

func (i *Interview) ApplicationID() uuid.UUID     { return i.applicationID }
func (i *Interview) ScheduledAt() time.Time       { return i.scheduledAt }
func (i *Interview) DurationMinutes() int         { return i.durationMinutes }
func (i *Interview) InterviewType() InterviewType { return i.interviewType }
func (i *Interview) Status() Status               { return i.status }
func (i *Interview) MeetingURL() *string          { return i.meetingURL }
func (i *Interview) MeetingID() *string           { return i.meetingID }

// TimeRange returns the half-open interval the interview occupies.
func (i *Interview) TimeRange() TimeRange {
	end := i.scheduledAt.Add(time.Duration(i.durationMinutes) * time.Minute)
	return TimeRange{start: i.scheduledAt, end: end}
}

// AttachMeeting records the meeting resource created for the interview.
func (i *Interview) AttachMeeting(meetingID, joinURL string) {
	i.meetingID = &meetingID
	i.meetingURL = &joinURL
	i.Touch()
}

// Cancel marks the interview as cancelled.
func (i *Interview) Cancel(reason string) error {
	if i.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	i.status = StatusCancelled
	i.Touch()
	i.AddDomainEvent(NewInterviewCancelled(i.ID(), i.applicationID, reason))
	return nil
}
