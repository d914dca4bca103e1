// Package commands contains interview write operations.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	applicationDomain "github.com/hiredeck/hiredeck/internal/applications/domain"
	calendarApp "github.com/hiredeck/hiredeck/internal/calendar/application"
	candidateDomain "github.com/hiredeck/hiredeck/internal/candidates/domain"
	interviewApp "github.com/hiredeck/hiredeck/internal/interviews/application"
	"github.com/hiredeck/hiredeck/internal/interviews/domain"
	notifyApp "github.com/hiredeck/hiredeck/internal/notifications/application"
	sharedApp "github.com/hiredeck/hiredeck/internal/shared/application"
)

// Command errors.
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrMissingSchedule     = errors.New("a date and time must be selected")
)

// ScheduleInterviewCommand represents a confirmed scheduling request.
type ScheduleInterviewCommand struct {
	ApplicationID   uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	InterviewType   domain.InterviewType
	// WantVideoLink requests a meeting resource on the connected calendar.
	WantVideoLink bool
}

// ScheduleResult is the outcome of a scheduling attempt. Degraded lists the
// best-effort steps that failed; the interview itself is always persisted
// when err is nil.
type ScheduleResult struct {
	Interview *domain.Interview
	Degraded  []string
}

// ScheduleInterviewHandler orchestrates interview scheduling: validation,
// optional meeting creation, persistence, application status transition,
// and notifications. Persistence is the only step whose failure fails the
// operation; everything downstream of it is best-effort.
type ScheduleInterviewHandler struct {
	interviews   domain.Repository
	applications applicationDomain.Repository
	candidates   candidateDomain.Repository
	meetings     calendarApp.MeetingCreator
	notifier     notifyApp.Dispatcher
	locker       interviewApp.AdvisoryLocker
	uow          sharedApp.UnitOfWork
	events       sharedApp.EventRecorder
	pipeline     *sharedApp.Pipeline
	logger       *slog.Logger
	lockTTL      time.Duration
}

// ScheduleInterviewDeps bundles the handler's collaborators.
type ScheduleInterviewDeps struct {
	Interviews   domain.Repository
	Applications applicationDomain.Repository
	Candidates   candidateDomain.Repository
	// Meetings may be nil when no calendar is connected.
	Meetings calendarApp.MeetingCreator
	Notifier notifyApp.Dispatcher
	// Locker may be nil; scheduling then runs uncoordinated.
	Locker  interviewApp.AdvisoryLocker
	UoW     sharedApp.UnitOfWork
	Events  sharedApp.EventRecorder
	Logger  *slog.Logger
	LockTTL time.Duration
}

// NewScheduleInterviewHandler creates a new handler.
func NewScheduleInterviewHandler(deps ScheduleInterviewDeps) *ScheduleInterviewHandler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Locker == nil {
		deps.Locker = interviewApp.NewNoopLocker()
	}
	if deps.Events == nil {
		deps.Events = sharedApp.NewNoopEventRecorder()
	}
	if deps.LockTTL <= 0 {
		deps.LockTTL = 30 * time.Second
	}
	return &ScheduleInterviewHandler{
		interviews:   deps.Interviews,
		applications: deps.Applications,
		candidates:   deps.Candidates,
		meetings:     deps.Meetings,
		notifier:     deps.Notifier,
		locker:       deps.Locker,
		uow:          deps.UoW,
		events:       deps.Events,
		pipeline:     sharedApp.NewPipeline(deps.Logger),
		logger:       deps.Logger,
		lockTTL:      deps.LockTTL,
	}
}

// Handle executes the scheduling pipeline. The returned result carries the
// persisted interview; a degraded result still counts as success.
func (h *ScheduleInterviewHandler) Handle(ctx context.Context, cmd ScheduleInterviewCommand) (*ScheduleResult, error) {
	if cmd.ScheduledAt.IsZero() {
		return nil, ErrMissingSchedule
	}

	release, err := h.locker.Acquire(ctx, "interview-schedule:"+cmd.ApplicationID.String(), h.lockTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		application *applicationDomain.Application
		candidate   *candidateDomain.Candidate
		interview   *domain.Interview
	)

	steps := []sharedApp.Step{
		{
			Name:   "validating",
			Policy: sharedApp.Required,
			Run: func(ctx context.Context) error {
				application, err = h.applications.FindByID(ctx, cmd.ApplicationID)
				if err != nil {
					return err
				}
				if application == nil {
					return ErrApplicationNotFound
				}
				candidate, err = h.candidates.FindByID(ctx, application.CandidateID())
				if err != nil {
					return err
				}
				interview, err = domain.NewInterview(cmd.ApplicationID, cmd.ScheduledAt, cmd.DurationMinutes, cmd.InterviewType)
				return err
			},
		},
		{
			Name:   "creating-meeting",
			Policy: sharedApp.BestEffort,
			Run: func(ctx context.Context) error {
				if !cmd.WantVideoLink || h.meetings == nil {
					return nil
				}
				req := calendarApp.MeetingRequest{
					Title:         fmt.Sprintf("%s interview: %s", cmd.InterviewType, application.Position()),
					Description:   fmt.Sprintf("Interview for the %s application", application.Position()),
					Start:         interview.TimeRange().Start(),
					End:           interview.TimeRange().End(),
					WantVideoLink: true,
				}
				if candidate != nil {
					req.AttendeeEmail = candidate.Email()
				}
				meeting, err := h.meetings.CreateMeeting(ctx, req)
				if err != nil {
					return err
				}
				interview.AttachMeeting(meeting.MeetingID, meeting.JoinURL)
				return nil
			},
		},
		{
			Name:   "persisting",
			Policy: sharedApp.Required,
			Run: func(ctx context.Context) error {
				return sharedApp.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
					if err := h.interviews.Save(txCtx, interview); err != nil {
						return err
					}
					return sharedApp.RecordAndClear(txCtx, h.events, interview)
				})
			},
		},
		{
			Name:   "updating-status",
			Policy: sharedApp.BestEffort,
			Run: func(ctx context.Context) error {
				if application.Status() == applicationDomain.StatusInterview {
					return nil
				}
				if err := application.TransitionTo(applicationDomain.StatusInterview); err != nil {
					return err
				}
				return sharedApp.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
					if err := h.applications.Save(txCtx, application); err != nil {
						return err
					}
					return sharedApp.RecordAndClear(txCtx, h.events, application)
				})
			},
		},
		{
			Name:   "notifying",
			Policy: sharedApp.BestEffort,
			Run: func(ctx context.Context) error {
				if h.notifier == nil || candidate == nil {
					return nil
				}
				body := fmt.Sprintf("Your %s interview for %s is scheduled at %s.",
					cmd.InterviewType, application.Position(), interview.ScheduledAt().Format(time.RFC1123))
				if url := interview.MeetingURL(); url != nil {
					body += " Join: " + *url
				}
				if err := h.notifier.SendEmail(ctx, notifyApp.EmailMessage{
					To:      candidate.Email(),
					Subject: "Interview scheduled",
					Body:    body,
				}); err != nil {
					return err
				}
				return h.notifier.PostChatMessage(ctx, fmt.Sprintf(
					"Interview scheduled: %s (%s) at %s",
					candidate.Name(), application.Position(), interview.ScheduledAt().Format(time.RFC1123),
				))
			},
		},
	}

	result, err := h.pipeline.Execute(ctx, steps)
	if err != nil {
		return nil, err
	}

	return &ScheduleResult{Interview: interview, Degraded: result.Degraded}, nil
}
