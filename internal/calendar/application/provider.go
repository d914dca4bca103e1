// Package application defines the ports to external calendar providers.
package application

import (
	"context"
	"errors"
	"time"
)

// ErrNotConnected is returned when no calendar credential is configured.
// Callers treat it as "no known conflicts", not as a failure.
var ErrNotConnected = errors.New("calendar not connected")

// BusyPeriod is a time range the external calendar reports as occupied.
type BusyPeriod struct {
	Start time.Time
	End   time.Time
}

// AvailabilityProvider answers free/busy queries against an external calendar.
type AvailabilityProvider interface {
	// FreeBusy returns all busy periods between from and to.
	FreeBusy(ctx context.Context, from, to time.Time) ([]BusyPeriod, error)
}

// MeetingRequest describes a meeting resource to create.
type MeetingRequest struct {
	Title         string
	Description   string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
	WantVideoLink bool
}

// MeetingInfo is a created meeting resource.
type MeetingInfo struct {
	MeetingID string
	JoinURL   string
}

// MeetingCreator creates meeting resources on an external calendar.
type MeetingCreator interface {
	CreateMeeting(ctx context.Context, req MeetingRequest) (*MeetingInfo, error)
}

// NullProvider is the disconnected calendar. FreeBusy and CreateMeeting both
// report ErrNotConnected so schedulers can degrade instead of failing.
type NullProvider struct{}

// NewNullProvider creates a disconnected provider.
func NewNullProvider() *NullProvider {
	return &NullProvider{}
}

// FreeBusy reports that no calendar is connected.
func (p *NullProvider) FreeBusy(_ context.Context, _, _ time.Time) ([]BusyPeriod, error) {
	return nil, ErrNotConnected
}

// CreateMeeting reports that no calendar is connected.
func (p *NullProvider) CreateMeeting(_ context.Context, _ MeetingRequest) (*MeetingInfo, error) {
	return nil, ErrNotConnected
}
