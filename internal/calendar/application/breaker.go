package application

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerProvider wraps a calendar provider with a circuit breaker so a
// flapping upstream stops being queried for a cool-down period. Callers
// already treat availability errors as fail-open, so a tripped breaker
// degrades to "no known conflicts" upstream.
type BreakerProvider struct {
	provider AvailabilityProvider
	meetings MeetingCreator
	busyCB   *gobreaker.CircuitBreaker[[]BusyPeriod]
	meetCB   *gobreaker.CircuitBreaker[*MeetingInfo]
}

// NewBreakerProvider wraps the provider and creator with shared breaker
// settings. Either wrapped dependency may be nil; the corresponding method
// then reports ErrNotConnected.
func NewBreakerProvider(provider AvailabilityProvider, meetings MeetingCreator) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:    "calendar",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &BreakerProvider{
		provider: provider,
		meetings: meetings,
		busyCB:   gobreaker.NewCircuitBreaker[[]BusyPeriod](settings),
		meetCB:   gobreaker.NewCircuitBreaker[*MeetingInfo](settings),
	}
}

// FreeBusy queries busy periods through the breaker.
func (b *BreakerProvider) FreeBusy(ctx context.Context, from, to time.Time) ([]BusyPeriod, error) {
	if b.provider == nil {
		return nil, ErrNotConnected
	}
	return b.busyCB.Execute(func() ([]BusyPeriod, error) {
		return b.provider.FreeBusy(ctx, from, to)
	})
}

// CreateMeeting creates a meeting through the breaker.
func (b *BreakerProvider) CreateMeeting(ctx context.Context, req MeetingRequest) (*MeetingInfo, error) {
	if b.meetings == nil {
		return nil, ErrNotConnected
	}
	return b.meetCB.Execute(func() (*MeetingInfo, error) {
		return b.meetings.CreateMeeting(ctx, req)
	})
}
