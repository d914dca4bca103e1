package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	calendarApp "github.com/hiredeck/hiredeck/internal/calendar/application"
	"github.com/hiredeck/hiredeck/internal/interviews/domain"
)

// AvailabilityService fetches a day's busy intervals from the calendar
// provider. It fails open: when the calendar is not connected or the query
// fails, it reports no known conflicts instead of blocking scheduling.
type AvailabilityService struct {
	provider calendarApp.AvailabilityProvider
	logger   *slog.Logger
}

// NewAvailabilityService creates an availability service. A nil provider is
// treated as a disconnected calendar.
func NewAvailabilityService(provider calendarApp.AvailabilityProvider, logger *slog.Logger) *AvailabilityService {
	if provider == nil {
		provider = calendarApp.NewNullProvider()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AvailabilityService{provider: provider, logger: logger}
}

// DayBusy returns the busy intervals inside [from, to). The connected flag is
// false when no calendar credential is configured. Transient provider
// failures are logged and reported as an empty busy set.
func (s *AvailabilityService) DayBusy(ctx context.Context, from, to time.Time) (busy []domain.TimeRange, connected bool) {
	periods, err := s.provider.FreeBusy(ctx, from, to)
	if err != nil {
		if errors.Is(err, calendarApp.ErrNotConnected) {
			return nil, false
		}
		s.logger.Warn("free/busy query failed, proceeding without conflicts",
			"from", from,
			"to", to,
			"error", err,
		)
		return nil, true
	}

	busy = make([]domain.TimeRange, 0, len(periods))
	for _, p := range periods {
		r, err := domain.NewTimeRange(p.Start, p.End)
		if err != nil {
			// zero-length events are reported by some providers; skip them
			continue
		}
		busy = append(busy, r)
	}
	return busy, true
}
