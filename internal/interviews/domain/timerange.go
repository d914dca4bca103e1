package domain

import (
	"errors"
	"time"
)

// ErrInvalidTimeRange is returned when a range does not satisfy start < end.
var ErrInvalidTimeRange = errors.New("time range start must be before end")

// TimeRange is a half-open interval [Start, End). It models both busy
// periods reported by a calendar and candidate interview slots.
type TimeRange struct {
	start time.Time
	end   time.Time
}

// NewTimeRange creates a time range, enforcing start < end.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

// Start returns the inclusive start of the range.
func (r TimeRange) Start() time.Time { return r.start }

// End returns the exclusive end of the range.
func (r TimeRange) End() time.Time { return r.end }

// Duration returns the length of the range.
func (r TimeRange) Duration() time.Duration { return r.end.Sub(r.start) }

// Overlaps reports whether two half-open ranges intersect. Ranges that only
// touch at a boundary do not overlap: a slot ending exactly when a busy
// period begins is free.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start.Before(other.end) && r.end.After(other.start)
}
