package services

import (
	"time"

	"github.com/hiredeck/hiredeck/internal/interviews/domain"
)

// IsBusy reports whether a slot starting at slotStart with the given duration
// overlaps any busy interval. Intervals are half-open: a slot that ends
// exactly when a busy period begins, or starts exactly when one ends, is
// free. Duration must be positive; callers validate before classification.
func IsBusy(slotStart time.Time, duration time.Duration, busy []domain.TimeRange) bool {
	slotEnd := slotStart.Add(duration)
	for _, b := range busy {
		if slotStart.Before(b.End()) && slotEnd.After(b.Start()) {
			return true
		}
	}
	return false
}
