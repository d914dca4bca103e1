package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end time.Time) TimeRange {
	t.Helper()
	r, err := NewTimeRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewTimeRange_Validation(t *testing.T) {
	now := time.Now()

	_, err := NewTimeRange(now, now)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = NewTimeRange(now.Add(time.Hour), now)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	r, err := NewTimeRange(now, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, r.Duration())
}

func TestTimeRange_Overlaps(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	busy := mustRange(t, at(10, 0), at(11, 0))

	tests := []struct {
		name  string
		slot  TimeRange
		wants bool
	}{
		{"fully before", mustRange(t, at(8, 0), at(9, 0)), false},
		{"fully after", mustRange(t, at(12, 0), at(13, 0)), false},
		{"ends exactly at busy start", mustRange(t, at(9, 0), at(10, 0)), false},
		{"starts exactly at busy end", mustRange(t, at(11, 0), at(12, 0)), false},
		{"straddles busy start", mustRange(t, at(9, 30), at(10, 30)), true},
		{"straddles busy end", mustRange(t, at(10, 30), at(11, 30)), true},
		{"contained in busy", mustRange(t, at(10, 15), at(10, 45)), true},
		{"contains busy", mustRange(t, at(9, 0), at(12, 0)), true},
		{"identical", mustRange(t, at(10, 0), at(11, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wants, tt.slot.Overlaps(busy))
			assert.Equal(t, tt.wants, busy.Overlaps(tt.slot), "overlap must be symmetric")
		})
	}
}
