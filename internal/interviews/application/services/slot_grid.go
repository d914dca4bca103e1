// Package services contains the interview scheduling domain services: the
// daily slot grid, conflict classification, and fail-open availability.
package services

import (
	"errors"
	"fmt"
	"time"
)

// Slot grid errors.
var (
	ErrInvalidGridConfig = errors.New("workday start must precede end and step must be positive")
	ErrUnknownSlot       = errors.New("slot is not on the grid")
)

// SlotGridConfig describes the daily grid of candidate interview start times.
type SlotGridConfig struct {
	// WorkdayStart and WorkdayEnd are offsets from midnight in the grid's
	// timezone. The end offset is itself a valid slot.
	WorkdayStart time.Duration
	WorkdayEnd   time.Duration
	// Step is the spacing between consecutive slots.
	Step time.Duration
	// Location is the organizational timezone the workday is anchored in.
	Location *time.Location
}

// DefaultSlotGridConfig is the 09:00-17:00 workday at 30-minute steps in UTC.
func DefaultSlotGridConfig() SlotGridConfig {
	return SlotGridConfig{
		WorkdayStart: 9 * time.Hour,
		WorkdayEnd:   17 * time.Hour,
		Step:         30 * time.Minute,
		Location:     time.UTC,
	}
}

// SlotGrid produces the fixed set of candidate start times for a working day.
// The grid is deterministic: it does not vary by date, weekday, or duration.
type SlotGrid struct {
	cfg   SlotGridConfig
	slots []string
}

// NewSlotGrid creates a slot grid from the config.
func NewSlotGrid(cfg SlotGridConfig) (*SlotGrid, error) {
	if cfg.Step <= 0 || cfg.WorkdayStart < 0 || cfg.WorkdayStart >= cfg.WorkdayEnd {
		return nil, ErrInvalidGridConfig
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	slots := make([]string, 0, int(cfg.WorkdayEnd-cfg.WorkdayStart)/int(cfg.Step)+1)
	for offset := cfg.WorkdayStart; offset <= cfg.WorkdayEnd; offset += cfg.Step {
		h := int(offset / time.Hour)
		m := int(offset%time.Hour) / int(time.Minute)
		slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
	}

	return &SlotGrid{cfg: cfg, slots: slots}, nil
}

// Slots returns the ordered candidate start times as "HH:MM" strings.
func (g *SlotGrid) Slots() []string {
	out := make([]string, len(g.slots))
	copy(out, g.slots)
	return out
}

// Location returns the timezone the grid is anchored in.
func (g *SlotGrid) Location() *time.Location { return g.cfg.Location }

// SlotTime resolves a grid slot on a concrete date to an absolute timestamp
// in the grid's timezone.
func (g *SlotGrid) SlotTime(date time.Time, slot string) (time.Time, error) {
	var h, m int
	if _, err := fmt.Sscanf(slot, "%02d:%02d", &h, &m); err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}

	found := false
	for _, s := range g.slots {
		if s == slot {
			found = true
			break
		}
	}
	if !found {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}

	y, mo, d := date.In(g.cfg.Location).Date()
	return time.Date(y, mo, d, h, m, 0, 0, g.cfg.Location), nil
}

// DayRange returns the half-open interval spanning the whole calendar date
// in the grid's timezone. Used to bound free/busy queries.
func (g *SlotGrid) DayRange(date time.Time) (time.Time, time.Time) {
	y, mo, d := date.In(g.cfg.Location).Date()
	start := time.Date(y, mo, d, 0, 0, 0, 0, g.cfg.Location)
	return start, start.AddDate(0, 0, 1)
}
