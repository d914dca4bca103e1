package services

import (
	"context"
	"time"

	"github.com/hiredeck/hiredeck/internal/interviews/domain"
)

// SlotStatus is one grid slot classified against the day's busy set.
type SlotStatus struct {
	Slot string
	Busy bool
}

// DayPlan is the scheduling picture for one date: every grid slot classified
// busy or free, plus the earliest free slot if one exists.
type DayPlan struct {
	Date      time.Time
	Connected bool
	Slots     []SlotStatus
	// FirstAvailable is nil when every slot is busy.
	FirstAvailable *string
}

// Planner classifies a day's slot grid against calendar availability.
type Planner struct {
	grid         *SlotGrid
	availability *AvailabilityService
}

// NewPlanner creates a planner.
func NewPlanner(grid *SlotGrid, availability *AvailabilityService) *Planner {
	return &Planner{grid: grid, availability: availability}
}

// PlanDay classifies every slot on the date for the given duration and
// pre-selects the first free slot.
func (p *Planner) PlanDay(ctx context.Context, date time.Time, duration time.Duration) (*DayPlan, error) {
	if duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	from, to := p.grid.DayRange(date)
	busy, connected := p.availability.DayBusy(ctx, from, to)

	plan := &DayPlan{
		Date:      date,
		Connected: connected,
		Slots:     make([]SlotStatus, 0, len(p.grid.Slots())),
	}

	for _, slot := range p.grid.Slots() {
		start, err := p.grid.SlotTime(date, slot)
		if err != nil {
			return nil, err
		}
		isBusy := IsBusy(start, duration, busy)
		plan.Slots = append(plan.Slots, SlotStatus{Slot: slot, Busy: isBusy})
		if !isBusy && plan.FirstAvailable == nil {
			s := slot
			plan.FirstAvailable = &s
		}
	}

	return plan, nil
}

// FirstAvailable scans the grid in order and returns the earliest free slot
// for the date, or ok=false when every slot conflicts.
func (p *Planner) FirstAvailable(ctx context.Context, date time.Time, duration time.Duration) (slot string, ok bool, err error) {
	plan, err := p.PlanDay(ctx, date, duration)
	if err != nil {
		return "", false, err
	}
	if plan.FirstAvailable == nil {
		return "", false, nil
	}
	return *plan.FirstAvailable, true, nil
}
