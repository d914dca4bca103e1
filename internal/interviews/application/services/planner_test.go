package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calendarApp "github.com/hiredeck/hiredeck/internal/calendar/application"
	"github.com/hiredeck/hiredeck/internal/interviews/domain"
)

// stubProvider returns fixed busy periods or a fixed error.
type stubProvider struct {
	periods []calendarApp.BusyPeriod
	err     error
}

func (s *stubProvider) FreeBusy(_ context.Context, _, _ time.Time) ([]calendarApp.BusyPeriod, error) {
	return s.periods, s.err
}

func newTestPlanner(t *testing.T, provider calendarApp.AvailabilityProvider) *Planner {
	t.Helper()
	grid, err := NewSlotGrid(DefaultSlotGridConfig())
	require.NoError(t, err)
	return NewPlanner(grid, NewAvailabilityService(provider, nil))
}

func TestPlanner_EmptyBusySetSelectsFirstSlot(t *testing.T) {
	planner := newTestPlanner(t, &stubProvider{})
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slot, ok, err := planner.FirstAvailable(context.Background(), date, 30*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "09:00", slot)
}

func TestPlanner_FullyBookedDayHasNoSelection(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	provider := &stubProvider{periods: []calendarApp.BusyPeriod{
		{Start: date.Add(8 * time.Hour), End: date.Add(18 * time.Hour)},
	}}
	planner := newTestPlanner(t, provider)

	plan, err := planner.PlanDay(context.Background(), date, 30*time.Minute)
	require.NoError(t, err)
	assert.Nil(t, plan.FirstAvailable)
	for _, s := range plan.Slots {
		assert.True(t, s.Busy, "slot %s should be busy", s.Slot)
	}

	_, ok, err := planner.FirstAvailable(context.Background(), date, 30*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPlanner_SixtyMinuteDurationAroundBusyHour(t *testing.T) {
	// duration 60, busy 10:00-11:00: 10:30 is busy, 09:00 and 11:00 are free,
	// and the pre-selected default is 09:00
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	provider := &stubProvider{periods: []calendarApp.BusyPeriod{
		{Start: date.Add(10 * time.Hour), End: date.Add(11 * time.Hour)},
	}}
	planner := newTestPlanner(t, provider)

	plan, err := planner.PlanDay(context.Background(), date, time.Hour)
	require.NoError(t, err)

	byName := make(map[string]bool, len(plan.Slots))
	for _, s := range plan.Slots {
		byName[s.Slot] = s.Busy
	}
	assert.True(t, byName["10:30"])
	assert.True(t, byName["09:30"])
	assert.True(t, byName["10:00"])
	assert.False(t, byName["09:00"])
	assert.False(t, byName["11:00"])

	require.NotNil(t, plan.FirstAvailable)
	assert.Equal(t, "09:00", *plan.FirstAvailable)
}

func TestPlanner_DisconnectedCalendarFailsOpen(t *testing.T) {
	planner := newTestPlanner(t, calendarApp.NewNullProvider())
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	plan, err := planner.PlanDay(context.Background(), date, 30*time.Minute)
	require.NoError(t, err)
	assert.False(t, plan.Connected)
	require.NotNil(t, plan.FirstAvailable)
	assert.Equal(t, "09:00", *plan.FirstAvailable)
}

func TestPlanner_ProviderFailureFailsOpen(t *testing.T) {
	planner := newTestPlanner(t, &stubProvider{err: errors.New("upstream timeout")})
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	plan, err := planner.PlanDay(context.Background(), date, 30*time.Minute)
	require.NoError(t, err)
	assert.True(t, plan.Connected)
	for _, s := range plan.Slots {
		assert.False(t, s.Busy)
	}
}

func TestPlanner_RejectsNonPositiveDuration(t *testing.T) {
	planner := newTestPlanner(t, &stubProvider{})
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	_, err := planner.PlanDay(context.Background(), date, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	_, err = planner.PlanDay(context.Background(), date, -time.Hour)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestAvailabilityService_SkipsZeroLengthPeriods(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	provider := &stubProvider{periods: []calendarApp.BusyPeriod{
		{Start: date.Add(10 * time.Hour), End: date.Add(10 * time.Hour)},
		{Start: date.Add(14 * time.Hour), End: date.Add(15 * time.Hour)},
	}}
	svc := NewAvailabilityService(provider, nil)

	busy, connected := svc.DayBusy(context.Background(), date, date.AddDate(0, 0, 1))
	assert.True(t, connected)
	require.Len(t, busy, 1)
	assert.Equal(t, date.Add(14*time.Hour), busy[0].Start())
}
