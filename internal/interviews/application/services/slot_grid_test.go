package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotGrid_DefaultProducesSeventeenSlots(t *testing.T) {
	grid, err := NewSlotGrid(DefaultSlotGridConfig())
	require.NoError(t, err)

	slots := grid.Slots()
	require.Len(t, slots, 17)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "12:00", slots[6])
	assert.Equal(t, "16:30", slots[15])
	assert.Equal(t, "17:00", slots[16])
}

func TestSlotGrid_IsDateIndependent(t *testing.T) {
	grid, err := NewSlotGrid(DefaultSlotGridConfig())
	require.NoError(t, err)

	// the grid itself never varies; only SlotTime binds it to a date
	first := grid.Slots()
	second := grid.Slots()
	assert.Equal(t, first, second)
}

func TestSlotGrid_ConfigValidation(t *testing.T) {
	cfg := DefaultSlotGridConfig()
	cfg.Step = 0
	_, err := NewSlotGrid(cfg)
	assert.ErrorIs(t, err, ErrInvalidGridConfig)

	cfg = DefaultSlotGridConfig()
	cfg.WorkdayStart = 18 * time.Hour
	_, err = NewSlotGrid(cfg)
	assert.ErrorIs(t, err, ErrInvalidGridConfig)
}

func TestSlotGrid_SlotTime(t *testing.T) {
	grid, err := NewSlotGrid(DefaultSlotGridConfig())
	require.NoError(t, err)

	date := time.Date(2026, 3, 2, 15, 42, 0, 0, time.UTC)
	at, err := grid.SlotTime(date, "10:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC), at)

	_, err = grid.SlotTime(date, "10:15")
	assert.ErrorIs(t, err, ErrUnknownSlot)

	_, err = grid.SlotTime(date, "bogus")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestSlotGrid_SlotTimeHonorsTimezone(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	cfg := DefaultSlotGridConfig()
	cfg.Location = berlin
	grid, err := NewSlotGrid(cfg)
	require.NoError(t, err)

	date := time.Date(2026, 7, 6, 0, 0, 0, 0, berlin)
	at, err := grid.SlotTime(date, "09:00")
	require.NoError(t, err)

	assert.Equal(t, berlin, at.Location())
	// CEST is UTC+2 in July
	assert.Equal(t, time.Date(2026, 7, 6, 7, 0, 0, 0, time.UTC), at.UTC())
}

func TestSlotGrid_DayRange(t *testing.T) {
	grid, err := NewSlotGrid(DefaultSlotGridConfig())
	require.NoError(t, err)

	from, to := grid.DayRange(time.Date(2026, 3, 2, 13, 7, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), to)
}
