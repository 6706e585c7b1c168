package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 03:04 PM", value)
	require.NoError(t, err)
	return parsed
}

func TestComputeUnavailableSlots_EmptyDay(t *testing.T) {
	now := mustTime(t, "2024-06-01 09:00 AM")

	av := ComputeUnavailableSlots("2024-06-10", nil, now)

	assert.Empty(t, av.BookedTimes)
	assert.Empty(t, av.UnavailableSlots)
}

func TestComputeUnavailableSlots_Spillover(t *testing.T) {
	now := mustTime(t, "2024-06-01 09:00 AM")

	bookings := []SlotBooking{
		{Time: "10:00 AM", Style: "Big Box braids"}, // 3h
	}

	av := ComputeUnavailableSlots("2024-06-10", bookings, now)

	assert.Equal(t, []string{"10:00 AM"}, av.BookedTimes)
	assert.Equal(t, []string{"10:00 AM", "11:00 AM", "12:00 PM"}, av.UnavailableSlots)
}

func TestComputeUnavailableSlots_SpilloverClippedAtDayEnd(t *testing.T) {
	now := mustTime(t, "2024-06-01 09:00 AM")

	bookings := []SlotBooking{
		{Time: "04:00 PM", Style: "Small Box braids"}, // 4h, só restam 2 slots
	}

	av := ComputeUnavailableSlots("2024-06-10", bookings, now)

	assert.Equal(t, []string{"04:00 PM", "05:00 PM"}, av.UnavailableSlots)
}

func TestComputeUnavailableSlots_UnknownStyleDefaultsToOneHour(t *testing.T) {
	now := mustTime(t, "2024-06-01 09:00 AM")

	bookings := []SlotBooking{
		{Time: "01:00 PM", Style: "Something new"},
	}

	av := ComputeUnavailableSlots("2024-06-10", bookings, now)

	assert.Equal(t, []string{"01:00 PM"}, av.UnavailableSlots)
}

func TestComputeUnavailableSlots_PastSlotsToday(t *testing.T) {
	now := mustTime(t, "2024-06-10 02:30 PM")

	av := ComputeUnavailableSlots("2024-06-10", nil, now)

	assert.Empty(t, av.BookedTimes)
	assert.Equal(t,
		[]string{"10:00 AM", "11:00 AM", "12:00 PM", "01:00 PM", "02:00 PM"},
		av.UnavailableSlots,
	)
}

func TestComputeUnavailableSlots_PastSlotsOnlyApplyToToday(t *testing.T) {
	now := mustTime(t, "2024-06-10 02:30 PM")

	av := ComputeUnavailableSlots("2024-06-11", nil, now)

	assert.Empty(t, av.UnavailableSlots)
}

func TestComputeUnavailableSlots_UnionOfBookingsAndPastSlots(t *testing.T) {
	now := mustTime(t, "2024-06-10 11:30 AM")

	bookings := []SlotBooking{
		{Time: "03:00 PM", Style: "Cornrows"}, // 2h
	}

	av := ComputeUnavailableSlots("2024-06-10", bookings, now)

	assert.Equal(t, []string{"03:00 PM"}, av.BookedTimes)
	assert.Equal(t,
		[]string{"10:00 AM", "11:00 AM", "03:00 PM", "04:00 PM"},
		av.UnavailableSlots,
	)
}

func TestSlotIndex(t *testing.T) {
	idx, ok := SlotIndex("10:00 AM")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = SlotIndex("05:00 PM")
	assert.True(t, ok)
	assert.Equal(t, 7, idx)

	_, ok = SlotIndex("09:00 AM")
	assert.False(t, ok)

	_, ok = SlotIndex("10:00")
	assert.False(t, ok)
}

func TestStyleDurationHours(t *testing.T) {
	assert.Equal(t, 3, StyleDurationHours("Big Box braids"))
	assert.Equal(t, 4, StyleDurationHours("Small Box braids"))
	assert.Equal(t, 1, StyleDurationHours("Silk press"))
	assert.Equal(t, 1, StyleDurationHours("unknown style"))
}
