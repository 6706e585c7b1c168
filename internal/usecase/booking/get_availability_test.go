package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func TestGetAvailability_ReflectsStoredBookings(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo)

	repo.bookings = []models.Booking{
		{ID: 1, Date: "2026-10-20", Time: "10:00 AM", SelectedStyle: "Cornrows", PaymentSessionID: "s1", BookingID: "b1"},
		{ID: 2, Date: "2026-10-21", Time: "03:00 PM", SelectedStyle: "Silk press", PaymentSessionID: "s2", BookingID: "b2"},
	}

	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	av, err := uc.Execute(context.Background(), "2026-10-20", now)

	require.NoError(t, err)
	assert.Equal(t, []string{"10:00 AM"}, av.BookedTimes)
	// Cornrows dura 2h: 10:00 e 11:00 ficam indisponíveis.
	assert.Equal(t, []string{"10:00 AM", "11:00 AM"}, av.UnavailableSlots)
}

func TestGetAvailability_EmptyDate(t *testing.T) {
	uc := NewGetAvailability(newFakeRepo())

	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	av, err := uc.Execute(context.Background(), "2026-10-20", now)

	require.NoError(t, err)
	assert.Empty(t, av.BookedTimes)
	assert.Empty(t, av.UnavailableSlots)
}
