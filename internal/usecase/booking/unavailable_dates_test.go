package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

func TestListUnavailableDates_Empty(t *testing.T) {
	uc := NewListUnavailableDates(newFakeRepo(), 5, timezone.DefaultTimezone)

	dates, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestListUnavailableDates_RegistryOnly(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListUnavailableDates(repo, 5, timezone.DefaultTimezone)

	require.NoError(t, repo.AddRegistryDates(context.Background(), []time.Time{
		time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC),
	}))

	dates, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-12-24", "2026-12-25"}, dates)
}

func TestListUnavailableDates_RegistryDateInOtherLocation(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListUnavailableDates(repo, 5, timezone.DefaultTimezone)

	// Meia-noite de 10/07 no fuso do salão (BST, UTC+1), devolvida
	// pelo driver como o mesmo instante em UTC (23:00 do dia 09).
	local := time.Date(2026, 7, 10, 0, 0, 0, 0, timezone.Location(timezone.DefaultTimezone))
	require.NoError(t, repo.AddRegistryDates(context.Background(), []time.Time{local.UTC()}))

	dates, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-07-10"}, dates)
}

func TestListUnavailableDates_UnionWithFullyBooked(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListUnavailableDates(repo, 2, timezone.DefaultTimezone)

	require.NoError(t, repo.AddRegistryDates(context.Background(), []time.Time{
		time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC),
	}))

	// 2026-10-20 atinge a capacidade (2); 2026-10-21 não.
	repo.bookings = []models.Booking{
		{ID: 1, Date: "2026-10-20", Time: "10:00 AM", PaymentSessionID: "s1", BookingID: "b1"},
		{ID: 2, Date: "2026-10-20", Time: "11:00 AM", PaymentSessionID: "s2", BookingID: "b2"},
		{ID: 3, Date: "2026-10-21", Time: "10:00 AM", PaymentSessionID: "s3", BookingID: "b3"},
	}

	dates, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-20", "2026-12-25"}, dates)
}

func TestListUnavailableDates_Deduplicates(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListUnavailableDates(repo, 1, timezone.DefaultTimezone)

	// Data bloqueada no registro E lotada aparece uma vez só.
	require.NoError(t, repo.AddRegistryDates(context.Background(), []time.Time{
		time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
	}))
	repo.bookings = []models.Booking{
		{ID: 1, Date: "2026-10-20", Time: "10:00 AM", PaymentSessionID: "s1", BookingID: "b1"},
	}

	dates, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-20"}, dates)
}
