package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

func validInput() CreateBookingInput {
	return CreateBookingInput{
		Date:          "2026-10-20",
		Time:          "11:00 AM",
		CustomerName:  "Amara Okafor",
		CustomerEmail: "amara@example.com",
		CustomerPhone: "+447700900123",
		SelectedStyle: "Knotless braids",
	}
}

func testNow() time.Time {
	return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	repo := newFakeRepo()
	pay := &fakePayments{}
	uc := NewCreateBooking(repo, pay, 5, timezone.DefaultTimezone)

	in := validInput()
	in.CustomerEmail = ""

	_, err := uc.Execute(context.Background(), in, testNow())

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "missing_fields", code)
	assert.Empty(t, pay.sessions)
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	uc := NewCreateBooking(newFakeRepo(), &fakePayments{}, 5, timezone.DefaultTimezone)

	in := validInput()
	in.Date = "20/10/2026"

	_, err := uc.Execute(context.Background(), in, testNow())

	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "invalid_date", code)
}

func TestCreateBooking_InvalidTimeSlot(t *testing.T) {
	uc := NewCreateBooking(newFakeRepo(), &fakePayments{}, 5, timezone.DefaultTimezone)

	in := validInput()
	in.Time = "09:00 AM"

	_, err := uc.Execute(context.Background(), in, testNow())

	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "invalid_time_slot", code)
}

func TestCreateBooking_RegistryBlockedDate(t *testing.T) {
	repo := newFakeRepo()
	pay := &fakePayments{}
	uc := NewCreateBooking(repo, pay, 5, timezone.DefaultTimezone)

	blocked := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.AddRegistryDates(context.Background(), []time.Time{blocked}))

	_, err := uc.Execute(context.Background(), validInput(), testNow())

	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "date_unavailable", code)
	// Nenhuma sessão de checkout deve ser criada para data bloqueada.
	assert.Empty(t, pay.sessions)
}

func TestCreateBooking_RegistryBlockedDateInOtherLocation(t *testing.T) {
	repo := newFakeRepo()
	pay := &fakePayments{}
	uc := NewCreateBooking(repo, pay, 5, timezone.DefaultTimezone)

	// Data bloqueada gravada à meia-noite BST; o driver devolve o
	// mesmo instante em UTC. A comparação tem que ser por data no
	// fuso do salão, não pela Location do instante.
	local := time.Date(2026, 7, 10, 0, 0, 0, 0, timezone.Location(timezone.DefaultTimezone))
	require.NoError(t, repo.AddRegistryDates(context.Background(), []time.Time{local.UTC()}))

	in := validInput()
	in.Date = "2026-07-10"

	_, err := uc.Execute(context.Background(), in, testNow())

	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "date_unavailable", code)
	assert.Empty(t, pay.sessions)
}

func TestCreateBooking_DateAtCapacity(t *testing.T) {
	repo := newFakeRepo()
	pay := &fakePayments{}
	uc := NewCreateBooking(repo, pay, 2, timezone.DefaultTimezone)

	repo.bookings = []models.Booking{
		{ID: 1, Date: "2026-10-20", Time: "10:00 AM", SelectedStyle: "Silk press", PaymentSessionID: "s1", BookingID: "b1"},
		{ID: 2, Date: "2026-10-20", Time: "01:00 PM", SelectedStyle: "Silk press", PaymentSessionID: "s2", BookingID: "b2"},
	}

	_, err := uc.Execute(context.Background(), validInput(), testNow())

	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "date_unavailable", code)
	assert.Empty(t, pay.sessions)
}

func TestCreateBooking_SlotTakenBySpillover(t *testing.T) {
	repo := newFakeRepo()
	pay := &fakePayments{}
	uc := NewCreateBooking(repo, pay, 5, timezone.DefaultTimezone)

	// Big Box braids às 10:00 ocupa 10:00, 11:00 e 12:00.
	repo.bookings = []models.Booking{
		{ID: 1, Date: "2026-10-20", Time: "10:00 AM", SelectedStyle: "Big Box braids", PaymentSessionID: "s1", BookingID: "b1"},
	}

	_, err := uc.Execute(context.Background(), validInput(), testNow())

	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "slot_already_booked", code)
	assert.Empty(t, pay.sessions)
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo()
	pay := &fakePayments{}
	uc := NewCreateBooking(repo, pay, 5, timezone.DefaultTimezone)

	session, err := uc.Execute(context.Background(), validInput(), testNow())

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.SessionID)
	assert.NotEmpty(t, session.CheckoutURL)

	require.Len(t, pay.sessions, 1)
	sent := pay.sessions[0]
	assert.Equal(t, session.SessionID, sent.SessionID)
	assert.Equal(t, "2026-10-20-11:00 AM-amara@example.com", sent.BookingID)
	assert.Equal(t, "Knotless braids", sent.SelectedStyle)

	// Fluxo deferred-write: nada persistido antes do webhook.
	count, _ := repo.CountBookingsForDate(context.Background(), "2026-10-20")
	assert.Zero(t, count)
}

func TestCreateBooking_ProviderFailure(t *testing.T) {
	uc := NewCreateBooking(newFakeRepo(), &fakePayments{fail: true}, 5, timezone.DefaultTimezone)

	_, err := uc.Execute(context.Background(), validInput(), testNow())

	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "payment_session_failed", code)
}
