package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	"github.com/BruksfildServices01/salon-booking/internal/payments"
)

// ======================================================
// Repositório em memória com a mesma semântica de unicidade
// do banco (date+time e payment_session_id)
// ======================================================

type fakeRepo struct {
	bookings []models.Booking
	registry []time.Time
	nextID   uint

	failCreate error

	// Simula leituras defasadas na checagem de idempotência.
	staleGets int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (r *fakeRepo) ListBookingsForDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) CountBookingsForDate(ctx context.Context, date string) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.Date == date {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) GetBookingBySessionID(ctx context.Context, sessionID string) (*models.Booking, error) {
	if r.staleGets > 0 {
		r.staleGets--
		return nil, nil
	}
	for i := range r.bookings {
		if r.bookings[i].PaymentSessionID == sessionID {
			return &r.bookings[i], nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) CreateConfirmedBooking(ctx context.Context, b *models.Booking) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	for _, existing := range r.bookings {
		if existing.PaymentSessionID == b.PaymentSessionID {
			return httperr.ErrBusiness("duplicate_session")
		}
		if existing.BookingID == b.BookingID ||
			(existing.Date == b.Date && existing.Time == b.Time) {
			return httperr.ErrBusiness("slot_already_booked")
		}
	}
	b.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) DeleteBookingByID(ctx context.Context, id uint) error {
	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness("booking_not_found")
}

func (r *fakeRepo) ListBookingsBefore(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date < date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteBookingsByIDs(ctx context.Context, ids []uint) error {
	for _, id := range ids {
		_ = r.DeleteBookingByID(ctx, id)
	}
	return nil
}

func (r *fakeRepo) AddRegistryDates(ctx context.Context, dates []time.Time) error {
	for _, d := range dates {
		if !r.hasRegistryDate(d) {
			r.registry = append(r.registry, d)
		}
	}
	return nil
}

func (r *fakeRepo) RemoveRegistryDate(ctx context.Context, date time.Time) error {
	for i, d := range r.registry {
		if d.Equal(date) {
			r.registry = append(r.registry[:i], r.registry[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness("date_not_found")
}

func (r *fakeRepo) ListRegistryDates(ctx context.Context) ([]time.Time, error) {
	return append([]time.Time(nil), r.registry...), nil
}

func (r *fakeRepo) RemoveRegistryDates(ctx context.Context, dates []time.Time) error {
	for _, d := range dates {
		_ = r.RemoveRegistryDate(ctx, d)
	}
	return nil
}

func (r *fakeRepo) ListFullyBookedDates(ctx context.Context, maxPerDay int) ([]string, error) {
	counts := make(map[string]int)
	for _, b := range r.bookings {
		counts[b.Date]++
	}
	var out []string
	for date, count := range counts {
		if count >= maxPerDay {
			out = append(out, date)
		}
	}
	return out, nil
}

func (r *fakeRepo) hasRegistryDate(date time.Time) bool {
	for _, d := range r.registry {
		if d.Equal(date) {
			return true
		}
	}
	return false
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// Provedor de pagamento fake
// ======================================================

type fakePayments struct {
	sessions []payments.SessionInput
	fail     bool
}

func (p *fakePayments) CreateSession(ctx context.Context, in payments.SessionInput) (*payments.Session, error) {
	if p.fail {
		return nil, errors.New("provider down")
	}
	p.sessions = append(p.sessions, in)
	return &payments.Session{
		SessionID:    in.SessionID,
		PreferenceID: "pref-" + in.SessionID,
		CheckoutURL:  "https://checkout.example/" + in.SessionID,
	}, nil
}

func (p *fakePayments) GetPayment(ctx context.Context, paymentID string) (*payments.PaymentInfo, error) {
	return nil, errors.New("not implemented")
}

var _ payments.Client = (*fakePayments)(nil)

// ======================================================
// Notifier e audit fakes
// ======================================================

type fakeNotifier struct {
	confirmations []notify.BookingDetails
	messages      []notify.ContactMessage
	fail          bool
}

func (n *fakeNotifier) SendBookingConfirmation(ctx context.Context, d notify.BookingDetails) error {
	if n.fail {
		return errors.New("smtp down")
	}
	n.confirmations = append(n.confirmations, d)
	return nil
}

func (n *fakeNotifier) SendContactMessage(ctx context.Context, m notify.ContactMessage) error {
	n.messages = append(n.messages, m)
	return nil
}

var _ notify.Notifier = (*fakeNotifier)(nil)

type fakeAudit struct {
	events []audit.Event
}

func (a *fakeAudit) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}
