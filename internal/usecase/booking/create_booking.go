package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/payments"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Date string
	Time string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	SelectedStyle string
	BookingNote   string
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking executa REQUESTED → PENDING_PAYMENT: valida o pedido,
// checa disponibilidade e cria a sessão de checkout com o payload da
// reserva como metadata. Nenhuma linha é gravada aqui — a persistência
// acontece só na confirmação do pagamento (fluxo deferred-write).
type CreateBooking struct {
	repo     domain.Repository
	payments payments.Client

	maxPerDay int
	tz        string
}

func NewCreateBooking(
	repo domain.Repository,
	pay payments.Client,
	maxPerDay int,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:      repo,
		payments:  pay,
		maxPerDay: maxPerDay,
		tz:        tz,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
	now time.Time,
) (*payments.Session, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios
	// --------------------------------------------------
	if in.Date == "" || in.Time == "" || in.CustomerName == "" ||
		in.CustomerEmail == "" || in.CustomerPhone == "" || in.SelectedStyle == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, ok := domain.SlotIndex(in.Time); !ok {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	// --------------------------------------------------
	// 2. Data bloqueada (registro ∪ capacidade)
	// --------------------------------------------------
	bookable, err := isDateBookable(ctx, uc.repo, uc.maxPerDay, uc.tz, in.Date)
	if err != nil {
		return nil, err
	}
	if !bookable {
		return nil, httperr.ErrBusiness("date_unavailable")
	}

	// --------------------------------------------------
	// 3. Slot já tomado (reserva direta ou spillover)
	// --------------------------------------------------
	existing, err := uc.repo.ListBookingsForDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	slotBookings := make([]domain.SlotBooking, 0, len(existing))
	for _, b := range existing {
		slotBookings = append(slotBookings, domain.SlotBooking{
			Time:  b.Time,
			Style: b.SelectedStyle,
		})
	}

	availability := domain.ComputeUnavailableSlots(in.Date, slotBookings, now)
	for _, slot := range availability.UnavailableSlots {
		if slot == in.Time {
			return nil, httperr.ErrBusiness("slot_already_booked")
		}
	}

	// --------------------------------------------------
	// 4. Sessão de pagamento (nenhuma escrita antes daqui)
	// --------------------------------------------------
	sessionID := uuid.NewString()
	bookingID := fmt.Sprintf("%s-%s-%s", in.Date, in.Time, in.CustomerEmail)

	session, err := uc.payments.CreateSession(ctx, payments.SessionInput{
		SessionID:     sessionID,
		BookingID:     bookingID,
		Date:          in.Date,
		Time:          in.Time,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		SelectedStyle: in.SelectedStyle,
		BookingNote:   in.BookingNote,
	})
	if err != nil {
		return nil, httperr.ErrBusiness("payment_session_failed")
	}

	return session, nil
}
