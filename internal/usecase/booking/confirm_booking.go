package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	"github.com/BruksfildServices01/salon-booking/internal/payments"
)

// ======================================================
// USE CASE
// ======================================================

// ConfirmBooking executa PENDING_PAYMENT → CONFIRMED a partir de um
// evento de pagamento já verificado. Reentrega do mesmo evento é
// no-op; a data é revalidada na confirmação (fail closed); corrida
// pelo último slot é resolvida pela unicidade do banco.
// AuditDispatcher permite injetar o dispatcher real ou um fake.
type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

type ConfirmBooking struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    AuditDispatcher
	log      *zap.Logger

	maxPerDay int
	tz        string
}

func NewConfirmBooking(
	repo domain.Repository,
	notifier notify.Notifier,
	auditDispatcher AuditDispatcher,
	log *zap.Logger,
	maxPerDay int,
	tz string,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:      repo,
		notifier:  notifier,
		audit:     auditDispatcher,
		log:       log,
		maxPerDay: maxPerDay,
		tz:        tz,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	info *payments.PaymentInfo,
) (*models.Booking, error) {

	if domain.StatusForPayment(info.Status) != domain.StatusConfirmed {
		return nil, httperr.ErrBusiness("payment_not_approved")
	}

	payload := info.Booking
	if info.SessionID == "" || payload.Date == "" || payload.Time == "" ||
		payload.CustomerEmail == "" {
		return nil, httperr.ErrBusiness("invalid_event_payload")
	}

	// --------------------------------------------------
	// 1. Idempotência: mesma sessão já confirmada → no-op
	// --------------------------------------------------
	existing, err := uc.repo.GetBookingBySessionID(ctx, info.SessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	// --------------------------------------------------
	// 2. Revalidação: a data pode ter sido bloqueada entre
	//    o pedido e o pagamento
	// --------------------------------------------------
	bookable, err := isDateBookable(ctx, uc.repo, uc.maxPerDay, uc.tz, payload.Date)
	if err != nil {
		return nil, err
	}
	if !bookable {
		return nil, httperr.ErrBusiness("date_unavailable")
	}

	// --------------------------------------------------
	// 3. Persistência (a unicidade do banco fecha a janela
	//    check-then-act)
	// --------------------------------------------------
	bookingID := payload.BookingID
	if bookingID == "" {
		bookingID = fmt.Sprintf("%s-%s-%s", payload.Date, payload.Time, payload.CustomerEmail)
	}

	paymentID := info.PaymentID
	b := &models.Booking{
		BookingID:        bookingID,
		Date:             payload.Date,
		Time:             payload.Time,
		CustomerName:     payload.CustomerName,
		CustomerEmail:    payload.CustomerEmail,
		CustomerPhone:    payload.CustomerPhone,
		SelectedStyle:    payload.SelectedStyle,
		BookingNote:      payload.BookingNote,
		IsConfirmed:      true,
		PaymentSessionID: info.SessionID,
		PaymentIntentID:  &paymentID,
	}

	if err := uc.repo.CreateConfirmedBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "duplicate_session") {
			// Reentrega concorrente do mesmo evento.
			if existing, getErr := uc.repo.GetBookingBySessionID(ctx, info.SessionID); getErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4. Efeitos colaterais: nunca desfazem a confirmação
	// --------------------------------------------------
	if err := uc.notifier.SendBookingConfirmation(ctx, notify.BookingDetails{
		Date:          b.Date,
		Time:          b.Time,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		SelectedStyle: b.SelectedStyle,
		BookingNote:   b.BookingNote,
	}); err != nil {
		uc.log.Warn("booking confirmation email failed",
			zap.String("session_id", info.SessionID),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{
			"date": b.Date,
			"time": b.Time,
		},
	})

	return b, nil
}
