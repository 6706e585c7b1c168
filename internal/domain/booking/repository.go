package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Repository interface {
	// -------- Bookings --------
	ListBookingsForDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	CountBookingsForDate(
		ctx context.Context,
		date string,
	) (int64, error)

	// GetBookingBySessionID devolve (nil, nil) quando não existe.
	GetBookingBySessionID(
		ctx context.Context,
		sessionID string,
	) (*models.Booking, error)

	// CreateConfirmedBooking traduz violação de unicidade em
	// ErrBusiness("slot_already_booked") ou
	// ErrBusiness("duplicate_session"), conforme o índice atingido.
	CreateConfirmedBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBookingByID(
		ctx context.Context,
		id uint,
	) error

	ListBookingsBefore(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	DeleteBookingsByIDs(
		ctx context.Context,
		ids []uint,
	) error

	// -------- Unavailable-date registry --------
	AddRegistryDates(
		ctx context.Context,
		dates []time.Time,
	) error

	RemoveRegistryDate(
		ctx context.Context,
		date time.Time,
	) error

	ListRegistryDates(
		ctx context.Context,
	) ([]time.Time, error)

	RemoveRegistryDates(
		ctx context.Context,
		dates []time.Time,
	) error

	// ListFullyBookedDates agrupa reservas por data e devolve as
	// datas com contagem >= maxPerDay.
	ListFullyBookedDates(
		ctx context.Context,
		maxPerDay int,
	) ([]string, error)
}
