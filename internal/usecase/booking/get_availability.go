package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	now time.Time,
) (domain.Availability, error) {

	bookings, err := uc.repo.ListBookingsForDate(ctx, date)
	if err != nil {
		return domain.Availability{}, err
	}

	slotBookings := make([]domain.SlotBooking, 0, len(bookings))
	for _, b := range bookings {
		slotBookings = append(slotBookings, domain.SlotBooking{
			Time:  b.Time,
			Style: b.SelectedStyle,
		})
	}

	return domain.ComputeUnavailableSlots(date, slotBookings, now), nil
}
