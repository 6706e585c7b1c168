package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// ======================================================
// Limpeza administrativa de passado
// ======================================================

type PurgePastDates struct {
	repo domain.Repository
	tz   string
}

func NewPurgePastDates(repo domain.Repository, tz string) *PurgePastDates {
	return &PurgePastDates{repo: repo, tz: tz}
}

// Execute remove do registro toda data estritamente anterior ao dia
// de referência (normalizado para meia-noite) e devolve as removidas.
func (uc *PurgePastDates) Execute(
	ctx context.Context,
	ref time.Time,
) ([]string, error) {

	cutoff := timezone.Midnight(ref, uc.tz)

	dates, err := uc.repo.ListRegistryDates(ctx)
	if err != nil {
		return nil, err
	}

	var past []time.Time
	for _, d := range dates {
		if timezone.Midnight(d, uc.tz).Before(cutoff) {
			past = append(past, d)
		}
	}

	if len(past) == 0 {
		return []string{}, nil
	}

	if err := uc.repo.RemoveRegistryDates(ctx, past); err != nil {
		return nil, err
	}

	removed := make([]string, 0, len(past))
	for _, d := range past {
		removed = append(removed, d.Format(domain.DateLayout))
	}

	return removed, nil
}

type PurgePastBookings struct {
	repo domain.Repository
	tz   string
}

func NewPurgePastBookings(repo domain.Repository, tz string) *PurgePastBookings {
	return &PurgePastBookings{repo: repo, tz: tz}
}

// Execute apaga reservas com data estritamente anterior ao dia de
// referência e devolve as removidas.
func (uc *PurgePastBookings) Execute(
	ctx context.Context,
	ref time.Time,
) ([]models.Booking, error) {

	today := timezone.Midnight(ref, uc.tz).Format(domain.DateLayout)

	past, err := uc.repo.ListBookingsBefore(ctx, today)
	if err != nil {
		return nil, err
	}

	if len(past) == 0 {
		return []models.Booking{}, nil
	}

	ids := make([]uint, 0, len(past))
	for _, b := range past {
		ids = append(ids, b.ID)
	}

	if err := uc.repo.DeleteBookingsByIDs(ctx, ids); err != nil {
		return nil, err
	}

	return past, nil
}
