package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// ======================================================
// Registro ∪ regra de capacidade
// ======================================================

type ListUnavailableDates struct {
	repo      domain.Repository
	maxPerDay int
	tz        string
}

func NewListUnavailableDates(
	repo domain.Repository,
	maxPerDay int,
	tz string,
) *ListUnavailableDates {
	return &ListUnavailableDates{repo: repo, maxPerDay: maxPerDay, tz: tz}
}

// Execute devolve o conjunto combinado exposto aos clientes: datas
// bloqueadas pelo admin mais datas com a contagem de reservas no
// máximo configurado.
func (uc *ListUnavailableDates) Execute(ctx context.Context) ([]string, error) {

	registry, err := uc.repo.ListRegistryDates(ctx)
	if err != nil {
		return nil, err
	}

	fullyBooked, err := uc.repo.ListFullyBookedDates(ctx, uc.maxPerDay)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	for _, d := range registry {
		set[registryDateKey(d, uc.tz)] = true
	}
	for _, d := range fullyBooked {
		set[d] = true
	}

	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	return dates, nil
}

// registryDateKey reduz um instante do registro à sua data no fuso do
// salão. O driver pode devolver o mesmo instante em outra Location
// (tipicamente UTC), e formatar sem normalizar deslocaria a data.
func registryDateKey(d time.Time, tz string) string {
	return timezone.Midnight(d, tz).Format(domain.DateLayout)
}

// isDateBookable aplica a mesma regra no caminho de criação e de
// confirmação: data fora do registro e abaixo da capacidade diária.
func isDateBookable(
	ctx context.Context,
	repo domain.Repository,
	maxPerDay int,
	tz string,
	date string,
) (bool, error) {

	registry, err := repo.ListRegistryDates(ctx)
	if err != nil {
		return false, err
	}
	for _, d := range registry {
		if registryDateKey(d, tz) == date {
			return false, nil
		}
	}

	count, err := repo.CountBookingsForDate(ctx, date)
	if err != nil {
		return false, err
	}

	return count < int64(maxPerDay), nil
}
