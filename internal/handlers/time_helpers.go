package handlers

import (
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

func isValidDate(dateStr string) bool {
	_, err := time.Parse(domain.DateLayout, dateStr)
	return err == nil
}

// parseDateInSalon interpreta uma data YYYY-MM-DD no fuso do salão,
// normalizada para meia-noite.
func parseDateInSalon(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		domain.DateLayout,
		dateStr,
		timezone.Location(tz),
	)
}
