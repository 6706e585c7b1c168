package models

import "time"

// Booking é sempre persistido já confirmado (fluxo deferred-write):
// enquanto o pagamento está pendente só existe a sessão de checkout.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID string `gorm:"size:120;uniqueIndex;not null" json:"booking_id"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_bookings_date_time" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:10;not null;uniqueIndex:idx_bookings_date_time" json:"time"` // ex: "10:00 AM"

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100;not null" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	SelectedStyle string `gorm:"size:100;not null" json:"selected_style"`
	BookingNote   string `gorm:"size:255" json:"booking_note"`

	IsConfirmed bool `gorm:"not null;default:false" json:"is_confirmed"`

	PaymentSessionID string  `gorm:"size:120;uniqueIndex;not null" json:"payment_session_id"`
	PaymentIntentID  *string `gorm:"size:120" json:"payment_intent_id"`

	CreatedAt time.Time `json:"created_at"`
}
