package models

import "time"

// Uma linha por data bloqueada pelo admin (semântica de conjunto).
// A data é sempre normalizada para meia-noite no fuso do salão.
type UnavailableDate struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	Date time.Time `gorm:"uniqueIndex;not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
