package payments

import "context"

// ======================================================
// Contrato do provedor de pagamento
// ======================================================

// SessionInput é o payload completo da reserva, carregado como
// metadata opaca da sessão de checkout e devolvido pelo webhook.
type SessionInput struct {
	SessionID string
	BookingID string

	Date string
	Time string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	SelectedStyle string
	BookingNote   string
}

type Session struct {
	SessionID    string
	PreferenceID string
	CheckoutURL  string
}

// PaymentInfo é o resultado da consulta de um pagamento notificado.
type PaymentInfo struct {
	PaymentID string
	Status    string
	SessionID string
	Booking   SessionInput
}

type Client interface {
	CreateSession(ctx context.Context, in SessionInput) (*Session, error)
	GetPayment(ctx context.Context, paymentID string) (*PaymentInfo, error)
}
