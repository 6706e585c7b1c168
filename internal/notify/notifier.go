package notify

import (
	"context"

	"go.uber.org/zap"
)

// ======================================================
// Contrato de notificação
// ======================================================

type BookingDetails struct {
	Date          string
	Time          string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	SelectedStyle string
	BookingNote   string
}

type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Notifier dispara os e-mails de confirmação (cliente + admin) e as
// mensagens de contato. Falha de notificação nunca desfaz uma
// reserva já confirmada.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, d BookingDetails) error
	SendContactMessage(ctx context.Context, m ContactMessage) error
}

// ======================================================
// LogNotifier — fallback quando o SMTP não está configurado
// ======================================================

type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SendBookingConfirmation(
	ctx context.Context,
	d BookingDetails,
) error {
	n.log.Info("booking confirmation (smtp disabled)",
		zap.String("date", d.Date),
		zap.String("time", d.Time),
		zap.String("customer_email", d.CustomerEmail),
		zap.String("style", d.SelectedStyle),
	)
	return nil
}

func (n *LogNotifier) SendContactMessage(
	ctx context.Context,
	m ContactMessage,
) error {
	n.log.Info("contact message (smtp disabled)",
		zap.String("from", m.Email),
		zap.String("subject", m.Subject),
	)
	return nil
}
