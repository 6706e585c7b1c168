package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/config"
)

// Mailer envia por SMTP os mesmos três e-mails do fluxo de reserva:
// confirmação ao cliente, aviso ao admin e mensagem de contato.
type Mailer struct {
	host       string
	port       string
	user       string
	pass       string
	adminEmail string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		user:       cfg.SMTPUser,
		pass:       cfg.SMTPPass,
		adminEmail: cfg.AdminEmail,
	}
}

func (m *Mailer) SendBookingConfirmation(
	ctx context.Context,
	d BookingDetails,
) error {

	note := d.BookingNote
	if note == "" {
		note = "None"
	}

	customerBody := fmt.Sprintf(`<div style="font-family: Arial, sans-serif;">
<h2>Booking Confirmation</h2>
<p>Dear <strong>%s</strong>,</p>
<p>Thank you for booking with us! Your deposit is now confirmed. Here are your booking details:</p>
<table border="1" cellpadding="8" cellspacing="0">
<tr><td><strong>Date:</strong></td><td>%s</td></tr>
<tr><td><strong>Time:</strong></td><td>%s</td></tr>
<tr><td><strong>Service:</strong></td><td>%s</td></tr>
<tr><td><strong>Extra Services:</strong></td><td>%s</td></tr>
</table>
<p>We look forward to serving you.</p>
</div>`, d.CustomerName, d.Date, d.Time, d.SelectedStyle, note)

	adminBody := fmt.Sprintf(`<div style="font-family: Arial, sans-serif;">
<h2>New Booking Notification</h2>
<p>A new booking has been made with the following details:</p>
<table border="1" cellpadding="8" cellspacing="0">
<tr><td><strong>Customer Name:</strong></td><td>%s</td></tr>
<tr><td><strong>Date:</strong></td><td>%s</td></tr>
<tr><td><strong>Time:</strong></td><td>%s</td></tr>
<tr><td><strong>Service:</strong></td><td>%s</td></tr>
<tr><td><strong>Email:</strong></td><td>%s</td></tr>
<tr><td><strong>Phone:</strong></td><td>%s</td></tr>
<tr><td><strong>Extra Services:</strong></td><td>%s</td></tr>
</table>
</div>`, d.CustomerName, d.Date, d.Time, d.SelectedStyle, d.CustomerEmail, d.CustomerPhone, note)

	if err := m.send(d.CustomerEmail, "Booking Confirmation", customerBody); err != nil {
		return err
	}

	return m.send(m.adminEmail, "New Booking Notification", adminBody)
}

func (m *Mailer) SendContactMessage(
	ctx context.Context,
	msg ContactMessage,
) error {

	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif;">
<h2>New Contact Message</h2>
<table border="1" cellpadding="8" cellspacing="0">
<tr><td><strong>Name:</strong></td><td>%s</td></tr>
<tr><td><strong>Email:</strong></td><td>%s</td></tr>
<tr><td><strong>Subject:</strong></td><td>%s</td></tr>
<tr><td><strong>Message:</strong></td><td>%s</td></tr>
</table>
</div>`, msg.Name, msg.Email, msg.Subject, msg.Message)

	subject := fmt.Sprintf("New message from %s: %s", msg.Name, msg.Subject)
	return m.send(m.adminEmail, subject, body)
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	if to == "" {
		return nil
	}

	headers := []string{
		"From: " + m.user,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	addr := m.host + ":" + m.port

	return smtp.SendMail(addr, auth, m.user, []string{to}, []byte(msg))
}

// Compile-time check
var _ Notifier = (*Mailer)(nil)
