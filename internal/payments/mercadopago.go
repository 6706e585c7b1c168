package payments

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/salon-booking/internal/config"
)

// MercadoPagoClient cria a sessão de checkout (preference) com o
// payload da reserva em metadata e consulta pagamentos notificados
// pelo webhook.
type MercadoPagoClient struct {
	preferences preference.Client
	payments    payment.Client
	cfg         *config.Config
}

func NewMercadoPago(cfg *config.Config) (*MercadoPagoClient, error) {
	mpCfg, err := mpconfig.New(cfg.MPAccessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPagoClient{
		preferences: preference.NewClient(mpCfg),
		payments:    payment.NewClient(mpCfg),
		cfg:         cfg,
	}, nil
}

func (c *MercadoPagoClient) CreateSession(
	ctx context.Context,
	in SessionInput,
) (*Session, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       "Booking Deposit for " + in.SelectedStyle,
				Description: fmt.Sprintf("Date: %s, Time: %s", in.Date, in.Time),
				Quantity:    1,
				CurrencyID:  c.cfg.DepositCurrency,
				UnitPrice:   c.cfg.DepositAmount,
			},
		},
		ExternalReference: in.BookingID,
		Metadata:          metadataFromInput(in),
		BackURLs: &preference.BackURLsRequest{
			Success: c.cfg.ClientURL + "/index.html?status=success",
			Failure: c.cfg.ClientURL + "/index.html?status=cancel",
		},
		AutoReturn: "approved",
	}

	resp, err := c.preferences.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &Session{
		SessionID:    in.SessionID,
		PreferenceID: resp.ID,
		CheckoutURL:  resp.InitPoint,
	}, nil
}

func (c *MercadoPagoClient) GetPayment(
	ctx context.Context,
	paymentID string,
) (*PaymentInfo, error) {

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment id %q", paymentID)
	}

	resp, err := c.payments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment %d: %w", id, err)
	}

	meta := resp.Metadata

	return &PaymentInfo{
		PaymentID: strconv.Itoa(resp.ID),
		Status:    resp.Status,
		SessionID: metaString(meta, "session_id"),
		Booking: SessionInput{
			SessionID:     metaString(meta, "session_id"),
			BookingID:     resp.ExternalReference,
			Date:          metaString(meta, "date"),
			Time:          metaString(meta, "time"),
			CustomerName:  metaString(meta, "customer_name"),
			CustomerEmail: metaString(meta, "customer_email"),
			CustomerPhone: metaString(meta, "customer_phone"),
			SelectedStyle: metaString(meta, "selected_style"),
			BookingNote:   metaString(meta, "booking_note"),
		},
	}, nil
}

// metadata keys em snake_case: o Mercado Pago normaliza as chaves
// ao devolver o pagamento.
func metadataFromInput(in SessionInput) map[string]any {
	return map[string]any{
		"session_id":     in.SessionID,
		"booking_id":     in.BookingID,
		"date":           in.Date,
		"time":           in.Time,
		"customer_name":  in.CustomerName,
		"customer_email": in.CustomerEmail,
		"customer_phone": in.CustomerPhone,
		"selected_style": in.SelectedStyle,
		"booking_note":   in.BookingNote,
	}
}

func metaString(meta map[string]any, key string) string {
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}

// Compile-time check
var _ Client = (*MercadoPagoClient)(nil)
