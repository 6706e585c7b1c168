package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/payments"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// WebhookHandler recebe notificações de pagamento do provedor.
// Contrato de reentrega: depois do portão de assinatura a resposta é
// sempre 200 {"received": true} — erros de processamento são logados,
// nunca devolvidos, para não disparar retry infinito do provedor.
type WebhookHandler struct {
	cfg      *config.Config
	payments payments.Client
	confirm  *ucBooking.ConfirmBooking
	log      *zap.Logger
}

func NewWebhookHandler(
	cfg *config.Config,
	paymentsClient payments.Client,
	confirm *ucBooking.ConfirmBooking,
	log *zap.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		cfg:      cfg,
		payments: paymentsClient,
		confirm:  confirm,
		log:      log,
	}
}

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ======================================================
// PAYMENT EVENTS
// ======================================================

func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	var event webhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		// O Mercado Pago também envia os campos por query string.
		event.Type = c.Query("type")
		event.Data.ID = c.Query("data.id")
	}
	if event.Data.ID == "" {
		event.Data.ID = c.Query("data.id")
	}

	// Portão de autenticação: evento não assinado é rejeitado.
	if err := payments.VerifyWebhookSignature(
		h.cfg.MPWebhookSecret,
		c.GetHeader("x-signature"),
		c.GetHeader("x-request-id"),
		event.Data.ID,
	); err != nil {
		h.log.Warn("webhook signature verification failed",
			zap.String("data_id", event.Data.ID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_signature"})
		return
	}

	if event.Type != "payment" || event.Data.ID == "" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	info, err := h.payments.GetPayment(c.Request.Context(), event.Data.ID)
	if err != nil {
		h.log.Error("failed to fetch payment for webhook event",
			zap.String("payment_id", event.Data.ID),
			zap.Error(err),
		)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	// Pagamento pendente/recusado não confirma nada; só "approved"
	// transita a reserva.
	if info.Status != "approved" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if _, err := h.confirm.Execute(c.Request.Context(), info); err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			h.log.Warn("booking confirmation rejected",
				zap.String("payment_id", info.PaymentID),
				zap.String("session_id", info.SessionID),
				zap.String("reason", code),
			)
		} else {
			h.log.Error("error saving confirmed booking",
				zap.String("payment_id", info.PaymentID),
				zap.Error(err),
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
