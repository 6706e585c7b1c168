package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// VerifyWebhookSignature valida o header x-signature do Mercado Pago
// (formato "ts=...,v1=..."): HMAC-SHA256 do manifesto
// "id:<data.id>;request-id:<x-request-id>;ts:<ts>;" com o segredo do
// webhook. É o portão de autenticação na frente do handler de
// confirmação.
func VerifyWebhookSignature(secret, signatureHeader, requestID, dataID string) error {
	if secret == "" || signatureHeader == "" {
		return ErrInvalidSignature
	}

	var ts, v1 string
	for _, part := range strings.Split(signatureHeader, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "ts":
			ts = value
		case "v1":
			v1 = value
		}
	}

	if ts == "" || v1 == "" {
		return ErrInvalidSignature
	}

	manifest := fmt.Sprintf(
		"id:%s;request-id:%s;ts:%s;",
		strings.ToLower(dataID),
		requestID,
		ts,
	)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(v1)) {
		return ErrInvalidSignature
	}

	return nil
}
