package booking

// ===============================
// Booking Lifecycle
// ===============================

type Status string

const (
	// StatusRequested: pedido recebido, nada criado ainda.
	StatusRequested Status = "requested"
	// StatusPendingPayment: sessão de pagamento criada; nenhuma
	// linha no banco (fluxo deferred-write).
	StatusPendingPayment Status = "pending_payment"
	// StatusConfirmed: terminal, gravado pelo webhook de pagamento.
	StatusConfirmed Status = "confirmed"
	// StatusAbandoned: terminal implícito, a sessão expira sem pagar.
	StatusAbandoned Status = "abandoned"
)

// StatusForPayment mapeia o status do provedor para o ciclo de vida.
// Só "approved" confirma; qualquer outro status mantém a sessão
// pendente (ou abandonada, quando expira).
func StatusForPayment(providerStatus string) Status {
	if providerStatus == "approved" {
		return StatusConfirmed
	}
	return StatusPendingPayment
}
