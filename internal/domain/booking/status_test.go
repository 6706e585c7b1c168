package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForPayment(t *testing.T) {
	assert.Equal(t, StatusConfirmed, StatusForPayment("approved"))
	assert.Equal(t, StatusPendingPayment, StatusForPayment("pending"))
	assert.Equal(t, StatusPendingPayment, StatusForPayment("rejected"))
	assert.Equal(t, StatusPendingPayment, StatusForPayment(""))
}
