package orderControllers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay09gowda/e-commerce.website/models"
)

func TestComputeTotalsBelowFreeShipping(t *testing.T) {
	totals := ComputeTotals(20)

	assert.Equal(t, 20.0, totals.Subtotal)
	assert.InDelta(t, 1.60, totals.Tax, 0.001)
	assert.Equal(t, 9.99, totals.Shipping)
	assert.InDelta(t, 31.59, totals.Total, 0.001)
}

func TestComputeTotalsAboveFreeShipping(t *testing.T) {
	totals := ComputeTotals(150)

	assert.Equal(t, 0.0, totals.Shipping)
	assert.InDelta(t, 12.0, totals.Tax, 0.001)
	assert.InDelta(t, 162.0, totals.Total, 0.001)
}

func TestComputeTotalsAtThresholdStillPaysShipping(t *testing.T) {
	// Free shipping starts strictly above the threshold.
	totals := ComputeTotals(100)
	assert.Equal(t, 9.99, totals.Shipping)
}

func TestGenerateOrderNumberShape(t *testing.T) {
	number := generateOrderNumber()

	assert.True(t, strings.HasPrefix(number, "ORD-"))
	parts := strings.Split(number, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[1], 14)
	assert.Len(t, parts[2], 8)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}

func TestGenerateOrderNumberIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := generateOrderNumber()
		assert.False(t, seen[number])
		seen[number] = true
	}
}

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("Shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, status)

	_, err = mapOrderStatus("teleported")
	assert.Error(t, err)
}

func TestMapPaymentStatus(t *testing.T) {
	status, err := mapPaymentStatus("PAID")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, status)

	_, err = mapPaymentStatus("iou")
	assert.Error(t, err)
}
