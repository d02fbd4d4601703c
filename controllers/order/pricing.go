package orderControllers

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// TaxRate is the flat sales tax applied to the cart subtotal.
	TaxRate = 0.08
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 100.0
	// FlatShippingRate applies below the free-shipping threshold.
	FlatShippingRate = 9.99
)

// Totals is the checkout price breakdown.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// ComputeTotals prices a cart subtotal: flat tax plus flat-rate
// shipping, waived once the subtotal clears the free-shipping threshold.
func ComputeTotals(subtotal float64) Totals {
	totals := Totals{
		Subtotal: subtotal,
		Tax:      subtotal * TaxRate,
		Shipping: FlatShippingRate,
	}
	if subtotal > FreeShippingThreshold {
		totals.Shipping = 0
	}
	totals.Total = totals.Subtotal + totals.Tax + totals.Shipping
	return totals
}

// generateOrderNumber builds a unique, human-quotable order reference.
// Example: ORD-20250908130500-A41BC2F9
func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "ORD-" + time.Now().Format("20060102150405") + "-" + suffix
}
