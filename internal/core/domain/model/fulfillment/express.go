package fulfillment

import "orderflow/internal/core/domain/model/pricing"

const (
	expressShippingRate    = 0.15
	expressShippingMinimum = 15.0
	expressProcessingFee   = 9.99
	expressDeliveryDays    = 2
	expressOrderLimit      = 5000.0
)

// Express is the expedited fulfillment policy: value-based shipping with a
// floor, a flat processing fee, and a 1-2 business day delivery window.
// Express fulfillment is only available for orders strictly under $5000.
type Express struct{}

// NewExpressPolicy creates the express fulfillment policy.
func NewExpressPolicy() *Express {
	return &Express{}
}

// Name returns the strategy name.
func (e *Express) Name() string {
	return "Express Processing"
}

// ShippingCost returns 15% of the order value with a $15 minimum.
func (e *Express) ShippingCost(components []pricing.Component) float64 {
	cost := pricing.TotalOf(components) * expressShippingRate
	if cost < expressShippingMinimum {
		return expressShippingMinimum
	}
	return cost
}

// ProcessingFee returns the flat express handling fee.
func (e *Express) ProcessingFee() float64 {
	return expressProcessingFee
}

// EstimatedDeliveryDays returns the express delivery estimate.
func (e *Express) EstimatedDeliveryDays() int {
	return expressDeliveryDays
}

// CanProcess accepts non-empty component lists totalling strictly under $5000.
func (e *Express) CanProcess(components []pricing.Component) bool {
	return len(components) > 0 && pricing.TotalOf(components) < expressOrderLimit
}

// Description returns the customer-facing policy description.
func (e *Express) Description() string {
	return "Express processing with 1-2 business days delivery. Additional processing fee of $9.99 applies."
}
