package fulfillment

import "orderflow/internal/core/domain/model/pricing"

const (
	standardFreeShippingThreshold = 100.0
	standardFlatRate              = 5.99
	standardDeliveryDays          = 5
)

// Standard is the default fulfillment policy: flat-rate shipping with free
// shipping for orders strictly over $100, no processing fee, and a 5-7
// business day delivery window.
type Standard struct{}

// NewStandardPolicy creates the standard fulfillment policy.
func NewStandardPolicy() *Standard {
	return &Standard{}
}

// Name returns the strategy name.
func (s *Standard) Name() string {
	return "Standard Processing"
}

// ShippingCost returns 0 for totals strictly over $100, otherwise the $5.99
// flat rate. An order at exactly $100.00 pays the flat rate.
func (s *Standard) ShippingCost(components []pricing.Component) float64 {
	if pricing.TotalOf(components) > standardFreeShippingThreshold {
		return 0
	}
	return standardFlatRate
}

// ProcessingFee returns 0: standard fulfillment carries no fee.
func (s *Standard) ProcessingFee() float64 {
	return 0
}

// EstimatedDeliveryDays returns the standard delivery estimate.
func (s *Standard) EstimatedDeliveryDays() int {
	return standardDeliveryDays
}

// CanProcess accepts any non-empty component list.
func (s *Standard) CanProcess(components []pricing.Component) bool {
	return len(components) > 0
}

// Description returns the customer-facing policy description.
func (s *Standard) Description() string {
	return "Standard processing with 5-7 business days delivery. Free shipping on orders over $100."
}
