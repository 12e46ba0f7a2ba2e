package fulfillment

import "orderflow/internal/core/domain/model/pricing"

// Policy is the pluggable fulfillment strategy of an order. It computes
// shipping cost, processing fee, delivery estimate and order eligibility from
// a component list. Implementations are pure functions of the component list
// (and, for international fulfillment, the destination country supplied at
// construction); they hold no mutable state and are safe to share.
type Policy interface {
	// Name returns the human-readable strategy name.
	Name() string

	// ShippingCost computes the shipping cost for the given top-level
	// components. Bundles have already applied their internal discount.
	ShippingCost(components []pricing.Component) float64

	// ProcessingFee returns the flat processing fee of the policy.
	ProcessingFee() float64

	// EstimatedDeliveryDays returns the policy-driven delivery estimate in
	// business days. This figure is used for display and is independent of the
	// carrier's scheduled delivery date.
	EstimatedDeliveryDays() int

	// CanProcess reports whether the policy accepts an order made of the given
	// components.
	CanProcess(components []pricing.Component) bool

	// Description returns a customer-facing description of the policy.
	Description() string
}
