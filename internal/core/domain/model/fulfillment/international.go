package fulfillment

import (
	"fmt"

	"orderflow/internal/core/domain/model/pricing"
	"orderflow/internal/pkg/errs"
)

const (
	internationalShippingRate    = 0.25
	internationalShippingMinimum = 30.0
	internationalProcessingFee   = 19.99
	internationalDeliveryDays    = 14
	internationalOrderMinimum    = 50.0
	internationalOrderLimit      = 10000.0
)

// International is the cross-border fulfillment policy: value-based shipping
// with a floor, a customs documentation fee, and a 10-14 business day delivery
// window. International fulfillment only accepts orders in the [$50, $10000)
// value range.
//
// The destination country is fixed at construction; the policy carries no
// other state.
type International struct {
	destinationCountry string
}

// NewInternationalPolicy creates an international fulfillment policy for the
// given destination country. The country must not be empty.
func NewInternationalPolicy(destinationCountry string) (*International, error) {
	if destinationCountry == "" {
		return nil, errs.NewValueIsRequiredError("destinationCountry")
	}
	return &International{destinationCountry: destinationCountry}, nil
}

// Name returns the strategy name including the destination country.
func (i *International) Name() string {
	return fmt.Sprintf("International Processing (%s)", i.destinationCountry)
}

// DestinationCountry returns the destination country of the policy.
func (i *International) DestinationCountry() string {
	return i.destinationCountry
}

// ShippingCost returns 25% of the order value with a $30 minimum.
func (i *International) ShippingCost(components []pricing.Component) float64 {
	cost := pricing.TotalOf(components) * internationalShippingRate
	if cost < internationalShippingMinimum {
		return internationalShippingMinimum
	}
	return cost
}

// ProcessingFee returns the customs documentation and handling fee.
func (i *International) ProcessingFee() float64 {
	return internationalProcessingFee
}

// EstimatedDeliveryDays returns the international delivery estimate.
func (i *International) EstimatedDeliveryDays() int {
	return internationalDeliveryDays
}

// CanProcess accepts non-empty component lists totalling at least $50 and
// strictly under $10000.
func (i *International) CanProcess(components []pricing.Component) bool {
	total := pricing.TotalOf(components)
	return len(components) > 0 && total >= internationalOrderMinimum && total < internationalOrderLimit
}

// Description returns the customer-facing policy description.
func (i *International) Description() string {
	return fmt.Sprintf(
		"International processing to %s with 10-14 business days delivery. Includes customs documentation fee of $19.99.",
		i.destinationCountry)
}
