package ports

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/order"
)

// ShippingGateway defines the contract for the carrier collaborator.
type ShippingGateway interface {
	// Schedule books a shipment for the order and returns the carrier
	// tracking number. Tracking numbers are unique per call.
	Schedule(ctx context.Context, aggregate *order.Order) (string, error)

	// Status returns the carrier's human-readable status line for a
	// tracking number.
	Status(trackingNumber string) string

	// EstimateDeliveryDate returns the expected delivery date for a
	// shipment dispatched at the given reference time.
	EstimateDeliveryDate(ref time.Time) time.Time
}
