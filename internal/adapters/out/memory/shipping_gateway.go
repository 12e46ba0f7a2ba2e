package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/rs/zerolog"
)

const (
	trackingNumberFormat   = "TRACK-%08d"
	trackingCounterStart   = 1000
	transitDeliveryDays    = 3
	shipmentStatusTemplate = "Package with tracking number %s is in transit"
)

// ShippingGateway implements ports.ShippingGateway with an in-process
// tracking number sequence. Numbers are unique per call and formatted as
// TRACK- followed by eight digits.
type ShippingGateway struct {
	mu      sync.Mutex
	counter int
	logger  zerolog.Logger
}

// NewShippingGateway creates an in-memory shipping gateway.
func NewShippingGateway(logger zerolog.Logger) *ShippingGateway {
	return &ShippingGateway{
		counter: trackingCounterStart,
		logger:  logger.With().Str("component", "shipping_gateway").Logger(),
	}
}

// Schedule books a shipment for the order and returns a fresh tracking number.
func (g *ShippingGateway) Schedule(_ context.Context, aggregate *order.Order) (string, error) {
	if aggregate == nil {
		return "", errs.NewValueIsRequiredError("aggregate")
	}
	if err := aggregate.Validate(); err != nil {
		return "", err
	}

	g.mu.Lock()
	g.counter++
	trackingNumber := fmt.Sprintf(trackingNumberFormat, g.counter)
	g.mu.Unlock()

	g.logger.Info().
		Str("order_id", aggregate.ID()).
		Str("tracking_number", trackingNumber).
		Msg("shipment scheduled")
	return trackingNumber, nil
}

// Status returns the carrier status line for a tracking number.
func (g *ShippingGateway) Status(trackingNumber string) string {
	return fmt.Sprintf(shipmentStatusTemplate, trackingNumber)
}

// EstimateDeliveryDate returns the expected delivery date for a shipment
// dispatched at the reference time.
func (g *ShippingGateway) EstimateDeliveryDate(ref time.Time) time.Time {
	return ref.AddDate(0, 0, transitDeliveryDays)
}
