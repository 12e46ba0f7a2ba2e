package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"orderflow/internal/core/domain/model/fulfillment"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/pricing"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/metrics"

	"github.com/rs/zerolog"
)

const (
	orderIDFormat     = "ORD-%06d"
	orderCounterStart = 1000
)

const (
	rejectionValidation = "validation"
	rejectionPayment    = "payment"
	rejectionInventory  = "inventory"
	rejectionPolicy     = "policy"

	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
)

// OrderClass selects which order factory builds a placed order.
type OrderClass string

const (
	// OrderClassStandard builds orders with the caller's (or default
	// standard) fulfillment policy.
	OrderClassStandard OrderClass = "standard"

	// OrderClassExpress builds priority orders under the express policy.
	OrderClassExpress OrderClass = "express"

	// OrderClassInternational builds cross-border orders under the
	// international policy for the configured default country.
	OrderClassInternational OrderClass = "international"
)

// Factories bundles one order factory per order class.
type Factories struct {
	Standard      services.OrderFactory
	Express       services.OrderFactory
	International services.OrderFactory
}

func (f Factories) validate() error {
	switch {
	case f.Standard == nil:
		return errs.NewValueIsRequiredError("factories.Standard")
	case f.Express == nil:
		return errs.NewValueIsRequiredError("factories.Express")
	case f.International == nil:
		return errs.NewValueIsRequiredError("factories.International")
	}
	return nil
}

// OrderCoordinator is the single entry point for order workflows. It owns the
// order repository and the payment, inventory, shipping, and notification
// collaborators, and sequences every multi-step workflow across them.
//
// Mutating operations are serialized by a coordinator-level mutex, so a
// workflow's collaborator calls never interleave with another workflow's.
// Read operations bypass the mutex and rely on the repository's own locking.
//
// Lifecycle operations report outcome as a boolean: a false result means the
// order does not exist or its status forbids the event, and the system state
// is unchanged.
type OrderCoordinator struct {
	mu sync.Mutex

	orders        ports.OrderRepository
	payments      ports.PaymentGateway
	inventory     ports.InventoryLedger
	shipping      ports.ShippingGateway
	notifications ports.NotificationSink
	factories     Factories

	orderCounter int
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewOrderCoordinator creates a coordinator over the given collaborators.
// All collaborators are required.
func NewOrderCoordinator(
	orders ports.OrderRepository,
	payments ports.PaymentGateway,
	inventory ports.InventoryLedger,
	shipping ports.ShippingGateway,
	notifications ports.NotificationSink,
	factories Factories,
	m *metrics.Metrics,
	logger zerolog.Logger,
) (*OrderCoordinator, error) {
	switch {
	case orders == nil:
		return nil, errs.NewValueIsRequiredError("orders")
	case payments == nil:
		return nil, errs.NewValueIsRequiredError("payments")
	case inventory == nil:
		return nil, errs.NewValueIsRequiredError("inventory")
	case shipping == nil:
		return nil, errs.NewValueIsRequiredError("shipping")
	case notifications == nil:
		return nil, errs.NewValueIsRequiredError("notifications")
	case m == nil:
		return nil, errs.NewValueIsRequiredError("metrics")
	}
	if err := factories.validate(); err != nil {
		return nil, err
	}

	return &OrderCoordinator{
		orders:        orders,
		payments:      payments,
		inventory:     inventory,
		shipping:      shipping,
		notifications: notifications,
		factories:     factories,
		orderCounter:  orderCounterStart,
		metrics:       m,
		logger:        logger.With().Str("component", "order_coordinator").Logger(),
	}, nil
}

// PlaceOrder places a standard-class order.
func (c *OrderCoordinator) PlaceOrder(
	ctx context.Context, customerID string, components []pricing.Component,
) (*order.Order, error) {
	return c.PlaceOrderAs(ctx, customerID, components, OrderClassStandard)
}

// PlaceOrderAs runs the order placement workflow: payment verification, stock
// check, charge, reservation, aggregate construction, and storage, in that
// order. The class selects which factory builds the order. The workflow
// leaves no partial effects: when reservation or any later step fails after
// the customer was charged, a compensating refund is issued and the reserved
// stock is released.
//
// The charged amount is the component subtotal; shipping cost and processing
// fee are computed by the order's fulfillment policy and billed on fulfillment.
func (c *OrderCoordinator) PlaceOrderAs(
	ctx context.Context, customerID string, components []pricing.Component, class OrderClass,
) (*order.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	factory, err := c.factoryFor(class)
	if err != nil {
		c.metrics.OrdersRejected.WithLabelValues(rejectionValidation).Inc()
		return nil, err
	}

	if customerID == "" {
		c.metrics.OrdersRejected.WithLabelValues(rejectionValidation).Inc()
		return nil, errs.NewValueIsRequiredError("customerID")
	}
	if len(components) == 0 {
		c.metrics.OrdersRejected.WithLabelValues(rejectionValidation).Inc()
		return nil, errs.NewValueIsRequiredError("components")
	}

	subtotal := pricing.TotalOf(components)
	lines := pricing.Lines(components)
	log := c.logger.With().Str("customer_id", customerID).Logger()

	if !c.payments.VerifyMethod(ctx, customerID) {
		log.Warn().Msg("order rejected: payment method not verified")
		c.metrics.OrdersRejected.WithLabelValues(rejectionPayment).Inc()
		return nil, fmt.Errorf("payment method verification failed for customer %s", customerID)
	}

	if !c.inventory.CheckAvailability(ctx, lines) {
		log.Warn().Msg("order rejected: items unavailable")
		c.metrics.OrdersRejected.WithLabelValues(rejectionInventory).Inc()
		return nil, errors.New("one or more items are out of stock")
	}

	if !c.payments.Charge(ctx, customerID, subtotal) {
		log.Warn().Float64("amount", subtotal).Msg("order rejected: charge declined")
		c.metrics.OrdersRejected.WithLabelValues(rejectionPayment).Inc()
		return nil, fmt.Errorf("payment of $%.2f declined for customer %s", subtotal, customerID)
	}

	if !c.inventory.Reserve(ctx, lines) {
		c.compensate(ctx, log, customerID, subtotal, nil)
		c.metrics.OrdersRejected.WithLabelValues(rejectionInventory).Inc()
		return nil, errors.New("stock reservation failed")
	}

	id := c.nextOrderID()
	aggregate, err := factory.Build(id, customerID, components, fulfillment.NewStandardPolicy())
	if err != nil {
		c.compensate(ctx, log, customerID, subtotal, lines)
		c.metrics.OrdersRejected.WithLabelValues(rejectionPolicy).Inc()
		return nil, fmt.Errorf("order construction failed: %w", err)
	}

	if err := c.orders.Add(ctx, aggregate); err != nil {
		c.compensate(ctx, log, customerID, subtotal, lines)
		c.metrics.OrdersRejected.WithLabelValues(rejectionValidation).Inc()
		return nil, fmt.Errorf("order storage failed: %w", err)
	}

	c.notifications.Notify(ctx, ports.NotificationOrderConfirmed, aggregate)
	c.metrics.OrdersPlaced.Inc()
	log.Info().
		Str("order_id", aggregate.ID()).
		Float64("subtotal", subtotal).
		Float64("total", aggregate.TotalAmount()).
		Msg("order placed")

	return aggregate, nil
}

// ProcessOrder accepts an order for fulfillment. Returns false when the order
// does not exist or its status forbids the event.
func (c *OrderCoordinator) ProcessOrder(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	aggregate, ok := c.lookup(ctx, id, "process")
	if !ok {
		return false
	}

	alreadyProcessing := aggregate.Status() != order.New

	if err := aggregate.Process(); err != nil {
		c.rejectTransition(id, "process", err)
		return false
	}

	if !alreadyProcessing {
		c.notifications.Notify(ctx, ports.NotificationOrderProcessing, aggregate)
	}
	c.metrics.Transitions.WithLabelValues("process", outcomeSuccess).Inc()
	c.logger.Info().Str("order_id", id).Msg("order processing")
	return true
}

// ShipOrder ships a processed order: a shipment is scheduled with the
// carrier, the tracking number is attached, and the order is marked Shipped.
// The transition is validated before the shipment is scheduled, so a
// rejected ship never books a carrier shipment. Returns false when the order
// does not exist or its status forbids the event.
func (c *OrderCoordinator) ShipOrder(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	aggregate, ok := c.lookup(ctx, id, "ship")
	if !ok {
		return false
	}

	if err := aggregate.Status().ValidateShip(); err != nil {
		c.rejectTransition(id, "ship", err)
		return false
	}

	// Already shipped or delivered: the event is a no-op, do not book a
	// second shipment.
	if aggregate.Status() != order.Processing {
		c.metrics.Transitions.WithLabelValues("ship", outcomeSuccess).Inc()
		return true
	}

	trackingNumber, err := c.shipping.Schedule(ctx, aggregate)
	if err != nil {
		c.rejectTransition(id, "ship", err)
		return false
	}

	if err := aggregate.AssignTrackingNumber(trackingNumber); err != nil {
		c.rejectTransition(id, "ship", err)
		return false
	}

	if err := aggregate.Ship(); err != nil {
		c.rejectTransition(id, "ship", err)
		return false
	}

	c.notifications.Notify(ctx, ports.NotificationOrderShipped, aggregate)
	c.metrics.Transitions.WithLabelValues("ship", outcomeSuccess).Inc()
	c.logger.Info().
		Str("order_id", id).
		Str("tracking_number", trackingNumber).
		Msg("order shipped")
	return true
}

// DeliverOrder marks a shipped order as delivered. Returns false when the
// order does not exist or its status forbids the event.
func (c *OrderCoordinator) DeliverOrder(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	aggregate, ok := c.lookup(ctx, id, "deliver")
	if !ok {
		return false
	}

	alreadyDelivered := aggregate.Status() == order.Delivered

	if err := aggregate.Deliver(); err != nil {
		c.rejectTransition(id, "deliver", err)
		return false
	}

	if !alreadyDelivered {
		c.notifications.Notify(ctx, ports.NotificationOrderDelivered, aggregate)
		c.logger.Info().Str("order_id", id).Msg("order delivered")
	}
	c.metrics.Transitions.WithLabelValues("deliver", outcomeSuccess).Inc()
	return true
}

// CancelOrder cancels an order that has not shipped. Cancelling releases the
// reserved stock and refunds the component subtotal. Cancelling an already
// cancelled order is a no-op that triggers no second refund. Returns false
// when the order does not exist or has already shipped or been delivered.
func (c *OrderCoordinator) CancelOrder(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	aggregate, ok := c.lookup(ctx, id, "cancel")
	if !ok {
		return false
	}

	alreadyCancelled := aggregate.Status() == order.Cancelled

	if err := aggregate.Cancel(); err != nil {
		c.rejectTransition(id, "cancel", err)
		return false
	}

	if !alreadyCancelled {
		c.inventory.Release(ctx, pricing.Lines(aggregate.Components()))
		c.payments.Refund(ctx, aggregate.CustomerID(), aggregate.Subtotal())
		c.notifications.Notify(ctx, ports.NotificationOrderCancelled, aggregate)
		c.logger.Info().
			Str("order_id", id).
			Float64("refunded", aggregate.Subtotal()).
			Msg("order cancelled")
	}
	c.metrics.Transitions.WithLabelValues("cancel", outcomeSuccess).Inc()
	return true
}

// GetOrderStatus returns the current status of an order.
func (c *OrderCoordinator) GetOrderStatus(ctx context.Context, id string) (order.Status, bool) {
	aggregate, err := c.orders.Get(ctx, id)
	if err != nil {
		return order.Unknown, false
	}
	return aggregate.Status(), true
}

// GetOrderDetails returns the order aggregate.
func (c *OrderCoordinator) GetOrderDetails(ctx context.Context, id string) (*order.Order, bool) {
	aggregate, err := c.orders.Get(ctx, id)
	if err != nil {
		return nil, false
	}
	return aggregate, true
}

// GetCustomerOrders returns the customer's orders in placement order.
// A customer with no orders gets an empty slice.
func (c *OrderCoordinator) GetCustomerOrders(ctx context.Context, customerID string) []*order.Order {
	orders, err := c.orders.GetByCustomer(ctx, customerID)
	if err != nil {
		return []*order.Order{}
	}
	return orders
}

// GetEstimatedDelivery returns the expected delivery date for an order,
// estimated from the current time.
func (c *OrderCoordinator) GetEstimatedDelivery(ctx context.Context, id string) (time.Time, bool) {
	if _, err := c.orders.Get(ctx, id); err != nil {
		return time.Time{}, false
	}
	return c.shipping.EstimateDeliveryDate(time.Now()), true
}

// CountByStatus returns the number of stored orders per lifecycle status.
func (c *OrderCoordinator) CountByStatus(ctx context.Context) map[order.Status]int {
	counts := make(map[order.Status]int)

	orders, err := c.orders.All(ctx)
	if err != nil {
		return counts
	}

	for _, aggregate := range orders {
		counts[aggregate.Status()]++
	}
	return counts
}

func (c *OrderCoordinator) factoryFor(class OrderClass) (services.OrderFactory, error) {
	switch class {
	case OrderClassStandard:
		return c.factories.Standard, nil
	case OrderClassExpress:
		return c.factories.Express, nil
	case OrderClassInternational:
		return c.factories.International, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("class",
			fmt.Errorf("%q is not a known order class", class))
	}
}

// nextOrderID must be called with the mutex held.
func (c *OrderCoordinator) nextOrderID() string {
	c.orderCounter++
	return fmt.Sprintf(orderIDFormat, c.orderCounter)
}

// compensate undoes the side effects of a failed placement: reserved stock is
// released and the charged amount refunded.
func (c *OrderCoordinator) compensate(
	ctx context.Context, log zerolog.Logger, customerID string, amount float64, lines []pricing.Line,
) {
	if len(lines) > 0 {
		c.inventory.Release(ctx, lines)
	}
	c.payments.Refund(ctx, customerID, amount)
	c.metrics.Compensations.Inc()
	log.Warn().Float64("amount", amount).Msg("placement failed after charge, compensating refund issued")
}

func (c *OrderCoordinator) lookup(ctx context.Context, id string, event string) (*order.Order, bool) {
	aggregate, err := c.orders.Get(ctx, id)
	if err != nil {
		c.logger.Warn().Str("order_id", id).Str("event", event).Msg("order not found")
		c.metrics.Transitions.WithLabelValues(event, outcomeRejected).Inc()
		return nil, false
	}
	return aggregate, true
}

func (c *OrderCoordinator) rejectTransition(id string, event string, err error) {
	c.logger.Warn().Str("order_id", id).Str("event", event).Err(err).Msg("transition rejected")
	c.metrics.Transitions.WithLabelValues(event, outcomeRejected).Inc()
}
