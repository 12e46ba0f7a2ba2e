package ports

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// NotificationKind identifies the customer-facing message to send.
type NotificationKind string

const (
	// NotificationOrderConfirmed is sent when an order is successfully placed.
	NotificationOrderConfirmed NotificationKind = "ORDER_CONFIRMED"

	// NotificationOrderProcessing is sent when an order is accepted for
	// fulfillment.
	NotificationOrderProcessing NotificationKind = "ORDER_PROCESSING"

	// NotificationOrderShipped is sent when an order leaves the warehouse.
	NotificationOrderShipped NotificationKind = "ORDER_SHIPPED"

	// NotificationOrderDelivered is sent when an order reaches the customer.
	NotificationOrderDelivered NotificationKind = "ORDER_DELIVERED"

	// NotificationOrderCancelled is sent when an order is cancelled.
	NotificationOrderCancelled NotificationKind = "ORDER_CANCELLED"
)

// NotificationSink defines the one-way contract for customer notifications.
// Delivery is fire and forget: implementations must not fail the calling
// workflow, whatever happens downstream.
type NotificationSink interface {
	// Notify sends the message of the given kind for the order.
	Notify(ctx context.Context, kind NotificationKind, aggregate *order.Order)
}
