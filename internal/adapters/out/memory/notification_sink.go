package memory

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"github.com/rs/zerolog"
)

// NotificationSink implements ports.NotificationSink by writing structured
// log events. Each notification carries a generated event id so downstream
// log pipelines can deduplicate.
type NotificationSink struct {
	logger zerolog.Logger
}

// NewNotificationSink creates a logging notification sink.
func NewNotificationSink(logger zerolog.Logger) *NotificationSink {
	return &NotificationSink{
		logger: logger.With().Str("component", "notification_sink").Logger(),
	}
}

// Notify emits the notification as a log event. It never fails the caller.
func (s *NotificationSink) Notify(_ context.Context, kind ports.NotificationKind, aggregate *order.Order) {
	if aggregate == nil {
		return
	}

	event := s.logger.Info().
		Str("event_id", kernel.NewUUID().String()).
		Str("kind", string(kind)).
		Str("order_id", aggregate.ID()).
		Str("customer_id", aggregate.CustomerID())

	if trackingNumber := aggregate.TrackingNumber(); trackingNumber != "" {
		event = event.Str("tracking_number", trackingNumber)
	}

	event.Msg("customer notification sent")
}
