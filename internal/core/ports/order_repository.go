package ports

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
// The backing store keeps aggregates for the lifetime of the process;
// implementations must support concurrent lookups and exclusive inserts.
type OrderRepository interface {
	// Add stores a new order aggregate.
	// The order must be valid and its id must not already exist in the store.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by the given customer,
	// in insertion order. Returns an empty slice when the customer has none.
	GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)

	// All retrieves every stored order, in insertion order.
	All(ctx context.Context) ([]*order.Order, error)
}
