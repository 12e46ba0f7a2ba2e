package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// ErrDuplicateOrder is returned by Add when an order with the same id is
// already stored.
var ErrDuplicateOrder = errors.New("order with this id already exists")

// OrderRepository implements ports.OrderRepository on a process-local map.
// Aggregates are stored by reference: callers mutate them in place and no
// Update call exists. Lookups take a read lock; inserts take the write lock.
type OrderRepository struct {
	mu       sync.RWMutex
	byID     map[string]*order.Order
	inserted []string
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID: make(map[string]*order.Order),
	}
}

// Add stores a new order aggregate. Fails with ErrDuplicateOrder when the id
// is already taken.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[aggregate.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOrder, aggregate.ID())
	}

	r.byID[aggregate.ID()] = aggregate
	r.inserted = append(r.inserted, aggregate.ID())
	return nil
}

// Get retrieves an order by id.
func (r *OrderRepository) Get(_ context.Context, id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, exists := r.byID[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return aggregate, nil
}

// GetByCustomer retrieves the customer's orders in insertion order.
func (r *OrderRepository) GetByCustomer(_ context.Context, customerID string) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, id := range r.inserted {
		if aggregate := r.byID[id]; aggregate.CustomerID() == customerID {
			orders = append(orders, aggregate)
		}
	}

	return orders, nil
}

// All retrieves every stored order in insertion order.
func (r *OrderRepository) All(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.inserted))
	for _, id := range r.inserted {
		orders = append(orders, r.byID[id])
	}

	return orders, nil
}
