package memory

import (
	"context"
	"sync"

	"orderflow/internal/core/domain/model/pricing"

	"github.com/rs/zerolog"
)

// InventoryLedger implements ports.InventoryLedger on an in-process stock map.
// Reservations are all-or-nothing under a single lock, so concurrent reserves
// can never oversell a product.
type InventoryLedger struct {
	mu     sync.Mutex
	stock  map[string]int
	logger zerolog.Logger
}

// NewInventoryLedger creates a ledger holding the given initial stock.
// The map is copied; the caller keeps ownership of its argument.
func NewInventoryLedger(initialStock map[string]int, logger zerolog.Logger) *InventoryLedger {
	stock := make(map[string]int, len(initialStock))
	for productID, quantity := range initialStock {
		stock[productID] = quantity
	}

	return &InventoryLedger{
		stock:  stock,
		logger: logger.With().Str("component", "inventory_ledger").Logger(),
	}
}

// DefaultStock returns the catalogue the service ships with.
func DefaultStock() map[string]int {
	return map[string]int{
		"PROD001": 100,
		"PROD002": 50,
		"PROD003": 75,
	}
}

// CheckAvailability reports whether every line can be satisfied. Nothing is
// reserved.
func (l *InventoryLedger) CheckAvailability(_ context.Context, lines []pricing.Line) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.canSatisfy(lines)
}

// Reserve removes the line quantities from stock, all-or-nothing.
func (l *InventoryLedger) Reserve(_ context.Context, lines []pricing.Line) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.canSatisfy(lines) {
		l.logger.Warn().Int("lines", len(lines)).Msg("reservation declined: insufficient stock")
		return false
	}

	for _, line := range lines {
		l.stock[line.ProductID] -= line.Quantity
	}
	l.logger.Info().Int("lines", len(lines)).Msg("stock reserved")
	return true
}

// Release returns previously reserved quantities to stock.
func (l *InventoryLedger) Release(_ context.Context, lines []pricing.Line) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, line := range lines {
		l.stock[line.ProductID] += line.Quantity
	}
	l.logger.Info().Int("lines", len(lines)).Msg("stock released")
}

// AvailableQuantity returns the unreserved stock for a product.
func (l *InventoryLedger) AvailableQuantity(productID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stock[productID]
}

// canSatisfy must be called with the lock held. Quantities of repeated
// product ids are summed before comparison against stock.
func (l *InventoryLedger) canSatisfy(lines []pricing.Line) bool {
	required := make(map[string]int, len(lines))
	for _, line := range lines {
		required[line.ProductID] += line.Quantity
	}

	for productID, quantity := range required {
		if l.stock[productID] < quantity {
			return false
		}
	}
	return true
}
