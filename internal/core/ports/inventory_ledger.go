package ports

import (
	"context"

	"orderflow/internal/core/domain/model/pricing"
)

// InventoryLedger defines the contract for the stock-keeping collaborator.
// Quantities are exchanged as flattened pricing.Line values, so bundle
// structure never leaks into inventory bookkeeping.
type InventoryLedger interface {
	// CheckAvailability reports whether every line can be satisfied from
	// current stock. It reserves nothing.
	CheckAvailability(ctx context.Context, lines []pricing.Line) bool

	// Reserve removes the line quantities from available stock.
	// The reservation is all-or-nothing: when any line cannot be satisfied,
	// no stock is taken and false is returned.
	Reserve(ctx context.Context, lines []pricing.Line) bool

	// Release returns previously reserved quantities to available stock.
	Release(ctx context.Context, lines []pricing.Line)

	// AvailableQuantity returns the current unreserved stock for a product.
	// Unknown products have zero stock.
	AvailableQuantity(productID string) int
}
