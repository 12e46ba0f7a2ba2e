package pricing

import (
	"errors"
	"fmt"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is the leaf of the pricing component tree. It represents a single
// product line in an order: a product identifier, a display name, a
// non-negative unit price and a positive quantity.
//
// Item is immutable after construction, so a component list attached to an
// order can never silently desync from the order's derived total.
type Item struct { //nolint:recvcheck //using for validation
	productID string
	name      string
	unitPrice float64
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem creates a new Item with validation.
//
// Parameters:
//   - productID: Product identifier (must not be empty)
//   - name: Display name (must not be empty)
//   - unitPrice: Price of a single unit (must not be negative)
//   - quantity: Number of units (must be positive)
//
// Returns the created item, or a validation error describing every invalid
// parameter (errors are joined, not short-circuited).
func NewItem(productID string, name string, unitPrice float64, quantity int) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the product identifier of the item.
func (i *Item) ProductID() string {
	return i.productID
}

// Name returns the display name of the item.
func (i *Item) Name() string {
	return i.name
}

// UnitPrice returns the price of a single unit.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// Quantity returns the number of units.
func (i *Item) Quantity() int {
	return i.quantity
}

// TotalPrice returns unit price multiplied by quantity.
func (i *Item) TotalPrice() float64 {
	return i.unitPrice * float64(i.quantity)
}

// Description renders the item as "Name xQty @ $Unit = $Total".
func (i *Item) Description() string {
	return fmt.Sprintf("%s x%d @ $%.2f = $%.2f", i.name, i.quantity, i.unitPrice, i.TotalPrice())
}

// IsBundle reports false: items are leaves.
func (i *Item) IsBundle() bool {
	return false
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%.2f is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
