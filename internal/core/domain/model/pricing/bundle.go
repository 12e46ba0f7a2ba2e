package pricing

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrBundleIsNotConstructed is returned when a Bundle instance was not created
// through the NewBundle factory method.
var ErrBundleIsNotConstructed = errors.New("Bundle must be created via NewBundle constructor")

// Bundle is the composite of the pricing component tree. It aggregates child
// components in insertion order and applies a discount fraction to the sum of
// their totals. Bundles may nest to arbitrary depth.
//
// Children are owned exclusively by the bundle and are only attached through
// Add. Callers must never add a bundle into its own subtree; the tree is
// acyclic by construction and this invariant is not re-checked at runtime.
type Bundle struct { //nolint:recvcheck //using for validation
	name     string
	discount float64
	children []Component

	guard guard.ConstructorGuard
}

// NewBundle creates a new empty Bundle with validation.
//
// Parameters:
//   - name: Display name of the bundle (must not be empty)
//   - discount: Discount fraction applied to the children subtotal
//     (must be in the range [0, 1))
//
// Returns the created bundle or a validation error.
func NewBundle(name string, discount float64) (*Bundle, error) {
	bundle := &Bundle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bundle.setName(name),
		bundle.setDiscount(discount),
	); err != nil {
		return nil, err
	}

	return bundle, nil
}

// Validate ensures the Bundle instance was properly constructed through NewBundle.
func (b *Bundle) Validate() error {
	if b == nil {
		return ErrBundleIsNotConstructed
	}
	return b.guard.Validate(ErrBundleIsNotConstructed)
}

// Add appends a child component to the bundle. Insertion order is preserved
// and determines description order. Nil components are ignored.
func (b *Bundle) Add(component Component) {
	if component == nil {
		return
	}
	b.children = append(b.children, component)
}

// Remove detaches the first child identical to the given component.
// Removing a component that is not a child is a no-op.
func (b *Bundle) Remove(component Component) {
	for i, child := range b.children {
		if child == component {
			b.children = append(b.children[:i], b.children[i+1:]...)
			return
		}
	}
}

// Children returns a copy of the child list in insertion order.
func (b *Bundle) Children() []Component {
	children := make([]Component, len(b.children))
	copy(children, b.children)
	return children
}

// Name returns the display name of the bundle.
func (b *Bundle) Name() string {
	return b.name
}

// Discount returns the discount fraction applied to the children subtotal.
func (b *Bundle) Discount() float64 {
	return b.discount
}

// UnitPrice returns the discounted bundle total.
func (b *Bundle) UnitPrice() float64 {
	return b.TotalPrice()
}

// Quantity returns 1: a bundle prices as a single unit.
func (b *Bundle) Quantity() int {
	return 1
}

// TotalPrice returns the sum of children totals with the discount applied.
// The computation is recursive: nested bundles apply their own discount to
// their own subtree before being summed here.
func (b *Bundle) TotalPrice() float64 {
	var subtotal float64
	for _, child := range b.children {
		subtotal += child.TotalPrice()
	}
	return subtotal - subtotal*b.discount
}

// Description renders the bundle subtree. The bundle header shows the discount
// percentage when a discount is set, each child renders on its own indented
// line, and the bundle's own total closes the block.
func (b *Bundle) Description() string {
	var sb strings.Builder

	sb.WriteString(b.name)
	if b.discount > 0 {
		sb.WriteString(fmt.Sprintf(" (%.0f%% discount)", b.discount*100))
	}
	sb.WriteString(":\n")

	for _, child := range b.children {
		if child.IsBundle() {
			sb.WriteString("  └─ " + strings.ReplaceAll(child.Description(), "\n", "\n     ") + "\n")
		} else {
			sb.WriteString("  └─ " + child.Description() + "\n")
		}
	}

	sb.WriteString(fmt.Sprintf("  Total: $%.2f", b.TotalPrice()))
	return sb.String()
}

// IsBundle reports true: bundles are composites.
func (b *Bundle) IsBundle() bool {
	return true
}

func (b *Bundle) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	b.name = name
	return nil
}

func (b *Bundle) setDiscount(discount float64) error {
	if discount < 0 || discount >= 1 {
		return errs.NewValueIsOutOfRangeError("discount", discount, 0, 1)
	}
	b.discount = discount
	return nil
}
