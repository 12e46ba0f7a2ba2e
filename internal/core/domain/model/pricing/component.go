package pricing

// Component is the common contract for everything that can be priced as part
// of an order: single items and discountable bundles of items. Implementations
// are pure — TotalPrice and Description perform no I/O and recompute their
// result from immutable inputs on every call.
type Component interface {
	// Name returns the human-readable name of the component.
	Name() string

	// UnitPrice returns the price of a single unit. For bundles this equals
	// the discounted bundle total.
	UnitPrice() float64

	// Quantity returns the number of units. Bundles always report 1.
	Quantity() int

	// TotalPrice returns the total price of the component. For bundles the
	// total is computed recursively over children with the discount applied.
	TotalPrice() float64

	// Description renders a human-readable description of the component.
	// Bundles render their whole subtree.
	Description() string

	// IsBundle reports whether the component aggregates child components.
	IsBundle() bool
}

// TotalOf sums the total prices of the given top-level components.
// Bundles have already applied their own internal discount before being summed.
func TotalOf(components []Component) float64 {
	var total float64
	for _, c := range components {
		total += c.TotalPrice()
	}
	return total
}

// Line is a flat product/quantity pair used when talking to inventory.
type Line struct {
	ProductID string
	Quantity  int
}

// Lines flattens a component tree into inventory lines. Bundles are walked
// recursively; only leaf items contribute lines.
func Lines(components []Component) []Line {
	var lines []Line
	for _, c := range components {
		switch v := c.(type) {
		case *Item:
			lines = append(lines, Line{ProductID: v.ProductID(), Quantity: v.Quantity()})
		case *Bundle:
			lines = append(lines, Lines(v.Children())...)
		}
	}
	return lines
}
