// Package pricing provides the priceable component tree for orders.
//
// The package includes:
//   - Component: The common contract for priceable units
//   - Item: A single product line (leaf), immutable after construction
//   - Bundle: A discountable group of components (composite), nestable to
//     arbitrary depth
//
// Key business rules:
//   - Item total = unit price × quantity; unit price is non-negative and
//     quantity is positive
//   - Bundle total = (sum of children totals) × (1 − discount), with the
//     discount fraction in [0, 1)
//   - Totals and descriptions are pure computations, recomputed from immutable
//     inputs on every read
//
// The package follows Domain-Driven Design principles: components are created
// through validated constructors and enforce their invariants internally.
package pricing
