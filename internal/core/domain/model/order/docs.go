// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns the component list, fulfillment
//     policy, lifecycle status and tracking metadata
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a unique identifier, a customer, and at least one
//     priced component
//   - Order status follows a defined workflow:
//     New -> Processing -> Shipped -> Delivered, with cancellation allowed
//     from New and Processing only
//   - Repeated events are no-ops; forbidden events fail with an
//     IllegalTransitionError and leave the status unchanged
//   - The order total is derived from components and policy on every read
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
