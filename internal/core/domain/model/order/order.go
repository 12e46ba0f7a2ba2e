package order

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/fulfillment"
	"orderflow/internal/core/domain/model/pricing"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTrackingNumberAlreadyAssigned is returned when a tracking number is
	// assigned to an order that already carries one. Tracking numbers are
	// settable exactly once, by the shipping step.
	ErrTrackingNumberAlreadyAssigned = errors.New("tracking number is already assigned")
)

// Order represents a customer order. It is the aggregate root that owns an
// immutable component list, a fulfillment policy reference, and a mutable
// lifecycle status.
//
// Order follows these invariants:
//   - Must have a non-empty identifier and customer identifier
//   - Must have a non-empty component list, copied in at construction
//   - Total amount is derived on every read from components and policy,
//     never cached
//   - Status transitions only through the order's own lifecycle methods
//   - Tracking number is absent until the shipping step assigns it, once
//   - Can only be created through NewOrder (normally via an order factory)
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id string

	// customerID identifies the customer who placed the order
	customerID string

	// createdAt is set at construction and immutable afterwards
	createdAt time.Time

	// components is the priced content of the order, immutable once attached
	components []pricing.Component

	// policy is the fulfillment strategy applied to the components
	policy fulfillment.Policy

	// status represents the current state in the order lifecycle
	status Status

	// trackingNumber is empty until the shipping step assigns it
	trackingNumber string

	// priority marks expedited orders; set once by the express factory
	priority bool

	// international marks cross-border orders; set once by the international factory
	international bool

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. Orders are normally
// created through one of the order factories, which layer policy selection and
// eligibility checks on top of this constructor.
//
// Parameters:
//   - id: Unique identifier for the order (must not be empty)
//   - customerID: Identifier of the ordering customer (must not be empty)
//   - components: Priced content of the order (must not be empty; the slice
//     is copied)
//   - policy: Fulfillment policy for the order (must not be nil)
//
// Returns the order in New status, or a validation error listing every
// invalid parameter.
func NewOrder(id string, customerID string, components []pricing.Component, policy fulfillment.Policy) (*Order, error) {
	o := &Order{
		status:        New,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setComponents(components),
		o.setPolicy(policy),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// CreatedAt returns the construction timestamp of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Components returns a copy of the order's component list.
func (o *Order) Components() []pricing.Component {
	components := make([]pricing.Component, len(o.components))
	copy(components, o.components)
	return components
}

// Policy returns the fulfillment policy of the order.
func (o *Order) Policy() fulfillment.Policy {
	return o.policy
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TrackingNumber returns the carrier tracking number, or the empty string if
// the order has not been shipped.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// Priority reports whether the order was created with expedited handling.
func (o *Order) Priority() bool {
	return o.priority
}

// International reports whether the order ships across a border.
func (o *Order) International() bool {
	return o.international
}

// Subtotal returns the sum of component totals, without shipping or fees.
// The value is recomputed from the components on every call.
func (o *Order) Subtotal() float64 {
	return pricing.TotalOf(o.components)
}

// ShippingCost returns the policy-computed shipping cost for the order.
func (o *Order) ShippingCost() float64 {
	return o.policy.ShippingCost(o.components)
}

// ProcessingFee returns the policy's flat processing fee.
func (o *Order) ProcessingFee() float64 {
	return o.policy.ProcessingFee()
}

// TotalAmount returns subtotal plus shipping cost plus processing fee.
// The value is recomputed from immutable inputs on every read; it is never
// cached, so it can never desync from the components.
func (o *Order) TotalAmount() float64 {
	return o.Subtotal() + o.ShippingCost() + o.ProcessingFee()
}

// Process advances the order toward Processing.
// Returns an IllegalTransitionError if the current status forbids the event;
// the status is left unchanged on failure.
func (o *Order) Process() error {
	newStatus, err := o.status.Process()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship advances the order toward Shipped.
// Returns an IllegalTransitionError if the current status forbids the event;
// the status is left unchanged on failure.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver advances the order toward Delivered.
// Returns an IllegalTransitionError if the current status forbids the event;
// the status is left unchanged on failure.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel advances the order toward Cancelled.
// Returns an IllegalTransitionError if the current status forbids the event;
// the status is left unchanged on failure.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPriority flags the order for expedited handling. Called once by the
// express order factory at construction; the flag cannot be cleared.
func (o *Order) MarkPriority() {
	o.priority = true
}

// MarkInternational flags the order as cross-border. Called once by the
// international order factory at construction; the flag cannot be cleared.
func (o *Order) MarkInternational() {
	o.international = true
}

// AssignTrackingNumber attaches the carrier tracking number to the order.
// The number must be non-empty and can be assigned exactly once.
func (o *Order) AssignTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if o.trackingNumber != "" {
		return ErrTrackingNumberAlreadyAssigned
	}

	o.trackingNumber = trackingNumber
	return nil
}

// String renders a one-line summary of the order.
func (o *Order) String() string {
	return fmt.Sprintf("Order #%s - Status: %s, Customer: %s, Total: $%.2f",
		o.id, o.status, o.customerID, o.TotalAmount())
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setComponents(components []pricing.Component) error {
	if len(components) == 0 {
		return errs.NewValueIsRequiredError("components")
	}

	o.components = make([]pricing.Component, len(components))
	copy(o.components, components)
	return nil
}

func (o *Order) setPolicy(policy fulfillment.Policy) error {
	if policy == nil {
		return errs.NewValueIsRequiredError("policy")
	}
	o.policy = policy
	return nil
}
