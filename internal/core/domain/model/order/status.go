package order

import (
	"errors"
	"fmt"

	"orderflow/internal/pkg/errs"
)

// ErrIllegalTransition is the sentinel error for lifecycle transitions that
// the current status forbids. Callers must treat it as recoverable: catch it,
// report the failure, and leave the order untouched.
var ErrIllegalTransition = errors.New("illegal status transition")

// IllegalTransitionError reports a lifecycle event invoked in a status that
// forbids it. It identifies the status, the attempted event, and the business
// reason for the rejection.
type IllegalTransitionError struct {
	From   Status
	Event  string
	Reason string
}

// Error implements the error interface.
func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s a %s order (%s)", ErrIllegalTransition, e.Event, e.From, e.Reason)
}

// Unwrap returns the sentinel error so errors.Is(err, ErrIllegalTransition) holds.
func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

func newIllegalTransitionError(from Status, event string, reason string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, Event: event, Reason: reason}
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	New ──> Processing ──> Shipped ──> Delivered
//	 │          │
//	 └──────────┴──> Cancelled
//
// Cancelled and Delivered are terminal. Repeating an event the order has
// already absorbed (processing a Processing order, shipping a Shipped order)
// is a no-op; events the current status forbids fail with an
// IllegalTransitionError. Transition methods are pure: they return the
// resulting status and never mutate the receiver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned at construction.
	New

	// Processing indicates the order has been accepted for fulfillment.
	Processing

	// Shipped indicates the order has left the warehouse and carries a
	// tracking number.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before shipping. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		New:        "NEW",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "NEW",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the uppercase name of the status.
// It implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Process transitions the status toward Processing.
//
// Valid transitions:
//   - New -> Processing
//   - Processing, Shipped, Delivered -> unchanged (no-op)
//
// Rejected:
//   - Cancelled (cancelled order)
func (s Status) Process() (Status, error) {
	switch s {
	case New:
		return Processing, nil
	case Processing, Shipped, Delivered:
		return s, nil
	case Cancelled:
		return Unknown, newIllegalTransitionError(s, "process", "cancelled order")
	default:
		return Unknown, s.Validate()
	}
}

// Ship transitions the status toward Shipped.
//
// Valid transitions:
//   - Processing -> Shipped
//   - Shipped, Delivered -> unchanged (no-op)
//
// Rejected:
//   - New (not processed yet)
//   - Cancelled (cancelled order)
func (s Status) Ship() (Status, error) {
	switch s {
	case Processing:
		return Shipped, nil
	case Shipped, Delivered:
		return s, nil
	case New:
		return Unknown, newIllegalTransitionError(s, "ship", "not processed yet")
	case Cancelled:
		return Unknown, newIllegalTransitionError(s, "ship", "cancelled order")
	default:
		return Unknown, s.Validate()
	}
}

// Deliver transitions the status toward Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//   - Delivered -> unchanged (no-op)
//
// Rejected:
//   - New (not processed yet)
//   - Processing (not shipped yet)
//   - Cancelled (cancelled order)
func (s Status) Deliver() (Status, error) {
	switch s {
	case Shipped:
		return Delivered, nil
	case Delivered:
		return s, nil
	case New:
		return Unknown, newIllegalTransitionError(s, "deliver", "not processed yet")
	case Processing:
		return Unknown, newIllegalTransitionError(s, "deliver", "not shipped yet")
	case Cancelled:
		return Unknown, newIllegalTransitionError(s, "deliver", "cancelled order")
	default:
		return Unknown, s.Validate()
	}
}

// Cancel transitions the status toward Cancelled.
//
// Valid transitions:
//   - New, Processing -> Cancelled
//   - Cancelled -> unchanged (no-op)
//
// Rejected:
//   - Shipped (already shipped)
//   - Delivered (already delivered)
func (s Status) Cancel() (Status, error) {
	switch s {
	case New, Processing:
		return Cancelled, nil
	case Cancelled:
		return s, nil
	case Shipped:
		return Unknown, newIllegalTransitionError(s, "cancel", "already shipped")
	case Delivered:
		return Unknown, newIllegalTransitionError(s, "cancel", "already delivered")
	default:
		return Unknown, s.Validate()
	}
}

// ValidateShip checks whether the ship event is allowed from the current
// status without performing the transition. The coordinator uses it to avoid
// scheduling a shipment for an order that would reject the transition.
func (s Status) ValidateShip() error {
	_, err := s.Ship()
	return err
}
