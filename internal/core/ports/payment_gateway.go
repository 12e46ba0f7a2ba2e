package ports

import "context"

// PaymentGateway defines the contract for the payment collaborator.
// Operations report outcome as a boolean: false means the operation was
// declined or the inputs were unusable, never a system fault.
type PaymentGateway interface {
	// VerifyMethod checks that the customer has a usable payment method.
	VerifyMethod(ctx context.Context, customerID string) bool

	// Charge debits the customer for the given amount.
	// Returns false when the amount is not positive or the charge is declined.
	Charge(ctx context.Context, customerID string, amount float64) bool

	// Refund credits the customer for the given amount.
	// Returns false when the amount is not positive or the refund is declined.
	Refund(ctx context.Context, customerID string, amount float64) bool
}
