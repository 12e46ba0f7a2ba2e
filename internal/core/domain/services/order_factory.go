package services

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/fulfillment"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/pricing"
	"orderflow/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// ErrPolicyRejected is the sentinel error for orders declined by their
// fulfillment policy at build time. It is distinct from input validation
// failures: the inputs are well-formed but the policy declares the order
// ineligible (for example an express order at or over $5000).
var ErrPolicyRejected = errors.New("fulfillment policy rejected order")

// PolicyRejectedError reports which policy declined the component set.
type PolicyRejectedError struct {
	PolicyName string
}

// Error implements the error interface.
func (e *PolicyRejectedError) Error() string {
	return fmt.Sprintf("%s: %s cannot process this order", ErrPolicyRejected, e.PolicyName)
}

// Unwrap returns the sentinel error so errors.Is(err, ErrPolicyRejected) holds.
func (e *PolicyRejectedError) Unwrap() error {
	return ErrPolicyRejected
}

// OrderFactory is the factory-method contract for creating orders of a given
// class (standard, express, international). Each factory validates inputs,
// selects a fulfillment policy consistent with its class, checks eligibility
// against the effective policy, and emits a creation event on success.
type OrderFactory interface {
	// Build creates a fully-formed order in New status.
	//
	// Build fails with a validation error when id or customerID is empty or
	// components is empty, and with a PolicyRejectedError when the effective
	// fulfillment policy declines the component set.
	Build(id string, customerID string, components []pricing.Component, policy fulfillment.Policy) (*order.Order, error)

	// Name returns the factory's display name.
	Name() string
}

// validateBuildInputs checks the construction inputs shared by every factory.
// All violations are reported together.
func validateBuildInputs(id string, customerID string, components []pricing.Component) error {
	var errGroup []error

	if id == "" {
		errGroup = append(errGroup, errs.NewValueIsRequiredError("id"))
	}
	if customerID == "" {
		errGroup = append(errGroup, errs.NewValueIsRequiredError("customerID"))
	}
	if len(components) == 0 {
		errGroup = append(errGroup, errs.NewValueIsRequiredError("components"))
	}

	return errors.Join(errGroup...)
}

// buildOrder runs the steps common to every factory: eligibility check
// against the effective policy, aggregate construction, optional class
// configuration, and the creation event.
func buildOrder(
	logger zerolog.Logger,
	factoryName string,
	id string,
	customerID string,
	components []pricing.Component,
	policy fulfillment.Policy,
	configure func(*order.Order),
) (*order.Order, error) {
	if policy == nil {
		return nil, errs.NewValueIsRequiredError("policy")
	}

	if !policy.CanProcess(components) {
		return nil, &PolicyRejectedError{PolicyName: policy.Name()}
	}

	o, err := order.NewOrder(id, customerID, components, policy)
	if err != nil {
		return nil, err
	}

	if configure != nil {
		configure(o)
	}

	logger.Info().
		Str("order_id", o.ID()).
		Str("customer_id", o.CustomerID()).
		Str("factory", factoryName).
		Str("policy", policy.Name()).
		Msg("order created")

	return o, nil
}

// StandardOrderFactory creates orders of the standard class.
//
// The supplied policy is used as-is, even when it is not the standard policy.
// This deliberately differs from the express and international factories,
// which force their tier's policy: a standard-class order may legitimately
// carry an upgraded fulfillment policy chosen by the caller.
type StandardOrderFactory struct {
	logger zerolog.Logger
}

// NewStandardOrderFactory creates a factory for standard orders.
func NewStandardOrderFactory(logger zerolog.Logger) StandardOrderFactory {
	return StandardOrderFactory{
		logger: logger.With().Str("component", "standard_order_factory").Logger(),
	}
}

// Name returns the factory's display name.
func (f StandardOrderFactory) Name() string {
	return "Standard Order Factory"
}

// Build creates a standard order using the supplied policy as-is.
func (f StandardOrderFactory) Build(
	id string, customerID string, components []pricing.Component, policy fulfillment.Policy,
) (*order.Order, error) {
	if err := validateBuildInputs(id, customerID, components); err != nil {
		return nil, err
	}

	return buildOrder(f.logger, f.Name(), id, customerID, components, policy, nil)
}

// ExpressOrderFactory creates orders of the express class. Any supplied policy
// that is not already the express policy is replaced with a default express
// policy, and the resulting order is always marked priority.
type ExpressOrderFactory struct {
	logger zerolog.Logger
}

// NewExpressOrderFactory creates a factory for express orders.
func NewExpressOrderFactory(logger zerolog.Logger) ExpressOrderFactory {
	return ExpressOrderFactory{
		logger: logger.With().Str("component", "express_order_factory").Logger(),
	}
}

// Name returns the factory's display name.
func (f ExpressOrderFactory) Name() string {
	return "Express Order Factory"
}

// Build creates a priority order under the express policy. Eligibility is
// checked against the effective (post-substitution) policy.
func (f ExpressOrderFactory) Build(
	id string, customerID string, components []pricing.Component, policy fulfillment.Policy,
) (*order.Order, error) {
	if err := validateBuildInputs(id, customerID, components); err != nil {
		return nil, err
	}

	if _, ok := policy.(*fulfillment.Express); !ok {
		policy = fulfillment.NewExpressPolicy()
	}

	return buildOrder(f.logger, f.Name(), id, customerID, components, policy, func(o *order.Order) {
		o.MarkPriority()
	})
}

// InternationalOrderFactory creates orders of the international class. Any
// supplied policy that is not already an international policy is replaced with
// an international policy for the factory's configured default destination
// country, and the resulting order is always marked international.
type InternationalOrderFactory struct {
	defaultCountry string
	logger         zerolog.Logger
}

// NewInternationalOrderFactory creates a factory for international orders
// destined, by default, for the given country. The country must not be empty.
func NewInternationalOrderFactory(defaultCountry string, logger zerolog.Logger) (InternationalOrderFactory, error) {
	if defaultCountry == "" {
		return InternationalOrderFactory{}, errs.NewValueIsRequiredError("defaultCountry")
	}

	return InternationalOrderFactory{
		defaultCountry: defaultCountry,
		logger:         logger.With().Str("component", "international_order_factory").Logger(),
	}, nil
}

// Name returns the factory's display name.
func (f InternationalOrderFactory) Name() string {
	return "International Order Factory"
}

// DefaultCountry returns the destination country used when a policy must be
// substituted.
func (f InternationalOrderFactory) DefaultCountry() string {
	return f.defaultCountry
}

// Build creates an international order under an international policy.
// Eligibility is checked against the effective (post-substitution) policy.
func (f InternationalOrderFactory) Build(
	id string, customerID string, components []pricing.Component, policy fulfillment.Policy,
) (*order.Order, error) {
	if err := validateBuildInputs(id, customerID, components); err != nil {
		return nil, err
	}

	if _, ok := policy.(*fulfillment.International); !ok {
		substituted, err := fulfillment.NewInternationalPolicy(f.defaultCountry)
		if err != nil {
			return nil, err
		}
		policy = substituted
	}

	return buildOrder(f.logger, f.Name(), id, customerID, components, policy, func(o *order.Order) {
		o.MarkInternational()
	})
}
