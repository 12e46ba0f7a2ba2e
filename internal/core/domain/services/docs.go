// Package services contains domain services: operations that belong to the
// domain but do not naturally live on a single aggregate.
//
// The package provides the OrderFactory family. Each factory encapsulates the
// creation rules of one order class: input validation, selection of a
// fulfillment policy consistent with the class, eligibility checking against
// that policy, and class-specific configuration of the resulting aggregate.
//
// Example:
//
//	factory := services.NewExpressOrderFactory(logger)
//	o, err := factory.Build("ORD-001001", "CUST-1", components, nil)
//	if err != nil {
//		if errors.Is(err, services.ErrPolicyRejected) {
//			// the express policy declined the order
//		}
//		return err
//	}
package services
