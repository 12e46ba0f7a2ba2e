// Package fulfillment provides the pluggable fulfillment policies that govern
// shipping cost, processing fee, delivery estimate and eligibility for an
// order tier.
//
// The package includes three policies:
//   - Standard: flat-rate shipping, free over $100, no fee, 5-7 days
//   - Express: 15% value-based shipping (min $15), $9.99 fee, 1-2 days,
//     orders under $5000 only
//   - International: 25% value-based shipping (min $30), $19.99 customs fee,
//     10-14 days, orders in the [$50, $10000) range only
//
// All thresholds use strict comparisons: an order at exactly $100.00 pays the
// standard flat rate. Policies are pure and stateless (International carries
// only its destination country), so a single instance can be shared across
// orders and goroutines.
package fulfillment
