// Package kernel provides shared value objects used across the order domain.
//
// The package currently contains:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid,
//     used to identify emitted domain events
//
// Value objects in this package are immutable, validated at construction, and
// safe for concurrent use. Zero values are invalid and fail Validate, which
// prevents accidental use of uninitialized identifiers.
package kernel
