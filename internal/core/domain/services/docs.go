// Package services provides the pure domain services of the shipment
// tracking core. They hold no state and perform no I/O; the registry
// applies their results to the aggregates it owns.
//
// The package includes:
//   - DispatchUpdate: maps an event type to its status transition through
//     a lookup table of pure transition functions
//   - ValidateDeliveryWindow / CheckDeliveryDrift: the per-category
//     delivery-time compliance rules and their re-check against revised
//     delivery estimates
//
// Domain services implement business logic that doesn't naturally belong
// to a single aggregate root.
package services
