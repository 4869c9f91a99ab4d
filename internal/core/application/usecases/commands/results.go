// Package commands contains the business operations that modify shipment
// state. Both transports funnel their raw lines through these handlers, so
// the core never knows which carrier invoked it.
//
// All commands follow a consistent pattern: constructor validation via a
// guard, parsing of the raw line, and a single registry call. Failures are
// returned as typed errors (parse errors, ErrObjectNotFound,
// ErrObjectAlreadyExists, ErrUnknownEventType); none of them are fatal, the
// caller decides presentation.
package commands

import "shipping/internal/core/domain/model/shipment"

// TrackingResult is the outcome of a successful create or update
// operation: a human-readable message, a read-only snapshot of the
// shipment after the operation, and the abnormality annotation when a
// delivery-policy rule has been violated.
type TrackingResult struct {
	Success     bool
	Message     string
	Shipment    *shipment.Shipment
	Abnormality string
}
