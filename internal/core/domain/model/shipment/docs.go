// Package shipment provides the domain entities for shipment tracking.
// It implements the Shipment aggregate root together with its supporting
// value objects.
//
// The package includes:
//   - Shipment: The aggregate root holding status, history, notes, location
//     and the abnormality annotation
//   - Category: The delivery-speed classification, fixed at creation
//   - ShippingUpdate: An immutable status-transition record
//
// Key business rules:
//   - A shipment's history is never empty once the shipment exists
//   - The status always equals the newStatus of the most recent update
//   - Notes and history are append-only
//   - The abnormality annotation is sticky: once set it is never cleared
//   - All mutation goes through the registry; outside callers operate on
//     read-only clones
//
// The package follows the same aggregate conventions as the rest of the
// core: private fields, constructor validation, and a Validate method
// backed by a constructor guard.
package shipment
