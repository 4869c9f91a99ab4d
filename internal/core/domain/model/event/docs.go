// Package event provides the normalized shipment event model and the
// parser that produces it from raw comma-separated input lines.
//
// The package includes:
//   - Type: the canonical event-type token set
//   - ShipmentEvent: one normalized instruction (type, shipment id,
//     timestamp, optional payload), constructed per input line and never
//     stored
//   - Parse / ParseCreate: the two line formats accepted at the boundary
//
// Parsing is deliberately lenient about timestamps: a field that fails
// integer parsing falls back to the current time instead of failing the
// whole line. Structural problems (blank line, too few fields, malformed
// create line) are hard parse errors.
package event
