package services

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/event"
	"shipping/internal/core/domain/model/shipment"
)

// ErrUnknownEventType is returned when an event type outside the eight
// canonical types reaches the dispatcher. Passthrough tokens produced by
// the parser for unrecognized input end up here.
var ErrUnknownEventType = errors.New("unknown event type")

// Statuses produced by the update dispatcher. The Location event reports
// movement, so it moves the shipment to "In Transit" rather than echoing
// the event name.
const (
	StatusShipped   = "Shipped"
	StatusInTransit = "In Transit"
	StatusDelivered = "Delivered"
	StatusDelayed   = "Delayed"
	StatusLost      = "Lost"
	StatusCancelled = "Cancelled"
)

// transition computes the status change for one event type. Transitions
// are pure: they read the current status and produce an update record
// without touching the shipment.
type transition func(currentStatus string, timestamp int64) shipment.ShippingUpdate

// toStatus builds the common transition shape: previous status is whatever
// the shipment currently holds, new status is fixed per event type.
func toStatus(newStatus string) transition {
	return func(currentStatus string, timestamp int64) shipment.ShippingUpdate {
		return shipment.NewShippingUpdate(currentStatus, newStatus, timestamp)
	}
}

// transitions is the per-event-type strategy table. Behavior is data, not
// subclassing: each entry is a pure function keyed by canonical type.
var transitions = map[event.Type]transition{
	// Create ignores the current status: its previous status is always
	// empty, even when replayed onto an existing shipment.
	event.TypeCreate: func(_ string, timestamp int64) shipment.ShippingUpdate {
		return shipment.NewShippingUpdate("", "Created", timestamp)
	},
	event.TypeShipped:   toStatus(StatusShipped),
	event.TypeLocation:  toStatus(StatusInTransit),
	event.TypeDelivered: toStatus(StatusDelivered),
	event.TypeDelayed:   toStatus(StatusDelayed),
	event.TypeLost:      toStatus(StatusLost),
	event.TypeCancelled: toStatus(StatusCancelled),
	// NoteAdded preserves the current status.
	event.TypeNoteAdded: func(currentStatus string, timestamp int64) shipment.ShippingUpdate {
		return shipment.NewShippingUpdate(currentStatus, currentStatus, timestamp)
	},
}

// DispatchUpdate maps an event type to its state transition and computes
// the resulting update for a shipment currently in currentStatus.
//
// The dispatcher is pure and side-effect-free; it never mutates the
// shipment. The registry applies the returned update. Event types outside
// the canonical eight fail with an error unwrapping to ErrUnknownEventType.
func DispatchUpdate(eventType event.Type, currentStatus string, timestamp int64) (shipment.ShippingUpdate, error) {
	apply, ok := transitions[eventType]
	if !ok {
		return shipment.ShippingUpdate{}, fmt.Errorf("%w: %q", ErrUnknownEventType, eventType)
	}
	return apply(currentStatus, timestamp), nil
}
