package ports

import (
	"context"

	"shipping/internal/core/domain/model/event"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRegistry is the single authoritative store of all shipments and
// their sole mutation surface. Implementations must serialize mutating
// operations per shipment id while letting operations on distinct ids
// proceed concurrently.
//
// Every returned *shipment.Shipment is a snapshot: mutating it has no
// effect on the registry's copy.
type ShipmentRegistry interface {
	// Create admits a new shipment id. It constructs the shipment with the
	// initial "created" status, runs the category's creation-time delivery
	// window check (annotating the shipment abnormal on violation), and
	// stores it. Fails with an error unwrapping to errs.ErrObjectAlreadyExists
	// when the id is already present. Creation is a distinct operation:
	// Apply never creates implicitly.
	Create(ctx context.Context, id string, category shipment.Category, creationTimestamp, expectedDeliveryTimestamp int64) (*shipment.Shipment, error)

	// Apply looks up the event's shipment, computes the status transition
	// for the event type, applies payload effects, appends the resulting
	// update to history, runs the drift re-check when the event carries a
	// revised delivery estimate, and notifies subscribers, all as one
	// logically atomic step for the shipment id. Fails with an error
	// unwrapping to errs.ErrObjectNotFound for unknown ids and to
	// services.ErrUnknownEventType for non-canonical event types.
	Apply(ctx context.Context, evt event.ShipmentEvent) (shipment.ShippingUpdate, *shipment.Shipment, error)

	// Find returns a snapshot of the shipment, or an error unwrapping to
	// errs.ErrObjectNotFound. The snapshot observes either the state before
	// or after any concurrent Apply, never a partially applied state.
	Find(ctx context.Context, id string) (*shipment.Shipment, error)
}

// UpdateNotifier delivers a committed shipping update to the subscribers
// of a shipment. The registry invokes it synchronously inside the call
// that produced the mutation.
type UpdateNotifier interface {
	Notify(shipmentID string, update shipment.ShippingUpdate)
}
