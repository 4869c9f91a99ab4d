// Package shipmentregistry provides the in-memory implementation of the
// shipment registry port. It is the single authoritative copy of every
// shipment in the process; there is no durable storage behind it.
package shipmentregistry

import (
	"context"
	"sync"

	"shipping/internal/core/domain/model/event"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// Registry implements ports.ShipmentRegistry with a map of per-shipment
// entries. Concurrency discipline:
//
//   - The registry-level RWMutex guards only the id map. It is held for
//     single-map operations, never across event processing.
//   - Each entry carries its own RWMutex, so mutations on the same
//     shipment id are serialized while distinct ids proceed in parallel,
//     and a Find on one id never blocks an Apply on another.
//   - Subscriber notification runs inside the per-id critical section, so
//     delivery order always matches commit order. The accepted trade-off:
//     a slow subscriber delays the caller that produced the update, and a
//     subscriber must not call back into the registry for the same id.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]*entry
	notifier ports.UpdateNotifier
}

type entry struct {
	mu       sync.RWMutex
	shipment *shipment.Shipment
}

// NewRegistry creates an empty registry that reports committed updates to
// the given notifier.
func NewRegistry(notifier ports.UpdateNotifier) *Registry {
	return &Registry{
		entries:  make(map[string]*entry),
		notifier: notifier,
	}
}

var _ ports.ShipmentRegistry = (*Registry)(nil)

// Create admits a new shipment id. The shipment is constructed in the
// "created" status, the category's creation-time delivery window check
// runs (marking the shipment abnormal on violation), and the shipment is
// stored. A duplicate id fails with ObjectAlreadyExistsError and leaves
// the stored shipment untouched.
func (r *Registry) Create(_ context.Context, id string, category shipment.Category, creationTimestamp, expectedDeliveryTimestamp int64) (*shipment.Shipment, error) {
	s, err := shipment.NewShipment(id, category, creationTimestamp, expectedDeliveryTimestamp)
	if err != nil {
		return nil, err
	}

	if result := services.ValidateDeliveryWindow(category, creationTimestamp, expectedDeliveryTimestamp); !result.IsValid {
		s.MarkAbnormal(result.Message)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return nil, errs.NewObjectAlreadyExistsError("shipmentId", id)
	}
	r.entries[id] = &entry{shipment: s}

	return s.Clone(), nil
}

// Apply processes one normalized event against its shipment as a single
// logically atomic step: status transition, payload effects, history
// append, drift re-check, and subscriber notification all happen under the
// shipment's lock. Create-typed events never create implicitly; an unknown
// id fails with ObjectNotFoundError.
func (r *Registry) Apply(_ context.Context, evt event.ShipmentEvent) (shipment.ShippingUpdate, *shipment.Shipment, error) {
	r.mu.RLock()
	e, exists := r.entries[evt.ShipmentID]
	r.mu.RUnlock()
	if !exists {
		return shipment.ShippingUpdate{}, nil, errs.NewObjectNotFoundError("shipmentId", evt.ShipmentID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.shipment
	update, err := services.DispatchUpdate(evt.Type, s.Status(), evt.Timestamp)
	if err != nil {
		return shipment.ShippingUpdate{}, nil, err
	}

	switch evt.Type {
	case event.TypeLocation:
		s.MoveTo(evt.Payload)
	case event.TypeNoteAdded:
		s.AddNote(evt.Payload)
	}

	s.RecordUpdate(update)

	if carriesEstimate(evt) {
		drift := services.CheckDeliveryDrift(s.Category(), s.CreationTimestamp(), evt.EstimatedDelivery)
		s.ReviseDeliveryEstimate(evt.EstimatedDelivery)
		if drift.Exceeded {
			s.AddNote(drift.Note)
			s.MarkAbnormal(drift.Reason)
			s.RecordUpdate(shipment.NewShippingUpdate(s.Status(), s.Status(), evt.Timestamp))
		}
	}

	snapshot := s.Clone()
	r.notifier.Notify(s.ID(), update)

	return update, snapshot, nil
}

// Find returns a snapshot of the shipment. Reads on an id are mutually
// exclusive with writes on the same id, so the snapshot never exposes a
// partially applied state.
func (r *Registry) Find(_ context.Context, id string) (*shipment.Shipment, error) {
	r.mu.RLock()
	e, exists := r.entries[id]
	r.mu.RUnlock()
	if !exists {
		return nil, errs.NewObjectNotFoundError("shipmentId", id)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.shipment.Clone(), nil
}

// carriesEstimate reports whether the event supplies a revised delivery
// estimate on one of the event types the drift re-check applies to.
func carriesEstimate(evt event.ShipmentEvent) bool {
	if !evt.HasEstimate {
		return false
	}
	switch evt.Type {
	case event.TypeCreate, event.TypeShipped, event.TypeDelayed:
		return true
	default:
		return false
	}
}
