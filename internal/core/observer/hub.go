// Package observer implements the subscription hub that fans committed
// shipping updates out to trackers. Subscriptions live in one central
// table rather than on the shipment aggregates, which keeps Shipment a
// plain data aggregate and makes the ordering and synchronous-delivery
// guarantees testable in one place.
package observer

import (
	"sync"

	"github.com/google/uuid"

	"shipping/internal/core/domain/model/shipment"
)

// Subscriber receives shipping updates for the shipments it tracks.
// HandleID identifies the subscription handle: subscribing the same handle
// to the same shipment twice has the effect of one subscription.
type Subscriber interface {
	HandleID() string
	HandleShippingUpdate(shipmentID string, update shipment.ShippingUpdate)
}

// Hub is the per-shipment subscription table. Subscriptions have explicit
// lifetime: created by Subscribe, destroyed by Unsubscribe or
// UnsubscribeAll, never silently expired.
//
// Notify delivers synchronously on the caller's goroutine. The registry
// calls it inside the per-shipment critical section, so a subscriber
// callback must not invoke registry operations for the same shipment id.
type Hub struct {
	mu            sync.RWMutex
	subscriptions map[string][]Subscriber
}

// NewHub creates an empty subscription hub.
func NewHub() *Hub {
	return &Hub{
		subscriptions: make(map[string][]Subscriber),
	}
}

// Subscribe registers a subscriber for a shipment id. Idempotent: a handle
// already subscribed to the id is not added again, and its original
// position in the delivery order is preserved.
func (h *Hub) Subscribe(shipmentID string, subscriber Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, existing := range h.subscriptions[shipmentID] {
		if existing.HandleID() == subscriber.HandleID() {
			return
		}
	}
	h.subscriptions[shipmentID] = append(h.subscriptions[shipmentID], subscriber)
}

// Unsubscribe removes the subscription of the given handle for a shipment
// id. Removing the last subscription does not affect the shipment itself.
func (h *Hub) Unsubscribe(shipmentID, handleID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subscribers := h.subscriptions[shipmentID]
	for i, existing := range subscribers {
		if existing.HandleID() == handleID {
			h.subscriptions[shipmentID] = append(subscribers[:i:i], subscribers[i+1:]...)
			break
		}
	}
	if len(h.subscriptions[shipmentID]) == 0 {
		delete(h.subscriptions, shipmentID)
	}
}

// UnsubscribeAll removes every subscription for a shipment id.
func (h *Hub) UnsubscribeAll(shipmentID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subscriptions, shipmentID)
}

// Notify delivers the update to every current subscriber of the shipment,
// in subscription order, synchronously. No queueing, no dropped
// notifications.
func (h *Hub) Notify(shipmentID string, update shipment.ShippingUpdate) {
	h.mu.RLock()
	subscribers := make([]Subscriber, len(h.subscriptions[shipmentID]))
	copy(subscribers, h.subscriptions[shipmentID])
	h.mu.RUnlock()

	for _, subscriber := range subscribers {
		subscriber.HandleShippingUpdate(shipmentID, update)
	}
}

// FuncSubscriber adapts a plain function into a Subscriber. Each instance
// gets a generated handle id, so the same instance subscribes idempotently
// while two instances wrapping the same function count as distinct handles.
type FuncSubscriber struct {
	handleID string
	fn       func(shipmentID string, update shipment.ShippingUpdate)
}

// NewFuncSubscriber wraps fn in a subscriber with a fresh UUID handle.
func NewFuncSubscriber(fn func(shipmentID string, update shipment.ShippingUpdate)) *FuncSubscriber {
	return &FuncSubscriber{
		handleID: uuid.NewString(),
		fn:       fn,
	}
}

// HandleID returns the generated handle identity.
func (s *FuncSubscriber) HandleID() string {
	return s.handleID
}

// HandleShippingUpdate invokes the wrapped function.
func (s *FuncSubscriber) HandleShippingUpdate(shipmentID string, update shipment.ShippingUpdate) {
	s.fn(shipmentID, update)
}
