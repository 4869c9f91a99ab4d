package shipment

// ShippingUpdate is an immutable record of one status transition. It is
// appended to a shipment's history and never mutated after creation.
//
// The previous status is empty for the entry produced by shipment creation;
// status-preserving entries (note additions, drift annotations) carry the
// same value in both fields.
type ShippingUpdate struct {
	previousStatus string
	newStatus      string
	timestamp      int64
}

// NewShippingUpdate creates an update record for a transition from
// previousStatus to newStatus at the given Unix-millisecond timestamp.
func NewShippingUpdate(previousStatus, newStatus string, timestamp int64) ShippingUpdate {
	return ShippingUpdate{
		previousStatus: previousStatus,
		newStatus:      newStatus,
		timestamp:      timestamp,
	}
}

// PreviousStatus returns the shipment status before the transition.
func (u ShippingUpdate) PreviousStatus() string {
	return u.previousStatus
}

// NewStatus returns the shipment status after the transition.
func (u ShippingUpdate) NewStatus() string {
	return u.newStatus
}

// Timestamp returns the Unix-millisecond timestamp of the transition.
func (u ShippingUpdate) Timestamp() int64 {
	return u.timestamp
}
