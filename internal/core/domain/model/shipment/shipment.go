package shipment

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment factory method.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// StatusCreated is the status every shipment starts its life in.
const StatusCreated = "created"

// Shipment is the aggregate root representing one tracked shipment.
//
// Shipment maintains these invariants:
//   - The id and category are immutable after construction
//   - The history is never empty once the shipment exists: construction
//     records the creating transition
//   - The status always equals the newStatus of the last history entry
//   - Notes and history are append-only
//   - The abnormality annotation is sticky and never cleared
//
// A Shipment is owned exclusively by the registry once created. All
// mutation happens through registry-mediated event application; any caller
// that needs to display shipment state receives a Clone, never the live
// instance.
type Shipment struct {
	// id uniquely identifies the shipment and never changes
	id string

	// category is the delivery-speed classification, fixed at creation
	category Category

	// status is the current lifecycle state, always equal to the
	// newStatus of the most recent history entry
	status string

	// creationTimestamp is the Unix-millisecond creation time
	creationTimestamp int64

	// expectedDeliveryTimestamp is revised only when an event carries a
	// fresh delivery estimate
	expectedDeliveryTimestamp int64

	// currentLocation is the most recently reported location
	currentLocation string

	// notes is the append-only ordered sequence of free-text notes
	notes []string

	// history is the append-only ordered sequence of status transitions
	history []ShippingUpdate

	// isAbnormal and abnormalityReason record delivery-policy violations;
	// once set they are never cleared
	isAbnormal        bool
	abnormalityReason string

	guard guard.ConstructorGuard
}

// NewShipment creates a Shipment with validation. This is the only way to
// create a valid Shipment.
//
// The shipment starts in the "created" status and its history opens with
// the creating transition, so the history-never-empty invariant holds from
// the first moment of the aggregate's life.
func NewShipment(id string, category Category, creationTimestamp, expectedDeliveryTimestamp int64) (*Shipment, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	return &Shipment{
		id:                        id,
		category:                  category,
		status:                    StatusCreated,
		creationTimestamp:         creationTimestamp,
		expectedDeliveryTimestamp: expectedDeliveryTimestamp,
		history: []ShippingUpdate{
			NewShippingUpdate("", StatusCreated, creationTimestamp),
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Shipment instance was properly constructed through
// NewShipment.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() string {
	return s.id
}

// Category returns the delivery-speed classification.
func (s *Shipment) Category() Category {
	return s.category
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() string {
	return s.status
}

// CreationTimestamp returns the Unix-millisecond creation time.
func (s *Shipment) CreationTimestamp() int64 {
	return s.creationTimestamp
}

// ExpectedDeliveryTimestamp returns the current delivery estimate.
func (s *Shipment) ExpectedDeliveryTimestamp() int64 {
	return s.expectedDeliveryTimestamp
}

// CurrentLocation returns the most recently reported location, or the
// empty string when no location event has been applied.
func (s *Shipment) CurrentLocation() string {
	return s.currentLocation
}

// Notes returns a copy of the shipment's notes.
func (s *Shipment) Notes() []string {
	notes := make([]string, len(s.notes))
	copy(notes, s.notes)
	return notes
}

// History returns a copy of the shipment's transition history.
func (s *Shipment) History() []ShippingUpdate {
	history := make([]ShippingUpdate, len(s.history))
	copy(history, s.history)
	return history
}

// LastUpdate returns the most recent history entry.
func (s *Shipment) LastUpdate() ShippingUpdate {
	return s.history[len(s.history)-1]
}

// IsAbnormal reports whether a delivery-policy rule has ever been violated.
func (s *Shipment) IsAbnormal() bool {
	return s.isAbnormal
}

// AbnormalityReason returns the human-readable reason for the most recent
// policy violation, or the empty string when the shipment is normal.
func (s *Shipment) AbnormalityReason() string {
	return s.abnormalityReason
}

// RecordUpdate appends a transition to the history and moves the status to
// the transition's new status, preserving the status-equals-last-entry
// invariant.
func (s *Shipment) RecordUpdate(update ShippingUpdate) {
	s.history = append(s.history, update)
	s.status = update.NewStatus()
}

// MoveTo sets the current location and appends the auto-generated location
// note.
func (s *Shipment) MoveTo(location string) {
	s.currentLocation = location
	s.AddNote(fmt.Sprintf("Shipment location updated to %s", location))
}

// AddNote appends a note verbatim.
func (s *Shipment) AddNote(note string) {
	s.notes = append(s.notes, note)
}

// MarkAbnormal records a delivery-policy violation. The annotation is
// sticky: a later compliant estimate does not clear it, and a second
// violation replaces the reason.
func (s *Shipment) MarkAbnormal(reason string) {
	s.isAbnormal = true
	s.abnormalityReason = reason
}

// ReviseDeliveryEstimate replaces the expected delivery timestamp. Only the
// drift re-check path calls this.
func (s *Shipment) ReviseDeliveryEstimate(timestamp int64) {
	s.expectedDeliveryTimestamp = timestamp
}

// Clone returns a deep copy suitable for handing outside the registry.
// Mutating the clone has no effect on the registry's authoritative copy.
func (s *Shipment) Clone() *Shipment {
	clone := *s
	clone.notes = s.Notes()
	clone.history = s.History()
	return &clone
}
