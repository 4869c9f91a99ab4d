package event

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Type is the canonical event-type token. The eight canonical values below
// are the only ones the update dispatcher accepts; anything else is carried
// through as a capitalized passthrough token and rejected at dispatch.
type Type string

const (
	TypeCreate    Type = "Create"
	TypeShipped   Type = "Shipped"
	TypeLocation  Type = "Location"
	TypeDelivered Type = "Delivered"
	TypeDelayed   Type = "Delayed"
	TypeLost      Type = "Lost"
	TypeCancelled Type = "Cancelled"
	TypeNoteAdded Type = "NoteAdded"
)

// TypeFromString canonicalizes a raw event-type token, case-insensitively.
// Both the "canceled" and "cancelled" spellings map to TypeCancelled.
// Unrecognized tokens are returned capitalized so the dispatcher can reject
// them with the offending token intact.
func TypeFromString(value string) Type {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "created":
		return TypeCreate
	case "shipped":
		return TypeShipped
	case "location":
		return TypeLocation
	case "delivered":
		return TypeDelivered
	case "delayed":
		return TypeDelayed
	case "lost":
		return TypeLost
	case "canceled", "cancelled":
		return TypeCancelled
	case "noteadded":
		return TypeNoteAdded
	default:
		return Type(capitalize(strings.ToLower(strings.TrimSpace(value))))
	}
}

// IsCanonical reports whether the type is one of the eight canonical
// event types.
func (t Type) IsCanonical() bool {
	switch t {
	case TypeCreate, TypeShipped, TypeLocation, TypeDelivered,
		TypeDelayed, TypeLost, TypeCancelled, TypeNoteAdded:
		return true
	default:
		return false
	}
}

// String returns the canonical token.
func (t Type) String() string {
	return string(t)
}

// ShipmentEvent is one normalized instruction derived from a raw input
// line. Events are transient: constructed per line, applied once, never
// stored.
type ShipmentEvent struct {
	// Type is the canonicalized event type.
	Type Type

	// ShipmentID identifies the shipment the event addresses.
	ShipmentID string

	// Timestamp is the event's effective Unix-millisecond timestamp.
	Timestamp int64

	// Payload carries the type-specific extra field: the new location for
	// Location events, the note text for NoteAdded events.
	Payload string

	// EstimatedDelivery holds a revised delivery estimate when HasEstimate
	// is true. Shipped and Delayed lines supply it through their optional
	// fourth field; it doubles as the event's effective timestamp and as
	// drift-check input.
	EstimatedDelivery int64

	// HasEstimate reports whether EstimatedDelivery was supplied.
	HasEstimate bool
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
