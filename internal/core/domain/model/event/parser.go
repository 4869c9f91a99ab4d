package event

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"shipping/internal/core/domain/model/shipment"
)

// Parse errors. Structural problems fail the line; timestamp problems do
// not (see parseTimestamp).
var (
	// ErrEmptyLine is returned for blank input.
	ErrEmptyLine = errors.New("input line is empty")

	// ErrTooFewFields is returned when a line lacks the mandatory event
	// type and shipment id fields.
	ErrTooFewFields = errors.New("event line requires at least an event type and a shipment id")

	// ErrInvalidCreate is returned when a create line lacks one of its
	// four fields or names an unknown category.
	ErrInvalidCreate = errors.New("create line requires type, shipment id, category and timestamp")
)

// CreateRequest is the parsed form of the 4-field creation line
// "created,<id>,<category>,<timestamp>". Transient, like ShipmentEvent.
type CreateRequest struct {
	ShipmentID string
	Category   shipment.Category
	Timestamp  int64
}

// Parse turns a raw comma-separated line into a normalized ShipmentEvent.
//
// The line is trimmed and split on commas, each field trimmed again. At
// least two fields (type, shipment id) are required. The third field is the
// event timestamp; for Shipped and Delayed lines a non-blank fourth field
// is a revised delivery estimate that becomes both the event's effective
// timestamp and drift-check input. For Location and NoteAdded lines the
// fourth field is the payload.
func Parse(line string) (ShipmentEvent, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ShipmentEvent{}, ErrEmptyLine
	}

	fields := splitFields(trimmed)
	if len(fields) < 2 {
		return ShipmentEvent{}, ErrTooFewFields
	}

	evt := ShipmentEvent{
		Type:       TypeFromString(fields[0]),
		ShipmentID: fields[1],
	}

	switch evt.Type {
	case TypeShipped, TypeDelayed:
		if estimate := fieldAt(fields, 3); estimate != "" {
			ts := parseTimestamp(estimate)
			evt.Timestamp = ts
			evt.EstimatedDelivery = ts
			evt.HasEstimate = true
		} else {
			evt.Timestamp = parseTimestamp(fieldAt(fields, 2))
		}
	case TypeLocation, TypeNoteAdded:
		evt.Timestamp = parseTimestamp(fieldAt(fields, 2))
		evt.Payload = fieldAt(fields, 3)
	default:
		evt.Timestamp = parseTimestamp(fieldAt(fields, 2))
	}

	return evt, nil
}

// ParseCreate parses the 4-field creation form "created,<id>,<category>,
// <timestamp>". It fails with ErrInvalidCreate when fewer than four fields
// are present or the category is unrecognized.
func ParseCreate(line string) (CreateRequest, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return CreateRequest{}, ErrEmptyLine
	}

	fields := splitFields(trimmed)
	if len(fields) < 4 {
		return CreateRequest{}, ErrInvalidCreate
	}

	category, err := shipment.CategoryFromString(fields[2])
	if err != nil {
		return CreateRequest{}, errors.Join(ErrInvalidCreate, err)
	}

	return CreateRequest{
		ShipmentID: fields[1],
		Category:   category,
		Timestamp:  parseTimestamp(fields[3]),
	}, nil
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}

func fieldAt(fields []string, index int) string {
	if index < len(fields) {
		return fields[index]
	}
	return ""
}

// parseTimestamp decodes a Unix-millisecond timestamp field. A field that
// fails integer parsing falls back to the current time rather than failing
// the line. Deliberate leniency: malformed timestamps degrade to "now"
// instead of dropping the whole event.
func parseTimestamp(value string) int64 {
	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Now().UnixMilli()
	}
	return ts
}
