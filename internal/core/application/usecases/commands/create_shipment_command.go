package commands

import (
	"errors"
	"strings"

	"shipping/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrRawLineIsRequired = errors.New("raw line is required")
)

// CreateShipmentCommand represents a request to register a new shipment
// from a raw creation line of the form "created,<id>,<category>,<timestamp>".
// The line is carried verbatim; parsing happens in the handler so that
// parse failures surface as typed results rather than transport errors.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	rawLine string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command from a raw creation line.
// Returns an error when the line is blank.
func NewCreateShipmentCommand(rawLine string) (CreateShipmentCommand, error) {
	if strings.TrimSpace(rawLine) == "" {
		return CreateShipmentCommand{}, ErrRawLineIsRequired
	}

	return CreateShipmentCommand{
		rawLine: rawLine,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// RawLine returns the raw creation line.
func (c CreateShipmentCommand) RawLine() string {
	return c.rawLine
}
