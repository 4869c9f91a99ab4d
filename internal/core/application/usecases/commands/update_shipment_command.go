package commands

import (
	"errors"
	"strings"

	"shipping/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a request to apply one tracking event
// to an existing shipment, carried as the raw line
// "<type>,<id>,<timestamp>[,<payload>]".
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	rawLine string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command from a raw event line.
// Returns an error when the line is blank.
func NewUpdateShipmentCommand(rawLine string) (UpdateShipmentCommand, error) {
	if strings.TrimSpace(rawLine) == "" {
		return UpdateShipmentCommand{}, ErrRawLineIsRequired
	}

	return UpdateShipmentCommand{
		rawLine: rawLine,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// RawLine returns the raw event line.
func (c UpdateShipmentCommand) RawLine() string {
	return c.rawLine
}
