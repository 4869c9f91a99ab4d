// Package queries contains the read-only operations of the shipment
// tracking core. Queries never mutate state and always return snapshots.
package queries

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
	ErrShipmentIDIsRequired = errors.New("shipment id is required")
)

// GetShipmentQuery represents a request to read one shipment's current
// state by id.
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID string

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for the given shipment id.
func NewGetShipmentQuery(shipmentID string) (GetShipmentQuery, error) {
	if shipmentID == "" {
		return GetShipmentQuery{}, ErrShipmentIDIsRequired
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment id.
func (q GetShipmentQuery) ShipmentID() string {
	return q.shipmentID
}
