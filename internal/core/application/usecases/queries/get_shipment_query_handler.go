package queries

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// GetShipmentQueryHandler reads shipment state from the registry.
type GetShipmentQueryHandler struct {
	registry ports.ShipmentRegistry
}

// NewGetShipmentQueryHandler creates a handler bound to the given
// registry.
func NewGetShipmentQueryHandler(registry ports.ShipmentRegistry) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{
		registry: registry,
	}
}

// Handle returns a read-only snapshot of the requested shipment, or an
// error unwrapping to errs.ErrObjectNotFound.
func (h *GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (*shipment.Shipment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.registry.Find(ctx, query.ShipmentID())
}
