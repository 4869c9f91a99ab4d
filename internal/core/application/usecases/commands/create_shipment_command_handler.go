package commands

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"shipping/internal/core/domain/model/event"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/metrics"
)

// defaultDeliveryWindow is the expected-delivery window assigned at
// creation. The create line carries no explicit estimate, so every
// shipment starts with this window; a later Shipped or Delayed event may
// revise it. Seven days keeps a default Bulk window compliant while a
// default Express or Overnight window violates its contract immediately.
const defaultDeliveryWindow = 7 * 24 * time.Hour

// CreateShipmentCommandHandler handles shipment registration. It parses
// the raw creation line and admits the shipment into the registry, which
// runs the creation-time delivery window check.
type CreateShipmentCommandHandler struct {
	registry ports.ShipmentRegistry
}

// NewCreateShipmentCommandHandler creates a handler bound to the given
// registry.
func NewCreateShipmentCommandHandler(registry ports.ShipmentRegistry) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		registry: registry,
	}
}

// Handle processes the creation command. Parse failures and duplicate ids
// are returned as typed errors; the line is skipped and the process
// continues, nothing here is fatal.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (TrackingResult, error) {
	if err := cmd.Validate(); err != nil {
		return TrackingResult{}, err
	}

	metrics.ShipmentEventsTotal.Inc()
	timer := prometheus.NewTimer(metrics.ShipmentEventProcessingDuration)
	defer timer.ObserveDuration()

	request, err := event.ParseCreate(cmd.RawLine())
	if err != nil {
		metrics.ShipmentEventsInvalidTotal.Inc()
		return TrackingResult{}, err
	}

	expectedDelivery := request.Timestamp + defaultDeliveryWindow.Milliseconds()
	snapshot, err := h.registry.Create(ctx, request.ShipmentID, request.Category, request.Timestamp, expectedDelivery)
	if err != nil {
		metrics.ShipmentEventsRejectedTotal.Inc()
		return TrackingResult{}, err
	}

	return TrackingResult{
		Success:     true,
		Message:     "shipment created",
		Shipment:    snapshot,
		Abnormality: snapshot.AbnormalityReason(),
	}, nil
}
