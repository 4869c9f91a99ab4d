package commands

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"shipping/internal/core/domain/model/event"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/metrics"
)

// UpdateShipmentCommandHandler handles event application. It parses the
// raw event line and hands the normalized event to the registry, which
// performs the transition, payload effects, drift re-check and subscriber
// notification as one atomic step.
type UpdateShipmentCommandHandler struct {
	registry ports.ShipmentRegistry
}

// NewUpdateShipmentCommandHandler creates a handler bound to the given
// registry.
func NewUpdateShipmentCommandHandler(registry ports.ShipmentRegistry) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		registry: registry,
	}
}

// Handle processes the update command. Parse failures, unknown ids and
// unknown event types are returned as typed errors; an update never
// creates a shipment as a side effect.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) (TrackingResult, error) {
	if err := cmd.Validate(); err != nil {
		return TrackingResult{}, err
	}

	metrics.ShipmentEventsTotal.Inc()
	timer := prometheus.NewTimer(metrics.ShipmentEventProcessingDuration)
	defer timer.ObserveDuration()

	evt, err := event.Parse(cmd.RawLine())
	if err != nil {
		metrics.ShipmentEventsInvalidTotal.Inc()
		return TrackingResult{}, err
	}

	_, snapshot, err := h.registry.Apply(ctx, evt)
	if err != nil {
		metrics.ShipmentEventsRejectedTotal.Inc()
		return TrackingResult{}, err
	}

	return TrackingResult{
		Success:     true,
		Message:     "shipment updated",
		Shipment:    snapshot,
		Abnormality: snapshot.AbnormalityReason(),
	}, nil
}
