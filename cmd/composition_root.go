package cmd

import (
	"log/slog"

	"shipping/internal/adapters/in/fileexchange"
	"shipping/internal/adapters/out/memory/shipmentregistry"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/observer"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"
)

// CompositionRoot wires the core explicitly: one observer hub, one
// registry per process, both owned here and handed by reference to
// whichever transport adapters need them. No hidden global state.
type CompositionRoot struct {
	hub      *observer.Hub
	registry ports.ShipmentRegistry
}

// NewCompositionRoot constructs the core object graph.
func NewCompositionRoot(_ Config) CompositionRoot {
	hub := observer.NewHub()
	return CompositionRoot{
		hub:      hub,
		registry: shipmentregistry.NewRegistry(hub),
	}
}

// Hub returns the process-wide subscription hub.
func (c *CompositionRoot) Hub() *observer.Hub {
	return c.hub
}

// Registry returns the process-wide shipment registry.
func (c *CompositionRoot) Registry() ports.ShipmentRegistry {
	return c.registry
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	return commands.NewUpdateShipmentCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.registry)
}

// CreateJobManager builds the background job set for the given exchange
// directory.
func (c *CompositionRoot) CreateJobManager(exchangeDir string, logger *slog.Logger) *jobs.JobManager {
	exchange := fileexchange.NewExchange(
		exchangeDir,
		c.CreateCreateShipmentCommandHandler(),
		c.CreateUpdateShipmentCommandHandler(),
		logger,
	)
	return jobs.NewJobManager(exchange, logger)
}
