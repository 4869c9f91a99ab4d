// Package http provides the loopback HTTP transport for the shipment
// tracking core: three envelope routes plus health and metrics. The
// server holds command and query handlers and never touches the registry
// directly.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shipping/internal/adapters/wire"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"
)

// Server coordinates between the HTTP routes and the application use
// cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateShipmentHandler commands.UpdateShipmentCommandHandler

	// Query handlers
	getShipmentHandler queries.GetShipmentQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler: createShipmentHandler,
		updateShipmentHandler: updateShipmentHandler,
		getShipmentHandler:    getShipmentHandler,
	}
}

// RegisterRoutes mounts the tracking routes plus health and metrics on
// the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/shipments/create", s.CreateShipment)
	e.POST("/shipments/update", s.UpdateShipment)
	e.GET("/shipments/:id", s.GetShipment)
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// CreateShipment handles POST /shipments/create - registers a new shipment
// from the raw creation line in the request envelope.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request wire.Request
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, wire.TrackingResponse{
			Success: false,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(request.Data)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, wire.FromError(err))
	}

	result, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(statusForError(err), wire.FromError(err))
	}

	return ctx.JSON(http.StatusCreated, wire.FromResult(result))
}

// UpdateShipment handles POST /shipments/update - applies one tracking
// event from the raw event line in the request envelope.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	var request wire.Request
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, wire.TrackingResponse{
			Success: false,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewUpdateShipmentCommand(request.Data)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, wire.FromError(err))
	}

	result, err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(statusForError(err), wire.FromError(err))
	}

	return ctx.JSON(http.StatusOK, wire.FromResult(result))
}

// GetShipment handles GET /shipments/:id - returns a read-only snapshot.
func (s *Server) GetShipment(ctx echo.Context) error {
	query, err := queries.NewGetShipmentQuery(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, wire.FromError(err))
	}

	snapshot, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(statusForError(err), wire.FromError(err))
	}

	return ctx.JSON(http.StatusOK, wire.TrackingResponse{
		Success:      true,
		Message:      "shipment found",
		ShipmentData: wire.FromShipment(snapshot),
		Abnormality:  snapshot.AbnormalityReason(),
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// statusForError maps the core's typed failures onto HTTP status codes.
// Everything unmapped is a malformed line, reported as a bad request.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnknownEventType):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
