// Package fileexchange provides the polling file-exchange transport: a
// request file written into the exchange directory is picked up within
// one poll interval, processed through the same command handlers as the
// HTTP transport, and answered with a response file.
package fileexchange

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"shipping/internal/adapters/wire"
	"shipping/internal/core/application/usecases/commands"
)

// Protocol file names inside the exchange directory.
const (
	RequestFileName  = "request.txt"
	ResponseFileName = "response.txt"
)

// Request prefixes selecting the operation.
const (
	createPrefix = "CREATE:"
	updatePrefix = "UPDATE:"
)

// Exchange implements the file-exchange protocol over one directory.
// Poll is driven externally at a fixed interval; the exchange itself is
// idle between polls.
type Exchange struct {
	requestPath  string
	responsePath string

	createShipmentHandler commands.CreateShipmentCommandHandler
	updateShipmentHandler commands.UpdateShipmentCommandHandler

	logger *slog.Logger
}

// NewExchange creates an exchange over the given directory.
func NewExchange(
	dir string,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	logger *slog.Logger,
) *Exchange {
	return &Exchange{
		requestPath:           filepath.Join(dir, RequestFileName),
		responsePath:          filepath.Join(dir, ResponseFileName),
		createShipmentHandler: createShipmentHandler,
		updateShipmentHandler: updateShipmentHandler,
		logger:                logger.With("component", "file_exchange"),
	}
}

// Poll performs one protocol round: read the request file if present,
// process its line, write the response file, delete the request file.
// A missing request file means no work and is not an error.
func (x *Exchange) Poll(ctx context.Context) error {
	content, err := os.ReadFile(x.requestPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	response := x.Process(ctx, string(content))
	if err := os.WriteFile(x.responsePath, []byte(response), 0o644); err != nil {
		return err
	}

	if err := os.Remove(x.requestPath); err != nil {
		return err
	}

	x.logger.InfoContext(ctx, "Processed file-exchange request")
	return nil
}

// Process handles one request body ("CREATE:<line>" or "UPDATE:<line>")
// and returns the JSON response body, the same envelope the HTTP
// transport answers with.
func (x *Exchange) Process(ctx context.Context, content string) string {
	trimmed := strings.TrimSpace(content)

	switch {
	case strings.HasPrefix(trimmed, createPrefix):
		return x.respond(x.createShipment(ctx, strings.TrimPrefix(trimmed, createPrefix)))
	case strings.HasPrefix(trimmed, updatePrefix):
		return x.respond(x.updateShipment(ctx, strings.TrimPrefix(trimmed, updatePrefix)))
	default:
		return x.respond(wire.TrackingResponse{
			Success: false,
			Message: "request must start with CREATE: or UPDATE:",
		})
	}
}

func (x *Exchange) createShipment(ctx context.Context, rawLine string) wire.TrackingResponse {
	cmd, err := commands.NewCreateShipmentCommand(rawLine)
	if err != nil {
		return wire.FromError(err)
	}

	result, err := x.createShipmentHandler.Handle(ctx, cmd)
	if err != nil {
		return wire.FromError(err)
	}
	return wire.FromResult(result)
}

func (x *Exchange) updateShipment(ctx context.Context, rawLine string) wire.TrackingResponse {
	cmd, err := commands.NewUpdateShipmentCommand(rawLine)
	if err != nil {
		return wire.FromError(err)
	}

	result, err := x.updateShipmentHandler.Handle(ctx, cmd)
	if err != nil {
		return wire.FromError(err)
	}
	return wire.FromResult(result)
}

func (x *Exchange) respond(response wire.TrackingResponse) string {
	body, err := json.Marshal(response)
	if err != nil {
		// The envelope only holds plain strings and numbers; marshaling
		// cannot realistically fail, but never answer with nothing.
		return `{"success":false,"message":"failed to encode response"}`
	}
	return string(body)
}
