// Package wire holds the response envelope shared by every transport
// adapter. Both carriers (HTTP and file exchange) answer with the same
// JSON body, so the mapping from core results lives here once.
package wire

import (
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/shipment"
)

// Request is the inbound envelope carrying one raw event line.
type Request struct {
	Data string `json:"data"`
}

// TrackingResponse is the outbound envelope for create, update and get
// operations.
type TrackingResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	ShipmentData *ShipmentData `json:"shipmentData,omitempty"`
	Abnormality  string        `json:"abnormality,omitempty"`
}

// ShipmentData is the serialized read-only view of a shipment.
type ShipmentData struct {
	ID                        string       `json:"id"`
	Category                  string       `json:"category"`
	Status                    string       `json:"status"`
	CreationTimestamp         int64        `json:"creationTimestamp"`
	ExpectedDeliveryTimestamp int64        `json:"expectedDeliveryTimestamp"`
	CurrentLocation           string       `json:"currentLocation,omitempty"`
	Notes                     []string     `json:"notes,omitempty"`
	History                   []UpdateData `json:"history"`
	IsAbnormal                bool         `json:"isAbnormal"`
	AbnormalityReason         string       `json:"abnormalityReason,omitempty"`
}

// UpdateData is the serialized form of one history entry.
type UpdateData struct {
	PreviousStatus string `json:"previousStatus"`
	NewStatus      string `json:"newStatus"`
	Timestamp      int64  `json:"timestamp"`
}

// FromResult maps a successful command outcome to the response envelope.
func FromResult(result commands.TrackingResult) TrackingResponse {
	return TrackingResponse{
		Success:      result.Success,
		Message:      result.Message,
		ShipmentData: FromShipment(result.Shipment),
		Abnormality:  result.Abnormality,
	}
}

// FromError maps a failed operation to the response envelope. Core errors
// are single-line and human-readable, so the message is passed through.
func FromError(err error) TrackingResponse {
	return TrackingResponse{
		Success: false,
		Message: err.Error(),
	}
}

// FromShipment serializes a shipment snapshot. Returns nil for a nil
// snapshot so failed responses omit the field entirely.
func FromShipment(s *shipment.Shipment) *ShipmentData {
	if s == nil {
		return nil
	}

	history := make([]UpdateData, 0, len(s.History()))
	for _, update := range s.History() {
		history = append(history, UpdateData{
			PreviousStatus: update.PreviousStatus(),
			NewStatus:      update.NewStatus(),
			Timestamp:      update.Timestamp(),
		})
	}

	return &ShipmentData{
		ID:                        s.ID(),
		Category:                  s.Category().String(),
		Status:                    s.Status(),
		CreationTimestamp:         s.CreationTimestamp(),
		ExpectedDeliveryTimestamp: s.ExpectedDeliveryTimestamp(),
		CurrentLocation:           s.CurrentLocation(),
		Notes:                     s.Notes(),
		History:                   history,
		IsAbnormal:                s.IsAbnormal(),
		AbnormalityReason:         s.AbnormalityReason(),
	}
}
