package services

import (
	"time"

	"shipping/internal/core/domain/model/shipment"
)

const day = 24 * time.Hour

// Validation messages for creation-time window violations.
const (
	ExpressWindowViolation   = "<=3 day delivery requirement violated"
	OvernightWindowViolation = "next day delivery requirement violated"
	BulkWindowViolation      = "> 3 day delivery requirement violated"
)

// Abnormality reasons and notes used by the drift re-check. They are
// distinct from the creation-time messages so the two violation paths stay
// distinguishable in shipment state.
const (
	ExpressDriftReason   = "Delivery deadline exceeded"
	OvernightDriftReason = "Next-day delivery deadline exceeded"
	BulkDriftReason      = "Delivered too early"

	ExpressDriftNote   = "arriving later than the original 3-day window"
	OvernightDriftNote = "arriving later than the original 1-day window"
	BulkDriftNote      = "arriving sooner than the original window"
)

// PolicyResult is the outcome of a delivery-window validation.
type PolicyResult struct {
	IsValid bool
	Message string
}

// DriftResult is the outcome of a drift re-check against a revised
// delivery estimate.
type DriftResult struct {
	Exceeded bool
	Note     string
	Reason   string
}

// ValidateDeliveryWindow decides whether an expected delivery timestamp
// satisfies the category's timing contract. Timestamps are Unix
// milliseconds; thresholds are whole days compared at millisecond
// precision, so a window of exactly 3 days is within an Express contract
// while 3 days plus one millisecond is not.
//
// Rules per category:
//   - Standard: always valid
//   - Express: valid iff the window is at most 3 days
//   - Overnight: valid iff the window is at most 1 day
//   - Bulk: valid iff the window exceeds 3 days; bulk freight that would
//     arrive too fast is the anomaly
func ValidateDeliveryWindow(category shipment.Category, creationTimestamp, expectedDeliveryTimestamp int64) PolicyResult {
	window := windowOf(creationTimestamp, expectedDeliveryTimestamp)

	switch category {
	case shipment.CategoryExpress:
		if window > 3*day {
			return PolicyResult{Message: ExpressWindowViolation}
		}
	case shipment.CategoryOvernight:
		if window > day {
			return PolicyResult{Message: OvernightWindowViolation}
		}
	case shipment.CategoryBulk:
		if window <= 3*day {
			return PolicyResult{Message: BulkWindowViolation}
		}
	}

	return PolicyResult{IsValid: true}
}

// CheckDeliveryDrift re-validates the delivery window when a later event
// supplies a revised delivery estimate. The window is recomputed against
// the original creation timestamp; a violation in the same direction as
// the category's creation-time rule yields the category's drift note and
// a distinct abnormality reason.
//
// This check runs in addition to, not instead of, the creation-time
// validation: an abnormality set at creation stays set regardless of the
// drift outcome.
func CheckDeliveryDrift(category shipment.Category, creationTimestamp, estimatedDeliveryTimestamp int64) DriftResult {
	window := windowOf(creationTimestamp, estimatedDeliveryTimestamp)

	switch category {
	case shipment.CategoryExpress:
		if window > 3*day {
			return DriftResult{Exceeded: true, Note: ExpressDriftNote, Reason: ExpressDriftReason}
		}
	case shipment.CategoryOvernight:
		if window > day {
			return DriftResult{Exceeded: true, Note: OvernightDriftNote, Reason: OvernightDriftReason}
		}
	case shipment.CategoryBulk:
		if window <= 3*day {
			return DriftResult{Exceeded: true, Note: BulkDriftNote, Reason: BulkDriftReason}
		}
	}

	return DriftResult{}
}

func windowOf(creationTimestamp, expectedDeliveryTimestamp int64) time.Duration {
	return time.Duration(expectedDeliveryTimestamp-creationTimestamp) * time.Millisecond
}
