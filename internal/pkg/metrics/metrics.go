// Package metrics exposes Prometheus collectors for shipment event ingest.
// Counters are incremented by the command handlers so both transports
// (HTTP and file exchange) are accounted for uniformly.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ShipmentEventsTotal counts every raw event line offered to the core,
	// whether or not it was accepted.
	ShipmentEventsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shipment_events_total",
			Help: "Total number of shipment event lines received",
		},
	)

	// ShipmentEventsInvalidTotal counts lines rejected by the event parser.
	ShipmentEventsInvalidTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shipment_events_invalid_total",
			Help: "Total number of shipment event lines rejected by the parser",
		},
	)

	// ShipmentEventsRejectedTotal counts well-formed events the registry
	// refused (unknown id, duplicate create, unknown event type).
	ShipmentEventsRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shipment_events_rejected_total",
			Help: "Total number of parsed shipment events rejected by the registry",
		},
	)

	// ShipmentEventProcessingDuration observes end-to-end handling time of
	// a single event line, parse included.
	ShipmentEventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipment_event_processing_duration_seconds",
			Help:    "Duration of shipment event processing",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all collectors with the default Prometheus registry.
// Call once at startup.
func Register() {
	prometheus.MustRegister(
		ShipmentEventsTotal,
		ShipmentEventsInvalidTotal,
		ShipmentEventsRejectedTotal,
		ShipmentEventProcessingDuration,
	)
}
