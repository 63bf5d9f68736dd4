package obs

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal counts served HTTP requests by method and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_items_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "status"},
	)

	// RequestDuration records HTTP request duration in seconds by method.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transit_items_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// OperationDuration records timed internal operations (upstream calls,
	// lookups) by name and outcome.
	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transit_items_operation_duration_seconds",
			Help:    "Duration of timed operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op", "outcome"},
	)

	// BusLookupsTotal counts bus lookups by result: ok, not_found or error.
	BusLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_items_bus_lookups_total",
			Help: "Bus lookups by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		OperationDuration,
		BusLookupsTotal,
	)
}
