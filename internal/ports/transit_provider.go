package ports

import (
	"context"
	"transit-items-service/internal/domain"
)

// A departure as reported by the provider, before normalization.
// Expected is empty when the provider has no realtime estimate.
type RawDeparture struct {
	LineNumber  string
	Destination string
	Expected    string
	Scheduled   string
}

// Realtime departures for a single stop, split by transport mode.
// A category the provider omitted is an empty slice.
type StopDepartures struct {
	Buses  []RawDeparture
	Metros []RawDeparture
}

// Contract for the external transit-data provider.
type TransitProvider interface {
	// Return stops whose name matches query, best match first.
	SearchStops(ctx context.Context, query string) ([]domain.Stop, error)
	// Return realtime departures for the stop identified by siteID.
	Departures(ctx context.Context, siteID string) (StopDepartures, error)
}
