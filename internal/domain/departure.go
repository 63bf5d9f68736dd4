package domain

// A resolved stop from the transit provider's directory.
// SiteID is the provider's identifier and is distinct from the display name.
type Stop struct {
	SiteID string
	Name   string
}

// A single upcoming vehicle departure at a stop.
// DepartureTime is kept as the provider's raw timestamp string.
type Departure struct {
	Line          string
	Destination   string
	DepartureTime string
}

// Represents the normalized answer to a bus lookup: the canonical stop name
// and its next departures in ascending time order.
type BusStopResult struct {
	StopName string
	Buses    []Departure
}
