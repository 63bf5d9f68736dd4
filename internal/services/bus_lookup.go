package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"transit-items-service/internal/domain"
	"transit-items-service/internal/ports"
)

// MaxDepartures bounds the number of departures returned by a lookup.
const MaxDepartures = 5

const metroLinePrefix = "Metro "

var ErrStopNotFound = errors.New("stop not found")

// StopNotFoundError is returned when the provider has no candidate for Query.
type StopNotFoundError struct {
	Query string
}

func (e *StopNotFoundError) Error() string {
	return fmt.Sprintf("no stop found for %q", e.Query)
}

func (e *StopNotFoundError) Is(target error) bool { return target == ErrStopNotFound }

// LookupDepartures resolves stopName against the provider directory, fetches
// the realtime board for the best candidate and returns its next departures.
//
// The two upstream calls are sequential: resolve, then fetch. Each step's
// failure is wrapped with the step name; an empty directory answer is a
// *StopNotFoundError rather than a generic failure.
func LookupDepartures(
	ctx context.Context,
	stopName string,
	provider ports.TransitProvider,
) (*domain.BusStopResult, error) {
	query := strings.TrimSpace(stopName)
	if query == "" {
		return nil, errors.New("lookup departures: stop name must be non-empty")
	}

	stop, err := resolveStop(ctx, query, provider)
	if err != nil {
		return nil, err
	}

	board, err := provider.Departures(ctx, stop.SiteID)
	if err != nil {
		return nil, fmt.Errorf("fetch departures for site %s: %w", stop.SiteID, err)
	}

	bus := NormalizeDepartures(board.Buses, "")
	metro := NormalizeDepartures(board.Metros, metroLinePrefix)

	return &domain.BusStopResult{
		StopName: stop.Name,
		Buses:    MergeDepartures(bus, metro, MaxDepartures),
	}, nil
}

func resolveStop(ctx context.Context, query string, provider ports.TransitProvider) (domain.Stop, error) {
	candidates, err := provider.SearchStops(ctx, query)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("resolve stop %q: %w", query, err)
	}
	if len(candidates) == 0 {
		return domain.Stop{}, &StopNotFoundError{Query: query}
	}

	stop := candidates[0]
	if stop.Name == "" {
		stop.Name = query
	}
	return stop, nil
}

// NormalizeDepartures converts provider entries to display departures.
// The display time is the expected time when known, else the scheduled time.
func NormalizeDepartures(raw []ports.RawDeparture, linePrefix string) []domain.Departure {
	out := make([]domain.Departure, 0, len(raw))
	for _, r := range raw {
		t := r.Expected
		if t == "" {
			t = r.Scheduled
		}
		out = append(out, domain.Departure{
			Line:          linePrefix + r.LineNumber,
			Destination:   r.Destination,
			DepartureTime: t,
		})
	}
	return out
}

// MergeDepartures concatenates both lists, sorts them ascending by departure
// time and keeps at most limit entries. Inputs are not modified.
func MergeDepartures(bus, metro []domain.Departure, limit int) []domain.Departure {
	merged := make([]domain.Departure, 0, len(bus)+len(metro))
	merged = append(merged, bus...)
	merged = append(merged, metro...)

	slices.SortStableFunc(merged, func(a, b domain.Departure) int {
		return CompareDepartureTimes(a.DepartureTime, b.DepartureTime)
	})

	if limit >= 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

var departureLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"15:04",
}

// ParseDepartureTime parses the timestamp formats the provider is known to emit.
// Zone-less timestamps are read as UTC.
func ParseDepartureTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range departureLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CompareDepartureTimes orders two raw departure times.
// Parsable times compare chronologically and sort before unparsable ones;
// two unparsable values compare lexically so the order stays total.
func CompareDepartureTimes(a, b string) int {
	ta, okA := ParseDepartureTime(a)
	tb, okB := ParseDepartureTime(b)

	switch {
	case okA && okB:
		return ta.Compare(tb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
