package transit

import (
	"context"
	"fmt"
	"transit-items-service/internal/domain"
	"transit-items-service/internal/ports"
)

// MockProvider is an in-memory TransitProvider for tests and local runs.
// Stops maps a query to its candidates; Boards maps a site id to departures.
type MockProvider struct {
	Stops  map[string][]domain.Stop
	Boards map[string]ports.StopDepartures

	SearchErr     error
	DeparturesErr error

	// Queries and SiteIDs record calls in order.
	Queries []string
	SiteIDs []string
}

func (p *MockProvider) SearchStops(ctx context.Context, query string) ([]domain.Stop, error) {
	p.Queries = append(p.Queries, query)
	if p.SearchErr != nil {
		return nil, p.SearchErr
	}
	return p.Stops[query], nil
}

func (p *MockProvider) Departures(ctx context.Context, siteID string) (ports.StopDepartures, error) {
	p.SiteIDs = append(p.SiteIDs, siteID)
	if p.DeparturesErr != nil {
		return ports.StopDepartures{}, p.DeparturesErr
	}

	board, ok := p.Boards[siteID]
	if !ok {
		return ports.StopDepartures{}, fmt.Errorf("missing board for site %q", siteID)
	}
	return board, nil
}
