package transit

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"transit-items-service/internal/domain"
	"transit-items-service/internal/platform/obs"
)

type searchResponse struct {
	envelope
	ResponseData []struct {
		Name   string     `json:"Name"`
		SiteID flexString `json:"SiteId"`
	} `json:"ResponseData"`
}

// SearchStops resolves a free-text stop name to candidate stops.
// Candidates without a site id are dropped; an empty result is not an error.
func (p *SLProvider) SearchStops(ctx context.Context, query string) (_ []domain.Stop, err error) {
	defer obs.Time(ctx, "transit.SearchStops")(&err)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("search stops: query must not be empty")
	}

	var decoded searchResponse
	params := map[string]string{
		"searchstring": query,
		"stationsonly": "true",
		"maxresults":   strconv.Itoa(maxSearchResults),
	}
	if err := p.get(ctx, searchPath, params, &decoded); err != nil {
		return nil, err
	}
	if err := decoded.err(); err != nil {
		return nil, err
	}

	stops := make([]domain.Stop, 0, len(decoded.ResponseData))
	for _, c := range decoded.ResponseData {
		id := strings.TrimSpace(string(c.SiteID))
		if id == "" {
			continue
		}
		stops = append(stops, domain.Stop{SiteID: id, Name: strings.TrimSpace(c.Name)})
	}

	return stops, nil
}
