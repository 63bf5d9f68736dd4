package transit

import (
	"context"
	"errors"
	"strconv"
	"transit-items-service/internal/platform/obs"
	"transit-items-service/internal/ports"
)

type departureEntry struct {
	LineNumber             flexString `json:"LineNumber"`
	Destination            string     `json:"Destination"`
	ExpectedDepartureTime  string     `json:"ExpectedDepartureTime"`
	ScheduledDepartureTime string     `json:"ScheduledDepartureTime"`
	// Field names used by the V4 realtime feed.
	ExpectedDateTime   string `json:"ExpectedDateTime"`
	TimeTabledDateTime string `json:"TimeTabledDateTime"`
}

type departuresResponse struct {
	envelope
	ResponseData *struct {
		Buses  []departureEntry `json:"Buses"`
		Metros []departureEntry `json:"Metros"`
		Metro  []departureEntry `json:"Metro"`
	} `json:"ResponseData"`
}

// Departures fetches the realtime departure board for a site.
// Absent or null categories come back as empty slices.
func (p *SLProvider) Departures(ctx context.Context, siteID string) (_ ports.StopDepartures, err error) {
	defer obs.Time(ctx, "transit.Departures")(&err)

	if siteID == "" {
		return ports.StopDepartures{}, errors.New("departures: site id must not be empty")
	}

	var decoded departuresResponse
	params := map[string]string{
		"siteid":     siteID,
		"timewindow": strconv.Itoa(p.timeWindow),
	}
	if err := p.get(ctx, departuresPath, params, &decoded); err != nil {
		return ports.StopDepartures{}, err
	}
	if err := decoded.err(); err != nil {
		return ports.StopDepartures{}, err
	}

	out := ports.StopDepartures{
		Buses:  []ports.RawDeparture{},
		Metros: []ports.RawDeparture{},
	}
	if decoded.ResponseData == nil {
		return out, nil
	}

	metros := decoded.ResponseData.Metros
	if len(metros) == 0 {
		metros = decoded.ResponseData.Metro
	}

	out.Buses = toRaw(decoded.ResponseData.Buses)
	out.Metros = toRaw(metros)
	return out, nil
}

func toRaw(entries []departureEntry) []ports.RawDeparture {
	out := make([]ports.RawDeparture, 0, len(entries))
	for _, e := range entries {
		expected := e.ExpectedDepartureTime
		if expected == "" {
			expected = e.ExpectedDateTime
		}
		scheduled := e.ScheduledDepartureTime
		if scheduled == "" {
			scheduled = e.TimeTabledDateTime
		}

		out = append(out, ports.RawDeparture{
			LineNumber:  string(e.LineNumber),
			Destination: e.Destination,
			Expected:    expected,
			Scheduled:   scheduled,
		})
	}
	return out
}
