package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"transit-items-service/internal/api/dto"
	"transit-items-service/internal/platform/obs"
	"transit-items-service/internal/ports"
	"transit-items-service/internal/services"
)

type BusHandler struct {
	Provider        ports.TransitProvider
	ShowErrorDetail bool
}

// Lookup resolves the {stopName} path segment and returns its next departures.
func (h *BusHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	stopName := strings.TrimSpace(r.PathValue("stopName"))
	if stopName == "" {
		writeError(w, r, http.StatusBadRequest, "Stop name is required")
		return
	}

	res, err := services.LookupDepartures(r.Context(), stopName, h.Provider)

	var notFound *services.StopNotFoundError
	switch {
	case errors.As(err, &notFound):
		obs.BusLookupsTotal.WithLabelValues("not_found").Inc()
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("No bus stop found for %q", notFound.Query))
		return
	case err != nil:
		obs.BusLookupsTotal.WithLabelValues("error").Inc()
		InternalError(w, r, fmt.Errorf("bus lookup %q: %w", stopName, err), "Failed to fetch bus data", h.ShowErrorDetail)
		return
	}
	obs.BusLookupsTotal.WithLabelValues("ok").Inc()

	out := dto.BusStopResponse{
		StopName: res.StopName,
		Buses:    make([]dto.DepartureResponse, 0, len(res.Buses)),
	}
	for _, d := range res.Buses {
		out.Buses = append(out.Buses, dto.DepartureResponse{
			Line:          d.Line,
			Destination:   d.Destination,
			DepartureTime: d.DepartureTime,
		})
	}

	writeJSON(w, r, http.StatusOK, out)
}
