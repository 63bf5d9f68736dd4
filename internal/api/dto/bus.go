package dto

type DepartureResponse struct {
	Line          string `json:"line"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
}

type BusStopResponse struct {
	StopName string              `json:"stopName"`
	Buses    []DepartureResponse `json:"buses"`
}
