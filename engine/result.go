package engine

import (
	"encoding/json"
	"strings"
	"time"
)

// Response entry shapes. Responses are emitted in stat-request order; the
// field names follow the documented exchange format.

// errorResponse answers any request referencing an unknown entity or an
// unroutable pair.
type errorResponse struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

// stopResponse answers a Stop request.
type stopResponse struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

// busResponse answers a Bus request.
type busResponse struct {
	RequestID       int     `json:"request_id"`
	Curvature       float64 `json:"curvature"`
	RouteLength     float64 `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

// mapResponse answers a Map request with the full SVG document.
type mapResponse struct {
	RequestID int    `json:"request_id"`
	Map       string `json:"map"`
}

// routeResponse answers a Route request.
type routeResponse struct {
	RequestID int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
	Items     []routeItem `json:"items"`
}

// routeItem is one leg of an itinerary: a Wait at a stop or a Bus ride.
type routeItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// Result is the outcome of processing one request document.
type Result struct {
	// Responses holds one entry per stat request, in request order.
	Responses []interface{}

	// Processing statistics.
	StopsLoaded     int
	BusesLoaded     int
	BusesRejected   int
	DistancesLoaded int
	ErrorResponses  int
	ProcessingTime  time.Duration
}

// Summary provides a high-level summary of a processing run.
type Summary struct {
	RequestsProcessed int           `json:"requestsProcessed"`
	ErrorResponses    int           `json:"errorResponses"`
	StopsLoaded       int           `json:"stopsLoaded"`
	BusesLoaded       int           `json:"busesLoaded"`
	BusesRejected     int           `json:"busesRejected"`
	DistancesLoaded   int           `json:"distancesLoaded"`
	ProcessingTime    time.Duration `json:"processingTimeNs"`
}

// Summary returns a summary of the processing run.
func (r *Result) Summary() Summary {
	return Summary{
		RequestsProcessed: len(r.Responses),
		ErrorResponses:    r.ErrorResponses,
		StopsLoaded:       r.StopsLoaded,
		BusesLoaded:       r.BusesLoaded,
		BusesRejected:     r.BusesRejected,
		DistancesLoaded:   r.DistancesLoaded,
		ProcessingTime:    r.ProcessingTime,
	}
}

// ToJSON renders the response array compactly.
func (r *Result) ToJSON() ([]byte, error) {
	return json.Marshal(r.responses())
}

// ToPrettyJSON renders the response array with the given indentation width.
func (r *Result) ToPrettyJSON(indent int) ([]byte, error) {
	if indent <= 0 {
		return r.ToJSON()
	}
	return json.MarshalIndent(r.responses(), "", strings.Repeat(" ", indent))
}

// responses never returns nil so an empty run serialises as [].
func (r *Result) responses() []interface{} {
	if r.Responses == nil {
		return []interface{}{}
	}
	return r.Responses
}
