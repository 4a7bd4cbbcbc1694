package engine

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/transport-catalogue/errors"
	"github.com/theoremus-urban-solutions/transport-catalogue/logging"
)

// quietOptions silences logging during tests.
func quietOptions() *Options {
	return DefaultOptions().WithLogLevel(logging.LevelError)
}

const waitThenRideDocument = `{
  "base_requests": [
    {
      "type": "Bus",
      "name": "14",
      "stops": ["Tolstopaltsevo", "Marushkino", "Tolstopaltsevo"],
      "is_roundtrip": true
    },
    {
      "type": "Stop",
      "name": "Tolstopaltsevo",
      "latitude": 55.611087,
      "longitude": 37.208290,
      "road_distances": {"Marushkino": 3900}
    },
    {
      "type": "Stop",
      "name": "Marushkino",
      "latitude": 55.595884,
      "longitude": 37.209755
    }
  ],
  "routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
  "render_settings": {
    "width": 600,
    "height": 400,
    "padding": 50,
    "stop_radius": 5,
    "line_width": 14,
    "bus_label_font_size": 20,
    "bus_label_offset": [7, 15],
    "stop_label_font_size": 18,
    "stop_label_offset": [7, -3],
    "underlayer_color": [255, 255, 255, 0.85],
    "underlayer_width": 3,
    "color_palette": ["green", [255, 160, 0], "red"]
  },
  "stat_requests": [
    {"id": 1, "type": "Route", "from": "Tolstopaltsevo", "to": "Marushkino"},
    {"id": 2, "type": "Bus", "name": "14"},
    {"id": 3, "type": "Stop", "name": "Marushkino"},
    {"id": 4, "type": "Map"}
  ]
}`

// decodeResponses round-trips the result through JSON, the way a consumer
// sees it.
func decodeResponses(t *testing.T, result *Result) []map[string]interface{} {
	t.Helper()
	data, err := result.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	var responses []map[string]interface{}
	if err := json.Unmarshal(data, &responses); err != nil {
		t.Fatalf("Response array does not decode: %v", err)
	}
	return responses
}

func TestRun_WaitThenRideDocument(t *testing.T) {
	result, err := ProcessBytes([]byte(waitThenRideDocument), quietOptions())
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	responses := decodeResponses(t, result)
	if len(responses) != 4 {
		t.Fatalf("Response count = %d, want 4", len(responses))
	}

	// Responses are emitted in request order.
	for i, id := range []float64{1, 2, 3, 4} {
		if responses[i]["request_id"] != id {
			t.Errorf("Response %d request_id = %v, want %v", i, responses[i]["request_id"], id)
		}
	}

	// Route: 6 min wait + 5.85 min ride.
	route := responses[0]
	if got := route["total_time"].(float64); math.Abs(got-11.85) > 1e-4 {
		t.Errorf("total_time = %v, want 11.85", got)
	}
	items := route["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("Route item count = %d, want 2", len(items))
	}
	wait := items[0].(map[string]interface{})
	if wait["type"] != "Wait" || wait["stop_name"] != "Tolstopaltsevo" {
		t.Errorf("Unexpected wait item: %v", wait)
	}
	if got := wait["time"].(float64); math.Abs(got-6) > 1e-9 {
		t.Errorf("Wait time = %v, want 6", got)
	}
	ride := items[1].(map[string]interface{})
	if ride["type"] != "Bus" || ride["bus"] != "14" {
		t.Errorf("Unexpected ride item: %v", ride)
	}
	if got := ride["span_count"].(float64); got != 1 {
		t.Errorf("span_count = %v, want 1", got)
	}
	if got := ride["time"].(float64); math.Abs(got-5.85) > 1e-4 {
		t.Errorf("Ride time = %v, want 5.85", got)
	}

	// Bus statistics: X,Y,X roundtrip, both segments use the explicit
	// forward distance via the reverse fallback.
	bus := responses[1]
	if got := bus["route_length"].(float64); math.Abs(got-7800) > 1e-6 {
		t.Errorf("route_length = %v, want 7800", got)
	}
	if got := bus["stop_count"].(float64); got != 3 {
		t.Errorf("stop_count = %v, want 3", got)
	}
	if got := bus["unique_stop_count"].(float64); got != 2 {
		t.Errorf("unique_stop_count = %v, want 2", got)
	}
	if got := bus["curvature"].(float64); got < 1.0-1e-6 {
		t.Errorf("curvature = %v, must not be below 1", got)
	}

	// Stop membership.
	stop := responses[2]
	buses := stop["buses"].([]interface{})
	if len(buses) != 1 || buses[0] != "14" {
		t.Errorf("buses = %v, want [14]", buses)
	}

	// Map: a full SVG document string.
	svgText := responses[3]["map"].(string)
	if !strings.HasPrefix(svgText, `<?xml version="1.0" encoding="UTF-8" ?>`) {
		t.Errorf("Map does not start with the XML preamble: %.60s", svgText)
	}
	if !strings.Contains(svgText, "<polyline") || !strings.HasSuffix(svgText, "</svg>") {
		t.Errorf("Map is not a complete SVG document: %.60s...", svgText)
	}
}

func TestRun_NotFoundEntries(t *testing.T) {
	input := `{
	  "base_requests": [
	    {"type": "Stop", "name": "A", "latitude": 55.6, "longitude": 37.2}
	  ],
	  "stat_requests": [
	    {"id": 10, "type": "Stop", "name": "Nowhere"},
	    {"id": 11, "type": "Bus", "name": "751"},
	    {"id": 12, "type": "Stop", "name": "A"}
	  ]
	}`

	result, err := ProcessBytes([]byte(input), quietOptions())
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	responses := decodeResponses(t, result)
	if len(responses) != 3 {
		t.Fatalf("Response count = %d, want 3", len(responses))
	}

	for i := 0; i < 2; i++ {
		if responses[i]["error_message"] != "not found" {
			t.Errorf("Response %d error_message = %v, want \"not found\"", i, responses[i]["error_message"])
		}
	}

	// Existing but unserved stop: an empty buses array, not an error.
	served := responses[2]
	if _, hasError := served["error_message"]; hasError {
		t.Error("Known stop must not produce an error entry")
	}
	if buses := served["buses"].([]interface{}); len(buses) != 0 {
		t.Errorf("buses = %v, want empty array", buses)
	}

	if result.ErrorResponses != 2 {
		t.Errorf("ErrorResponses = %d, want 2", result.ErrorResponses)
	}
}

func TestRun_NoRouteBecomesErrorEntry(t *testing.T) {
	input := `{
	  "base_requests": [
	    {"type": "Stop", "name": "A", "latitude": 55.60, "longitude": 37.20},
	    {"type": "Stop", "name": "B", "latitude": 55.61, "longitude": 37.21},
	    {"type": "Stop", "name": "C", "latitude": 55.62, "longitude": 37.22},
	    {"type": "Stop", "name": "D", "latitude": 55.63, "longitude": 37.23},
	    {"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": false},
	    {"type": "Bus", "name": "2", "stops": ["C", "D"], "is_roundtrip": false}
	  ],
	  "routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
	  "stat_requests": [
	    {"id": 1, "type": "Route", "from": "A", "to": "D"}
	  ]
	}`

	result, err := ProcessBytes([]byte(input), quietOptions())
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	responses := decodeResponses(t, result)
	if responses[0]["error_message"] != "not found" {
		t.Errorf("Unroutable pair must answer with an error entry, got: %v", responses[0])
	}
}

func TestRun_SameStopRoute(t *testing.T) {
	input := `{
	  "base_requests": [
	    {"type": "Stop", "name": "A", "latitude": 55.60, "longitude": 37.20},
	    {"type": "Stop", "name": "B", "latitude": 55.61, "longitude": 37.21},
	    {"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": false}
	  ],
	  "routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
	  "stat_requests": [
	    {"id": 1, "type": "Route", "from": "A", "to": "A"}
	  ]
	}`

	result, err := ProcessBytes([]byte(input), quietOptions())
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	responses := decodeResponses(t, result)
	route := responses[0]
	if got := route["total_time"].(float64); got != 0 {
		t.Errorf("total_time = %v, want 0", got)
	}
	if items := route["items"].([]interface{}); len(items) != 0 {
		t.Errorf("items = %v, want empty", items)
	}
}

func TestRun_MapByteStable(t *testing.T) {
	first, err := ProcessBytes([]byte(waitThenRideDocument), quietOptions())
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}
	second, err := ProcessBytes([]byte(waitThenRideDocument), quietOptions())
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	firstMap := decodeResponses(t, first)[3]["map"].(string)
	secondMap := decodeResponses(t, second)[3]["map"].(string)
	if firstMap != secondMap {
		t.Error("Map output differs between identical runs")
	}
}

func TestRun_MalformedJSON(t *testing.T) {
	_, err := ProcessBytes([]byte(`{"base_requests": [`), quietOptions())
	if !errors.IsParseError(err) {
		t.Errorf("Expected ParseError, got: %v", err)
	}
}

func TestRun_MissingRoutingSettings(t *testing.T) {
	input := `{
	  "base_requests": [
	    {"type": "Stop", "name": "A", "latitude": 55.60, "longitude": 37.20},
	    {"type": "Stop", "name": "B", "latitude": 55.61, "longitude": 37.21},
	    {"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": false}
	  ],
	  "stat_requests": [
	    {"id": 1, "type": "Route", "from": "A", "to": "B"}
	  ]
	}`

	_, err := ProcessBytes([]byte(input), quietOptions())
	if !errors.IsInvalidInput(err) {
		t.Errorf("Expected InvalidInput for missing routing_settings, got: %v", err)
	}
}

func TestRun_MissingRenderSettings(t *testing.T) {
	input := `{
	  "base_requests": [
	    {"type": "Stop", "name": "A", "latitude": 55.60, "longitude": 37.20}
	  ],
	  "stat_requests": [
	    {"id": 1, "type": "Map"}
	  ]
	}`

	_, err := ProcessBytes([]byte(input), quietOptions())
	if !errors.IsInvalidInput(err) {
		t.Errorf("Expected InvalidInput for missing render_settings, got: %v", err)
	}
}

func TestRun_InvalidSettingsAbort(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			"routing settings out of bounds",
			`{
			  "base_requests": [
			    {"type": "Stop", "name": "A", "latitude": 55.6, "longitude": 37.2},
			    {"type": "Stop", "name": "B", "latitude": 55.61, "longitude": 37.21},
			    {"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": false}
			  ],
			  "routing_settings": {"bus_wait_time": 0, "bus_velocity": 40},
			  "stat_requests": [{"id": 1, "type": "Route", "from": "A", "to": "B"}]
			}`,
		},
		{
			"empty palette",
			`{
			  "base_requests": [
			    {"type": "Stop", "name": "A", "latitude": 55.6, "longitude": 37.2}
			  ],
			  "render_settings": {
			    "width": 600, "height": 400, "padding": 50,
			    "stop_radius": 5, "line_width": 14,
			    "bus_label_font_size": 20, "bus_label_offset": [7, 15],
			    "stop_label_font_size": 18, "stop_label_offset": [7, -3],
			    "underlayer_color": "white", "underlayer_width": 3,
			    "color_palette": []
			  },
			  "stat_requests": [{"id": 1, "type": "Map"}]
			}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ProcessBytes([]byte(test.input), quietOptions())
			if !errors.IsInvalidInput(err) {
				t.Errorf("Expected InvalidInput, got: %v", err)
			}
		})
	}
}

func TestRun_StrictRejectsUnknownStopBus(t *testing.T) {
	input := `{
	  "base_requests": [
	    {"type": "Stop", "name": "A", "latitude": 55.60, "longitude": 37.20},
	    {"type": "Bus", "name": "828", "stops": ["A", "Nowhere"], "is_roundtrip": false}
	  ],
	  "stat_requests": [
	    {"id": 1, "type": "Bus", "name": "828"}
	  ]
	}`

	result, err := ProcessBytes([]byte(input), quietOptions())
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	// The bus was rejected during ingestion and is now unknown.
	responses := decodeResponses(t, result)
	if responses[0]["error_message"] != "not found" {
		t.Errorf("Rejected bus must be unknown at query time, got: %v", responses[0])
	}
	if result.BusesRejected != 1 {
		t.Errorf("BusesRejected = %d, want 1", result.BusesRejected)
	}
}

func TestRun_LenientSkipsUnknownStops(t *testing.T) {
	input := `{
	  "base_requests": [
	    {"type": "Stop", "name": "A", "latitude": 55.60, "longitude": 37.20},
	    {"type": "Stop", "name": "B", "latitude": 55.61, "longitude": 37.21},
	    {"type": "Bus", "name": "828", "stops": ["A", "Nowhere", "B"], "is_roundtrip": false}
	  ],
	  "stat_requests": [
	    {"id": 1, "type": "Bus", "name": "828"}
	  ]
	}`

	result, err := ProcessBytes([]byte(input), quietOptions().WithStrictUnknownStops(false))
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	responses := decodeResponses(t, result)
	// A,B unfolds to A,B,A after the unknown name is dropped.
	if got := responses[0]["stop_count"].(float64); got != 3 {
		t.Errorf("stop_count = %v, want 3", got)
	}
	if result.BusesRejected != 0 {
		t.Errorf("BusesRejected = %d, want 0", result.BusesRejected)
	}
}

func TestRun_IngestionOrderIndependent(t *testing.T) {
	// The bus entry precedes the stop entries in the document; ingestion
	// still resolves every stop.
	result, err := ProcessBytes([]byte(waitThenRideDocument), quietOptions())
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}
	if result.BusesLoaded != 1 || result.BusesRejected != 0 {
		t.Errorf("BusesLoaded/Rejected = %d/%d, want 1/0", result.BusesLoaded, result.BusesRejected)
	}
}

func TestRun_EmptyDocument(t *testing.T) {
	result, err := ProcessBytes([]byte(`{}`), quietOptions())
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	data, err := result.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Empty run serialises as %s, want []", data)
	}
}

func TestResult_Summary(t *testing.T) {
	result, err := ProcessBytes([]byte(waitThenRideDocument), quietOptions())
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	summary := result.Summary()
	if summary.RequestsProcessed != 4 {
		t.Errorf("RequestsProcessed = %d, want 4", summary.RequestsProcessed)
	}
	if summary.StopsLoaded != 2 || summary.BusesLoaded != 1 || summary.DistancesLoaded != 1 {
		t.Errorf("Unexpected ingest summary: %+v", summary)
	}
}

func TestResult_ToPrettyJSON(t *testing.T) {
	result, err := ProcessBytes([]byte(waitThenRideDocument), quietOptions())
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	pretty, err := result.ToPrettyJSON(2)
	if err != nil {
		t.Fatalf("ToPrettyJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  ") {
		t.Error("Pretty output is not indented")
	}

	var decoded []interface{}
	if err := json.Unmarshal(pretty, &decoded); err != nil {
		t.Errorf("Pretty output does not decode: %v", err)
	}
}
