package engine

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/transport-catalogue/errors"
	"github.com/theoremus-urban-solutions/transport-catalogue/render"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// Request envelope keys and entry types.
const (
	requestTypeStop  = "Stop"
	requestTypeBus   = "Bus"
	requestTypeMap   = "Map"
	requestTypeRoute = "Route"
)

// document is the top-level request envelope.
type document struct {
	BaseRequests    []baseRequest        `json:"base_requests"`
	StatRequests    []statRequest        `json:"stat_requests"`
	RenderSettings  *renderSettingsJSON  `json:"render_settings"`
	RoutingSettings *routingSettingsJSON `json:"routing_settings"`
}

// baseRequest is one ingestion entry; the populated fields depend on Type.
type baseRequest struct {
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	RoadDistances map[string]int `json:"road_distances"`
	Stops         []string       `json:"stops"`
	IsRoundtrip   bool           `json:"is_roundtrip"`
}

// statRequest is one query entry; Name serves Stop/Bus requests, From/To
// serve Route requests.
type statRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// routingSettingsJSON mirrors the routing_settings object.
type routingSettingsJSON struct {
	BusWaitTime int     `json:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity"`
}

// toSettings converts to the router's settings type.
func (r *routingSettingsJSON) toSettings() routing.Settings {
	return routing.Settings{
		BusWaitTime: r.BusWaitTime,
		BusVelocity: r.BusVelocity,
	}
}

// renderSettingsJSON mirrors the render_settings object.
type renderSettingsJSON struct {
	Width             float64           `json:"width"`
	Height            float64           `json:"height"`
	Padding           float64           `json:"padding"`
	StopRadius        float64           `json:"stop_radius"`
	LineWidth         float64           `json:"line_width"`
	BusLabelFontSize  uint32            `json:"bus_label_font_size"`
	BusLabelOffset    []float64         `json:"bus_label_offset"`
	StopLabelFontSize uint32            `json:"stop_label_font_size"`
	StopLabelOffset   []float64         `json:"stop_label_offset"`
	UnderlayerColor   json.RawMessage   `json:"underlayer_color"`
	UnderlayerWidth   float64           `json:"underlayer_width"`
	ColorPalette      []json.RawMessage `json:"color_palette"`
}

// toSettings converts to the renderer's settings type.
func (r *renderSettingsJSON) toSettings() (render.Settings, error) {
	settings := render.Settings{
		Width:             r.Width,
		Height:            r.Height,
		Padding:           r.Padding,
		StopRadius:        r.StopRadius,
		LineWidth:         r.LineWidth,
		BusLabelFontSize:  r.BusLabelFontSize,
		StopLabelFontSize: r.StopLabelFontSize,
		UnderlayerWidth:   r.UnderlayerWidth,
	}

	var err error
	if settings.BusLabelOffset, err = parsePoint(r.BusLabelOffset); err != nil {
		return settings, errors.NewInvalidInput("bus_label_offset must be a [dx, dy] pair").WithCause(err)
	}
	if settings.StopLabelOffset, err = parsePoint(r.StopLabelOffset); err != nil {
		return settings, errors.NewInvalidInput("stop_label_offset must be a [dx, dy] pair").WithCause(err)
	}
	if settings.UnderlayerColor, err = parseColor(r.UnderlayerColor); err != nil {
		return settings, err
	}
	settings.ColorPalette = make([]svg.Color, 0, len(r.ColorPalette))
	for _, raw := range r.ColorPalette {
		color, err := parseColor(raw)
		if err != nil {
			return settings, err
		}
		settings.ColorPalette = append(settings.ColorPalette, color)
	}
	return settings, nil
}

// parsePoint decodes a [x, y] array.
func parsePoint(values []float64) (svg.Point, error) {
	if len(values) != 2 {
		return svg.Point{}, errors.Newf(errors.InvalidInput, "expected 2 components, got %d", len(values))
	}
	return svg.Point{X: values[0], Y: values[1]}, nil
}

// parseColor decodes a color node: a literal string, a [r,g,b] array, a
// [r,g,b,a] array, or null for no color.
func parseColor(raw json.RawMessage) (svg.Color, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return svg.None, nil
	}

	var literal string
	if err := json.Unmarshal(raw, &literal); err == nil {
		return svg.Named(literal), nil
	}

	var components []float64
	if err := json.Unmarshal(raw, &components); err != nil {
		return nil, errors.NewParseError("color must be a string or an array of components", err)
	}
	switch len(components) {
	case 3:
		return svg.Rgb{
			Red:   uint8(components[0]),
			Green: uint8(components[1]),
			Blue:  uint8(components[2]),
		}, nil
	case 4:
		return svg.Rgba{
			Red:     uint8(components[0]),
			Green:   uint8(components[1]),
			Blue:    uint8(components[2]),
			Opacity: components[3],
		}, nil
	default:
		return nil, errors.Newf(errors.InvalidInput, "color array must have 3 or 4 components, got %d", len(components))
	}
}
