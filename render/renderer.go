// Package render draws the transport network as a layered SVG document:
// route polylines first, then route labels, stop circles and stop labels,
// so that labels always overlay geometry. Output order follows the sorted
// bus and stop views of the catalogue and is fully deterministic.
package render

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/model"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// MapRenderer produces SVG maps of a catalogue.
type MapRenderer struct {
	settings Settings
}

// NewMapRenderer validates the settings and creates a renderer.
func NewMapRenderer(settings Settings) (*MapRenderer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &MapRenderer{settings: settings}, nil
}

// Render draws the network. An empty network (no served stops) renders an
// empty document.
func (m *MapRenderer) Render(cat *catalogue.Catalogue) (*svg.Document, error) {
	doc := svg.NewDocument()

	buses := cat.SortedBuses()
	stops := cat.SortedStops()
	if len(stops) == 0 {
		return doc, nil
	}

	coords := make([]geo.Coordinates, 0, len(stops))
	for _, stop := range stops {
		coords = append(coords, stop.Coordinates)
	}
	projector, err := geo.NewSphereProjector(coords, m.settings.Width, m.settings.Height, m.settings.Padding)
	if err != nil {
		return nil, err
	}

	m.addRouteLines(doc, buses, projector)
	m.addRouteLabels(doc, buses, projector)
	m.addStopSymbols(doc, stops, projector)
	m.addStopLabels(doc, stops, projector)
	return doc, nil
}

// point projects stop coordinates onto the canvas.
func point(projector *geo.SphereProjector, stop *model.Stop) svg.Point {
	p := projector.Project(stop.Coordinates)
	return svg.Point{X: p.X, Y: p.Y}
}

// paletteColor cycles through the palette in sorted-bus order.
func (m *MapRenderer) paletteColor(busIndex int) svg.Color {
	return m.settings.ColorPalette[busIndex%len(m.settings.ColorPalette)]
}

func (m *MapRenderer) addRouteLines(doc *svg.Document, buses []*model.Bus, projector *geo.SphereProjector) {
	for i, bus := range buses {
		line := svg.NewPolyline().
			SetStrokeColor(m.paletteColor(i)).
			SetFillColor(svg.None).
			SetStrokeWidth(m.settings.LineWidth).
			SetStrokeLineCap(svg.StrokeLineCapRound).
			SetStrokeLineJoin(svg.StrokeLineJoinRound)
		for _, stop := range bus.Stops {
			line.AddPoint(point(projector, stop))
		}
		doc.Add(line)
	}
}

// addRouteLabels emits an underlayer/text pair at the first stop of every
// bus, and a second pair at the turn-around stop of a non-roundtrip bus
// unless it coincides with the first.
func (m *MapRenderer) addRouteLabels(doc *svg.Document, buses []*model.Bus, projector *geo.SphereProjector) {
	for i, bus := range buses {
		first := bus.Stops[0]
		m.addBusLabelPair(doc, bus.Route, point(projector, first), m.paletteColor(i))

		if bus.IsRoundtrip {
			continue
		}
		turnaround := bus.Stops[len(bus.Stops)/2]
		if turnaround == first {
			continue
		}
		m.addBusLabelPair(doc, bus.Route, point(projector, turnaround), m.paletteColor(i))
	}
}

func (m *MapRenderer) addBusLabelPair(doc *svg.Document, route string, at svg.Point, color svg.Color) {
	doc.Add(svg.NewText().
		SetPosition(at).
		SetOffset(m.settings.BusLabelOffset).
		SetFontSize(m.settings.BusLabelFontSize).
		SetFontFamily("Verdana").
		SetFontWeight("bold").
		SetData(route).
		SetFillColor(m.settings.UnderlayerColor).
		SetStrokeColor(m.settings.UnderlayerColor).
		SetStrokeWidth(m.settings.UnderlayerWidth).
		SetStrokeLineCap(svg.StrokeLineCapRound).
		SetStrokeLineJoin(svg.StrokeLineJoinRound))
	doc.Add(svg.NewText().
		SetPosition(at).
		SetOffset(m.settings.BusLabelOffset).
		SetFontSize(m.settings.BusLabelFontSize).
		SetFontFamily("Verdana").
		SetFontWeight("bold").
		SetData(route).
		SetFillColor(color))
}

func (m *MapRenderer) addStopSymbols(doc *svg.Document, stops []*model.Stop, projector *geo.SphereProjector) {
	for _, stop := range stops {
		doc.Add(svg.NewCircle().
			SetCenter(point(projector, stop)).
			SetRadius(m.settings.StopRadius).
			SetFillColor(svg.Named("white")))
	}
}

func (m *MapRenderer) addStopLabels(doc *svg.Document, stops []*model.Stop, projector *geo.SphereProjector) {
	for _, stop := range stops {
		at := point(projector, stop)
		doc.Add(svg.NewText().
			SetPosition(at).
			SetOffset(m.settings.StopLabelOffset).
			SetFontSize(m.settings.StopLabelFontSize).
			SetFontFamily("Verdana").
			SetData(stop.Name).
			SetFillColor(m.settings.UnderlayerColor).
			SetStrokeColor(m.settings.UnderlayerColor).
			SetStrokeWidth(m.settings.UnderlayerWidth).
			SetStrokeLineCap(svg.StrokeLineCapRound).
			SetStrokeLineJoin(svg.StrokeLineJoinRound))
		doc.Add(svg.NewText().
			SetPosition(at).
			SetOffset(m.settings.StopLabelOffset).
			SetFontSize(m.settings.StopLabelFontSize).
			SetFontFamily("Verdana").
			SetData(stop.Name).
			SetFillColor(svg.Named("black")))
	}
}
