package testutil

import (
	"testing"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/render"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// TestStop is a stop definition used by the shared fixtures.
type TestStop struct {
	Name string
	Lat  float64
	Lng  float64
}

// SmallNetworkStops are four stops of a miniature network. The fourth stop
// is left unserved by SmallNetwork.
var SmallNetworkStops = []TestStop{
	{"Biryulyovo Zapadnoye", 55.574371, 37.6517},
	{"Biryusinka", 55.581065, 37.64839},
	{"Universam", 55.587655, 37.645687},
	{"Prazhskaya", 55.611678, 37.603831},
}

// SmallNetwork builds a sealed catalogue with two buses over the first
// three of SmallNetworkStops; Prazhskaya stays isolated.
func SmallNetwork(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	b := catalogue.NewBuilder()
	for _, s := range SmallNetworkStops {
		if err := b.AddStop(s.Name, geo.Coordinates{Lat: s.Lat, Lng: s.Lng}); err != nil {
			t.Fatalf("AddStop(%s) failed: %v", s.Name, err)
		}
	}
	distances := []struct {
		from, to string
		metres   int
	}{
		{"Biryulyovo Zapadnoye", "Biryusinka", 1800},
		{"Biryusinka", "Universam", 750},
		{"Universam", "Biryulyovo Zapadnoye", 2400},
	}
	for _, d := range distances {
		if err := b.SetDistance(d.from, d.to, d.metres); err != nil {
			t.Fatalf("SetDistance failed: %v", err)
		}
	}
	if err := b.AddRoute("297", []string{"Biryulyovo Zapadnoye", "Biryusinka", "Universam", "Biryulyovo Zapadnoye"}, true); err != nil {
		t.Fatalf("AddRoute(297) failed: %v", err)
	}
	if err := b.AddRoute("635", []string{"Biryulyovo Zapadnoye", "Universam"}, false); err != nil {
		t.Fatalf("AddRoute(635) failed: %v", err)
	}
	return b.Build()
}

// DefaultRenderSettings returns render settings usable for most tests.
func DefaultRenderSettings() render.Settings {
	return render.Settings{
		Width:             600,
		Height:            400,
		Padding:           50,
		StopRadius:        5,
		LineWidth:         14,
		BusLabelFontSize:  20,
		BusLabelOffset:    svg.Point{X: 7, Y: 15},
		StopLabelFontSize: 18,
		StopLabelOffset:   svg.Point{X: 7, Y: -3},
		UnderlayerColor:   svg.Rgba{Red: 255, Green: 255, Blue: 255, Opacity: 0.85},
		UnderlayerWidth:   3,
		ColorPalette: []svg.Color{
			svg.Named("green"),
			svg.Rgb{Red: 255, Green: 160, Blue: 0},
			svg.Named("red"),
		},
	}
}
