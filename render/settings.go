package render

import (
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/errors"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// Settings configures the map renderer.
type Settings struct {
	// Width and Height are the canvas dimensions in pixels.
	Width  float64
	Height float64
	// Padding is the margin kept free on every canvas edge.
	Padding float64
	// StopRadius is the radius of stop circles.
	StopRadius float64
	// LineWidth is the stroke width of route polylines.
	LineWidth float64
	// BusLabelFontSize and BusLabelOffset style the route labels.
	BusLabelFontSize uint32
	BusLabelOffset   svg.Point
	// StopLabelFontSize and StopLabelOffset style the stop labels.
	StopLabelFontSize uint32
	StopLabelOffset   svg.Point
	// UnderlayerColor and UnderlayerWidth style the label underlayers.
	UnderlayerColor svg.Color
	UnderlayerWidth float64
	// ColorPalette is cycled through in sorted-bus order. Must not be empty.
	ColorPalette []svg.Color
}

// Validate checks the settings bounds.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Newf(errors.InvalidInput, "canvas dimensions %vx%v must be positive", s.Width, s.Height)
	}
	if s.Padding < 0 {
		return errors.Newf(errors.InvalidInput, "padding %v must be non-negative", s.Padding)
	}
	if s.Padding >= math.Min(s.Width, s.Height)/2 {
		return errors.Newf(errors.InvalidInput, "padding %v must be less than half the smaller canvas dimension", s.Padding)
	}
	if s.StopRadius < 0 || s.LineWidth < 0 || s.UnderlayerWidth < 0 {
		return errors.NewInvalidInput("stroke widths and radii must be non-negative")
	}
	if len(s.ColorPalette) == 0 {
		return errors.NewInvalidInput("color_palette must not be empty")
	}
	return nil
}
