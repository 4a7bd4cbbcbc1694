package geo

import (
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/errors"
)

// projectionEpsilon is the tolerance below which a coordinate span is
// considered degenerate.
const projectionEpsilon = 1e-6

// Point is a position on the projection canvas.
type Point struct {
	X float64
	Y float64
}

// SphereProjector maps geographic coordinates onto a canvas of fixed width,
// height and padding. The zoom is isotropic: the smaller of the horizontal
// and vertical scale factors is applied to both axes, and latitude is
// inverted so that higher latitudes map to smaller Y values.
type SphereProjector struct {
	padding float64
	minLng  float64
	maxLat  float64
	zoom    float64
}

// NewSphereProjector computes the bounding box of the reference coordinates
// and derives the zoom factor. It returns an InvalidInput error when the
// reference set is empty.
func NewSphereProjector(points []Coordinates, width, height, padding float64) (*SphereProjector, error) {
	if len(points) == 0 {
		return nil, errors.NewInvalidInput("projection requires at least one reference coordinate")
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLng, maxLng := points[0].Lng, points[0].Lng
	for _, p := range points[1:] {
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLng = math.Min(minLng, p.Lng)
		maxLng = math.Max(maxLng, p.Lng)
	}

	var widthZoom, heightZoom float64
	hasWidth := !isZero(maxLng - minLng)
	hasHeight := !isZero(maxLat - minLat)
	if hasWidth {
		widthZoom = (width - 2*padding) / (maxLng - minLng)
	}
	if hasHeight {
		heightZoom = (height - 2*padding) / (maxLat - minLat)
	}

	var zoom float64
	switch {
	case hasWidth && hasHeight:
		zoom = math.Min(widthZoom, heightZoom)
	case hasWidth:
		zoom = widthZoom
	case hasHeight:
		zoom = heightZoom
	}

	return &SphereProjector{
		padding: padding,
		minLng:  minLng,
		maxLat:  maxLat,
		zoom:    zoom,
	}, nil
}

// Project maps geographic coordinates to a canvas point.
func (sp *SphereProjector) Project(coords Coordinates) Point {
	return Point{
		X: (coords.Lng-sp.minLng)*sp.zoom + sp.padding,
		Y: (sp.maxLat-coords.Lat)*sp.zoom + sp.padding,
	}
}

func isZero(value float64) bool {
	return math.Abs(value) < projectionEpsilon
}
