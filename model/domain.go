// Package model defines the domain entities of the transport catalogue:
// stops, bus routes and their derived statistics. Entities are owned by the
// catalogue; every other component holds non-owning pointers into it.
package model

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// Stop is a named geographic point in the network. The name is the primary
// key; coordinates are immutable after insertion. Stops are allocated
// individually so their addresses stay stable as the catalogue grows.
type Stop struct {
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named ordered traversal of stops. For a non-roundtrip bus the
// stored sequence is the unfolded forward-then-reverse form; for a roundtrip
// bus the first stop equals the last.
type Bus struct {
	Route       string
	Stops       []*Stop
	IsRoundtrip bool
}

// RouteStats holds the statistics of a single bus route.
type RouteStats struct {
	// StopsCount is the number of stops in the stored sequence.
	StopsCount int
	// UniqueStopsCount is the number of distinct stop names in the sequence.
	UniqueStopsCount int
	// RouteLength is the road length in metres, with great-circle fallback
	// for unknown segments.
	RouteLength float64
	// GeoLength is the great-circle length in metres.
	GeoLength float64
	// Curvature is RouteLength / GeoLength; never below 1 for consistent data.
	Curvature float64
}
