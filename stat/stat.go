// Package stat computes bus-route statistics and stop-membership lookups
// over a sealed catalogue.
package stat

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/errors"
	"github.com/theoremus-urban-solutions/transport-catalogue/model"
)

// Engine answers statistics queries. It holds a non-owning reference to the
// catalogue and keeps no state of its own.
type Engine struct {
	cat *catalogue.Catalogue
}

// NewEngine creates a stat engine over the given catalogue.
func NewEngine(cat *catalogue.Catalogue) *Engine {
	return &Engine{cat: cat}
}

// RouteStats computes the statistics of a bus route: stop counts, road and
// great-circle lengths and curvature. The road length of a segment falls
// back to the great-circle distance only when the catalogue reports 0 for
// it: no explicit distance in either direction, or an explicit 0. Returns
// NotFound for an unknown route id.
func (e *Engine) RouteStats(route string) (*model.RouteStats, error) {
	bus, ok := e.cat.FindBus(route)
	if !ok {
		return nil, errors.NewNotFound("bus", route)
	}

	stats := &model.RouteStats{
		StopsCount: len(bus.Stops),
	}

	unique := make(map[string]struct{}, len(bus.Stops))
	for _, stop := range bus.Stops {
		unique[stop.Name] = struct{}{}
	}
	stats.UniqueStopsCount = len(unique)

	for i := 0; i+1 < len(bus.Stops); i++ {
		from, to := bus.Stops[i], bus.Stops[i+1]
		geoDistance := e.cat.GeoDistance(from, to)
		stats.GeoLength += geoDistance
		if road := e.cat.Distance(from, to); road != 0 {
			stats.RouteLength += float64(road)
		} else {
			stats.RouteLength += geoDistance
		}
	}
	if stats.GeoLength > 0 {
		stats.Curvature = stats.RouteLength / stats.GeoLength
	}
	return stats, nil
}

// BusesAtStop returns the sorted route ids of the buses serving a stop. The
// list may be empty. Returns NotFound for an unknown stop name.
func (e *Engine) BusesAtStop(name string) ([]string, error) {
	stop, ok := e.cat.FindStop(name)
	if !ok {
		return nil, errors.NewNotFound("stop", name)
	}

	buses := e.cat.BusesThrough(stop)
	routes := make([]string, 0, len(buses))
	for _, bus := range buses {
		routes = append(routes, bus.Route)
	}
	return routes, nil
}
