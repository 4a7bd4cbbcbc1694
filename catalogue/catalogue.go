// Package catalogue implements the primary store of the transport network:
// stops, bus routes and directed road distances, keyed by name.
//
// Ingestion goes through a Builder; Build seals the data into an immutable
// Catalogue that the stat engine, map renderer and transit router share
// without locking. Entities are allocated individually, so the pointers
// handed out stay valid as the catalogue grows and for the whole query
// phase.
package catalogue

import (
	"sort"

	"github.com/theoremus-urban-solutions/transport-catalogue/errors"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/model"
)

// distanceKey is an ordered stop pair.
type distanceKey struct {
	from *model.Stop
	to   *model.Stop
}

// Catalogue is the sealed, read-only transport network store.
type Catalogue struct {
	stops      []*model.Stop
	buses      []*model.Bus
	stopByName map[string]*model.Stop
	busByName  map[string]*model.Bus
	distances  map[distanceKey]int
	usage      map[*model.Stop][]*model.Bus

	sortedBuses []*model.Bus
	sortedStops []*model.Stop
}

// FindStop returns the stop with the given name.
func (c *Catalogue) FindStop(name string) (*model.Stop, bool) {
	stop, ok := c.stopByName[name]
	return stop, ok
}

// FindBus returns the bus with the given route id.
func (c *Catalogue) FindBus(route string) (*model.Bus, bool) {
	bus, ok := c.busByName[route]
	return bus, ok
}

// Distance returns the road distance in metres for the ordered stop pair.
// When the pair has no explicit distance the reverse pair is consulted;
// 0 means the distance is unknown.
func (c *Catalogue) Distance(from, to *model.Stop) int {
	if d, ok := c.distances[distanceKey{from, to}]; ok {
		return d
	}
	if d, ok := c.distances[distanceKey{to, from}]; ok {
		return d
	}
	return 0
}

// GeoDistance returns the great-circle distance between two stops in metres.
func (c *Catalogue) GeoDistance(from, to *model.Stop) float64 {
	return geo.ComputeDistance(from.Coordinates, to.Coordinates)
}

// BusesThrough returns the buses serving the stop, sorted by route id.
// The slice may be empty and must not be modified.
func (c *Catalogue) BusesThrough(stop *model.Stop) []*model.Bus {
	return c.usage[stop]
}

// SortedBuses returns the buses that carry at least one stop, sorted by
// route id. The slice must not be modified.
func (c *Catalogue) SortedBuses() []*model.Bus {
	return c.sortedBuses
}

// SortedStops returns the stops served by at least one bus, sorted by name.
// The slice must not be modified.
func (c *Catalogue) SortedStops() []*model.Stop {
	return c.sortedStops
}

// StopCount returns the total number of stops, served or not.
func (c *Catalogue) StopCount() int {
	return len(c.stops)
}

// BusCount returns the total number of buses.
func (c *Catalogue) BusCount() int {
	return len(c.buses)
}

// DistanceCount returns the number of explicit directed distances.
func (c *Catalogue) DistanceCount() int {
	return len(c.distances)
}

// Builder accumulates network data and seals it into a Catalogue.
//
// The zero strictness is strict: a bus referencing an unknown stop, or a
// roundtrip whose first stop differs from its last, is rejected with an
// InvalidInput error. Lenient mode restores the historical behaviour of
// silently dropping unresolved names from the sequence.
type Builder struct {
	stops      []*model.Stop
	buses      []*model.Bus
	stopByName map[string]*model.Stop
	busByName  map[string]*model.Bus
	distances  map[distanceKey]int
	usage      map[*model.Stop]map[*model.Bus]struct{}
	lenient    bool
	sealed     bool
}

// NewBuilder creates an empty catalogue builder.
func NewBuilder() *Builder {
	return &Builder{
		stopByName: make(map[string]*model.Stop),
		busByName:  make(map[string]*model.Bus),
		distances:  make(map[distanceKey]int),
		usage:      make(map[*model.Stop]map[*model.Bus]struct{}),
	}
}

// WithLenientStops switches unresolved stop names in bus definitions from
// rejection to silent skipping.
func (b *Builder) WithLenientStops(lenient bool) *Builder {
	b.lenient = lenient
	return b
}

// AddStop registers a stop. The call is idempotent: a name that already
// exists is ignored. An empty name or out-of-range coordinates are an
// InvalidInput error.
func (b *Builder) AddStop(name string, coords geo.Coordinates) error {
	if b.sealed {
		return errors.NewInternal("AddStop called on a sealed builder")
	}
	if name == "" {
		return errors.NewInvalidInput("stop name must not be empty")
	}
	if coords.Lat < -90 || coords.Lat > 90 {
		return errors.Newf(errors.InvalidInput, "stop %q latitude %v out of range [-90, 90]", name, coords.Lat)
	}
	if coords.Lng < -180 || coords.Lng > 180 {
		return errors.Newf(errors.InvalidInput, "stop %q longitude %v out of range [-180, 180]", name, coords.Lng)
	}
	if _, exists := b.stopByName[name]; exists {
		return nil
	}
	stop := &model.Stop{Name: name, Coordinates: coords}
	b.stops = append(b.stops, stop)
	b.stopByName[stop.Name] = stop
	return nil
}

// SetDistance records the directed road distance between two stops,
// overwriting a prior value for the same ordered pair. Unresolved stop
// names are silently ignored; a negative distance is an InvalidInput error.
func (b *Builder) SetDistance(fromName, toName string, metres int) error {
	if b.sealed {
		return errors.NewInternal("SetDistance called on a sealed builder")
	}
	if metres < 0 {
		return errors.Newf(errors.InvalidInput, "distance %s -> %s must be non-negative, got %d", fromName, toName, metres)
	}
	from, okFrom := b.stopByName[fromName]
	to, okTo := b.stopByName[toName]
	if !okFrom || !okTo {
		return nil
	}
	b.distances[distanceKey{from, to}] = metres
	return nil
}

// AddRoute registers a bus route over the named stops. The call is
// idempotent by route id. For a non-roundtrip bus the sequence is unfolded
// into the forward-then-reverse form; a roundtrip bus is stored as given
// and must start and end at the same stop.
func (b *Builder) AddRoute(route string, stopNames []string, isRoundtrip bool) error {
	if b.sealed {
		return errors.NewInternal("AddRoute called on a sealed builder")
	}
	if route == "" {
		return errors.NewInvalidInput("bus route id must not be empty")
	}
	if len(stopNames) == 0 {
		return errors.Newf(errors.InvalidInput, "bus %q has no stops", route)
	}
	if _, exists := b.busByName[route]; exists {
		return nil
	}
	if isRoundtrip && stopNames[0] != stopNames[len(stopNames)-1] {
		return errors.Newf(errors.InvalidInput,
			"roundtrip bus %q must start and end at the same stop, got %q and %q",
			route, stopNames[0], stopNames[len(stopNames)-1]).
			WithContext("bus", route)
	}

	resolved := make([]*model.Stop, 0, len(stopNames))
	for _, name := range stopNames {
		stop, ok := b.stopByName[name]
		if !ok {
			if b.lenient {
				continue
			}
			return errors.Newf(errors.InvalidInput, "bus %q references unknown stop %q", route, name).
				WithContext("bus", route).
				WithContext("stop", name)
		}
		resolved = append(resolved, stop)
	}
	if len(resolved) == 0 {
		return errors.Newf(errors.InvalidInput, "bus %q has no resolvable stops", route)
	}

	stops := resolved
	if !isRoundtrip {
		// Unfold A,B,..,Z into A,B,..,Z,..,B,A without repeating the
		// turn-around endpoint.
		stops = make([]*model.Stop, 0, 2*len(resolved)-1)
		stops = append(stops, resolved...)
		for i := len(resolved) - 2; i >= 0; i-- {
			stops = append(stops, resolved[i])
		}
	}

	bus := &model.Bus{Route: route, Stops: stops, IsRoundtrip: isRoundtrip}
	b.buses = append(b.buses, bus)
	b.busByName[bus.Route] = bus
	for _, stop := range stops {
		set, ok := b.usage[stop]
		if !ok {
			set = make(map[*model.Bus]struct{})
			b.usage[stop] = set
		}
		set[bus] = struct{}{}
	}
	return nil
}

// Build seals the accumulated data and returns the read-only catalogue.
// The builder must not be used afterwards.
func (b *Builder) Build() *Catalogue {
	b.sealed = true

	usage := make(map[*model.Stop][]*model.Bus, len(b.usage))
	for stop, set := range b.usage {
		buses := make([]*model.Bus, 0, len(set))
		for bus := range set {
			buses = append(buses, bus)
		}
		sort.Slice(buses, func(i, j int) bool { return buses[i].Route < buses[j].Route })
		usage[stop] = buses
	}

	sortedBuses := make([]*model.Bus, 0, len(b.buses))
	for _, bus := range b.buses {
		if len(bus.Stops) == 0 {
			continue
		}
		sortedBuses = append(sortedBuses, bus)
	}
	sort.Slice(sortedBuses, func(i, j int) bool { return sortedBuses[i].Route < sortedBuses[j].Route })

	sortedStops := make([]*model.Stop, 0, len(b.stops))
	for _, stop := range b.stops {
		if len(usage[stop]) == 0 {
			continue
		}
		sortedStops = append(sortedStops, stop)
	}
	sort.Slice(sortedStops, func(i, j int) bool { return sortedStops[i].Name < sortedStops[j].Name })

	return &Catalogue{
		stops:       b.stops,
		buses:       b.buses,
		stopByName:  b.stopByName,
		busByName:   b.busByName,
		distances:   b.distances,
		usage:       usage,
		sortedBuses: sortedBuses,
		sortedStops: sortedStops,
	}
}
