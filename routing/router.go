// Package routing builds the time-weighted transit graph over a sealed
// catalogue and answers fastest-itinerary queries.
//
// Every stop is split into an arrival vertex (id 2k) and a departure vertex
// (id 2k+1), with k the stop's ordinal in the sorted-stop list. A wait edge
// connects arrival to departure with the configured wait time; ride edges
// connect the departure of a stop to the arrival of every later stop of the
// same bus with the cumulative road time. Queries enter and exit at arrival
// vertices, so every non-trivial itinerary starts with a wait at the
// origin.
package routing

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/errors"
	"github.com/theoremus-urban-solutions/transport-catalogue/graph"
	"github.com/theoremus-urban-solutions/transport-catalogue/model"
)

// LegKind discriminates itinerary legs.
type LegKind int

const (
	// LegWait is waiting for a bus at a stop.
	LegWait LegKind = iota
	// LegRide is riding a bus over one or more spans.
	LegRide
)

// Leg is one step of an itinerary: either a wait at a stop or a ride on a
// bus across SpanCount consecutive stops.
type Leg struct {
	Kind      LegKind
	StopName  string
	Bus       string
	SpanCount int
	Time      float64
}

// Itinerary is a fastest path between two stops.
type Itinerary struct {
	TotalTime float64
	Legs      []Leg
}

// Router answers fastest-itinerary queries. Build it exactly once against a
// sealed catalogue; queries are read-only and independent.
type Router struct {
	settings Settings
	cat      *catalogue.Catalogue
	graph    *graph.DirectedWeighted
	inner    *graph.Router
	arrival  map[*model.Stop]graph.VertexID
}

// NewRouter validates the settings and builds the routing graph.
func NewRouter(cat *catalogue.Catalogue, settings Settings) (*Router, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	r := &Router{
		settings: settings,
		cat:      cat,
		arrival:  make(map[*model.Stop]graph.VertexID),
	}
	r.build()
	r.inner = graph.NewRouter(r.graph)
	return r, nil
}

// build fills the graph from the catalogue: one wait edge per served stop,
// then ride edges for every ordered stop pair of every bus.
func (r *Router) build() {
	stops := r.cat.SortedStops()
	r.graph = graph.NewDirectedWeighted(2 * len(stops))

	for i, stop := range stops {
		arrival := graph.VertexID(2 * i)
		r.arrival[stop] = arrival
		r.graph.AddEdge(graph.Edge{
			Title:    stop.Name,
			Quantity: 0,
			From:     arrival,
			To:       arrival + 1,
			Weight:   float64(r.settings.BusWaitTime),
		})
	}

	speed := r.settings.metresPerMinute()
	for _, bus := range r.cat.SortedBuses() {
		seq := bus.Stops
		for i := 0; i < len(seq); i++ {
			distance := 0
			for j := i + 1; j < len(seq); j++ {
				// Cumulative real road distance; no great-circle
				// fallback in routing.
				distance += r.cat.Distance(seq[j-1], seq[j])
				r.graph.AddEdge(graph.Edge{
					Title:    bus.Route,
					Quantity: j - i,
					From:     r.arrival[seq[i]] + 1,
					To:       r.arrival[seq[j]],
					Weight:   float64(distance) / speed,
				})
			}
		}
	}
}

// Graph exposes the built routing graph.
func (r *Router) Graph() *graph.DirectedWeighted {
	return r.graph
}

// FindRoute returns the fastest itinerary between two named stops. It
// returns an UnknownStop-flavoured NotFound error when either name is
// absent from the catalogue, and NoRoute when the stops are not connected.
// A same-stop query yields a trivial zero-leg itinerary.
func (r *Router) FindRoute(fromName, toName string) (*Itinerary, error) {
	from, ok := r.cat.FindStop(fromName)
	if !ok {
		return nil, errors.NewNotFound("stop", fromName)
	}
	to, ok := r.cat.FindStop(toName)
	if !ok {
		return nil, errors.NewNotFound("stop", toName)
	}

	if from == to {
		return &Itinerary{}, nil
	}

	fromVertex, okFrom := r.arrival[from]
	toVertex, okTo := r.arrival[to]
	if !okFrom || !okTo {
		// A stop no bus serves has no vertex and cannot be reached.
		return nil, errors.NewNoRoute(fromName, toName)
	}

	info, found := r.inner.BuildRoute(fromVertex, toVertex)
	if !found {
		return nil, errors.NewNoRoute(fromName, toName)
	}

	itinerary := &Itinerary{
		TotalTime: info.Weight,
		Legs:      make([]Leg, 0, len(info.Edges)),
	}
	for _, id := range info.Edges {
		edge := r.graph.Edge(id)
		if edge.Quantity == 0 {
			itinerary.Legs = append(itinerary.Legs, Leg{
				Kind:     LegWait,
				StopName: edge.Title,
				Time:     edge.Weight,
			})
		} else {
			itinerary.Legs = append(itinerary.Legs, Leg{
				Kind:      LegRide,
				Bus:       edge.Title,
				SpanCount: edge.Quantity,
				Time:      edge.Weight,
			})
		}
	}
	return itinerary, nil
}
