// Package engine processes transport-catalogue request documents: it
// ingests the base requests into a sealed catalogue, then answers the stat
// requests against it, producing one response entry per request in request
// order.
//
// Basic usage:
//
//	options := engine.DefaultOptions()
//	result, err := engine.ProcessFile("requests.json", options)
//	if err != nil {
//		log.Fatal(err)
//	}
//	output, err := result.ToJSON()
//
// Ingestion errors are fatal; per-query errors (unknown names, unroutable
// pairs) become error entries in the response array.
package engine

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/errors"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/logging"
	"github.com/theoremus-urban-solutions/transport-catalogue/render"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
	"github.com/theoremus-urban-solutions/transport-catalogue/stat"
)

// Engine processes request documents.
type Engine struct {
	options *Options
	logger  *logging.Logger
}

// New creates an engine with the given options. Nil options fall back to
// DefaultOptions.
func New(options *Options) *Engine {
	if options == nil {
		options = DefaultOptions()
	}
	return &Engine{
		options: options,
		logger:  options.GetLogger(),
	}
}

// Process reads a request document and answers its stat requests using the
// given options.
func Process(input io.Reader, options *Options) (*Result, error) {
	return New(options).Run(input)
}

// ProcessBytes processes an in-memory request document.
func ProcessBytes(data []byte, options *Options) (*Result, error) {
	return Process(bytes.NewReader(data), options)
}

// ProcessFile processes a request document from a file.
func ProcessFile(path string, options *Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewParseError("failed to open input file", err)
	}
	defer f.Close()
	return Process(f, options)
}

// Run decodes the request document, ingests the network and answers the
// stat requests. Returned errors are fatal (ParseError or InvalidInput);
// query-level failures are reported inside the result instead.
func (e *Engine) Run(input io.Reader) (*Result, error) {
	started := time.Now()

	var doc document
	decoder := json.NewDecoder(input)
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.NewParseError("malformed request document", err)
	}

	result := &Result{}
	ingestStarted := time.Now()
	cat, err := e.ingest(&doc, result)
	if err != nil {
		return nil, err
	}
	e.logger.IngestComplete(result.StopsLoaded, result.BusesLoaded, result.DistancesLoaded, time.Since(ingestStarted))

	session := &querySession{
		engine: e,
		doc:    &doc,
		cat:    cat,
		stats:  stat.NewEngine(cat),
	}
	for _, request := range doc.StatRequests {
		requestStarted := time.Now()
		response, err := session.answer(request)
		if err != nil {
			if errors.IsFatal(err) {
				return nil, err
			}
			e.logger.QueryFailed(request.ID, request.Type, err)
			response = errorResponse{RequestID: request.ID, ErrorMessage: "not found"}
			result.ErrorResponses++
		} else {
			e.logger.QueryCompleted(request.ID, request.Type, time.Since(requestStarted))
		}
		result.Responses = append(result.Responses, response)
	}

	result.ProcessingTime = time.Since(started)
	return result, nil
}

// ingest populates the catalogue: all stops first, then all distances,
// then all buses, independent of entry order in the document.
func (e *Engine) ingest(doc *document, result *Result) (*catalogue.Catalogue, error) {
	builder := catalogue.NewBuilder().WithLenientStops(!e.options.StrictUnknownStops)

	for i := range doc.BaseRequests {
		request := &doc.BaseRequests[i]
		if request.Type != requestTypeStop {
			continue
		}
		coords := geo.Coordinates{Lat: request.Latitude, Lng: request.Longitude}
		if err := builder.AddStop(request.Name, coords); err != nil {
			return nil, err
		}
		result.StopsLoaded++
	}

	for i := range doc.BaseRequests {
		request := &doc.BaseRequests[i]
		if request.Type != requestTypeStop {
			continue
		}
		for toName, metres := range request.RoadDistances {
			if err := builder.SetDistance(request.Name, toName, metres); err != nil {
				return nil, err
			}
			result.DistancesLoaded++
		}
	}

	for i := range doc.BaseRequests {
		request := &doc.BaseRequests[i]
		if request.Type != requestTypeBus {
			continue
		}
		err := builder.AddRoute(request.Name, request.Stops, request.IsRoundtrip)
		if err != nil {
			// A bus referencing unknown stops is refused; the rest of
			// the dataset still loads.
			e.logger.BusRejected(request.Name, err.Error())
			result.BusesRejected++
			continue
		}
		result.BusesLoaded++
	}

	return builder.Build(), nil
}

// querySession holds the lazily constructed query components of one run.
type querySession struct {
	engine   *Engine
	doc      *document
	cat      *catalogue.Catalogue
	stats    *stat.Engine
	renderer *render.MapRenderer
	router   *routing.Router
}

// answer dispatches one stat request.
func (s *querySession) answer(request statRequest) (interface{}, error) {
	switch request.Type {
	case requestTypeStop:
		buses, err := s.stats.BusesAtStop(request.Name)
		if err != nil {
			return nil, err
		}
		if buses == nil {
			buses = []string{}
		}
		return stopResponse{RequestID: request.ID, Buses: buses}, nil

	case requestTypeBus:
		routeStats, err := s.stats.RouteStats(request.Name)
		if err != nil {
			return nil, err
		}
		return busResponse{
			RequestID:       request.ID,
			Curvature:       routeStats.Curvature,
			RouteLength:     routeStats.RouteLength,
			StopCount:       routeStats.StopsCount,
			UniqueStopCount: routeStats.UniqueStopsCount,
		}, nil

	case requestTypeMap:
		svgText, err := s.renderMap()
		if err != nil {
			return nil, err
		}
		return mapResponse{RequestID: request.ID, Map: svgText}, nil

	case requestTypeRoute:
		itinerary, err := s.findRoute(request.From, request.To)
		if err != nil {
			return nil, err
		}
		items := make([]routeItem, 0, len(itinerary.Legs))
		for _, leg := range itinerary.Legs {
			if leg.Kind == routing.LegWait {
				items = append(items, routeItem{
					Type:     "Wait",
					StopName: leg.StopName,
					Time:     leg.Time,
				})
			} else {
				items = append(items, routeItem{
					Type:      "Bus",
					Bus:       leg.Bus,
					SpanCount: leg.SpanCount,
					Time:      leg.Time,
				})
			}
		}
		return routeResponse{
			RequestID: request.ID,
			TotalTime: itinerary.TotalTime,
			Items:     items,
		}, nil

	default:
		return nil, errors.Newf(errors.ParseError, "unknown stat request type %q", request.Type)
	}
}

// renderMap lazily constructs the renderer, then draws the network.
func (s *querySession) renderMap() (string, error) {
	if s.renderer == nil {
		if s.doc.RenderSettings == nil {
			return "", errors.NewInvalidInput("render_settings are required for Map requests")
		}
		settings, err := s.doc.RenderSettings.toSettings()
		if err != nil {
			return "", err
		}
		renderer, err := render.NewMapRenderer(settings)
		if err != nil {
			return "", err
		}
		s.renderer = renderer
	}

	started := time.Now()
	doc, err := s.renderer.Render(s.cat)
	if err != nil {
		return "", err
	}
	s.engine.logger.RenderCompleted(len(s.cat.SortedBuses()), len(s.cat.SortedStops()), time.Since(started))
	return doc.RenderString(), nil
}

// findRoute lazily builds the transit router, then answers the query.
func (s *querySession) findRoute(from, to string) (*routing.Itinerary, error) {
	if s.router == nil {
		if s.doc.RoutingSettings == nil {
			return nil, errors.NewInvalidInput("routing_settings are required for Route requests")
		}
		started := time.Now()
		router, err := routing.NewRouter(s.cat, s.doc.RoutingSettings.toSettings())
		if err != nil {
			return nil, err
		}
		s.router = router
		g := router.Graph()
		s.engine.logger.GraphBuilt(g.VertexCount(), g.EdgeCount(), time.Since(started))
	}
	return s.router.FindRoute(from, to)
}
