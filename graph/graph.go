// Package graph provides the directed weighted graph behind the transit
// router and a label-setting shortest-path solver over it.
package graph

// VertexID identifies a vertex in a directed weighted graph.
type VertexID int

// EdgeID identifies an edge in a directed weighted graph.
type EdgeID int

// Edge is a directed weighted edge annotated with routing metadata: Title
// names the stop (wait edge, Quantity 0) or the bus route (ride edge,
// Quantity = spans travelled).
type Edge struct {
	Title    string
	Quantity int
	From     VertexID
	To       VertexID
	Weight   float64
}

// DirectedWeighted is a directed weighted graph with a fixed vertex count
// and append-only edges.
type DirectedWeighted struct {
	edges     []Edge
	incidence [][]EdgeID
}

// NewDirectedWeighted creates a graph with the given number of vertices and
// no edges.
func NewDirectedWeighted(vertexCount int) *DirectedWeighted {
	return &DirectedWeighted{
		incidence: make([][]EdgeID, vertexCount),
	}
}

// AddEdge appends an edge and returns its id.
func (g *DirectedWeighted) AddEdge(edge Edge) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, edge)
	g.incidence[edge.From] = append(g.incidence[edge.From], id)
	return id
}

// VertexCount returns the number of vertices.
func (g *DirectedWeighted) VertexCount() int {
	return len(g.incidence)
}

// EdgeCount returns the number of edges.
func (g *DirectedWeighted) EdgeCount() int {
	return len(g.edges)
}

// Edge returns the edge with the given id.
func (g *DirectedWeighted) Edge(id EdgeID) Edge {
	return g.edges[id]
}

// IncidentEdges returns the ids of the edges leaving the vertex.
func (g *DirectedWeighted) IncidentEdges(vertex VertexID) []EdgeID {
	return g.incidence[vertex]
}
