package graph

import (
	"container/heap"
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/utils"
)

// RouteInfo is a shortest path: its total weight and the edge ids along it.
type RouteInfo struct {
	Weight float64
	Edges  []EdgeID
}

// Router answers shortest-path queries over a graph with non-negative edge
// weights. One shortest-path tree is computed per query origin and cached,
// so repeated queries from the same origin only walk predecessors.
type Router struct {
	graph *DirectedWeighted
	trees *utils.RouteCache
}

// NewRouter creates a router over the given graph.
func NewRouter(graph *DirectedWeighted) *Router {
	return &Router{
		graph: graph,
		trees: utils.NewRouteCache(utils.DefaultRouteCacheSize),
	}
}

// shortestPathTree holds, for one source vertex, the distance to every
// vertex and the incoming edge on the shortest path to it.
type shortestPathTree struct {
	dist     []float64
	prevEdge []EdgeID
}

// BuildRoute returns the shortest path between two vertices. The second
// return value is false when the target is unreachable.
func (r *Router) BuildRoute(from, to VertexID) (*RouteInfo, bool) {
	tree := r.treeFrom(from)
	if math.IsInf(tree.dist[to], 1) {
		return nil, false
	}

	var edges []EdgeID
	for v := to; v != from; {
		id := tree.prevEdge[v]
		edges = append(edges, id)
		v = r.graph.Edge(id).From
	}
	// Reverse into path order.
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return &RouteInfo{Weight: tree.dist[to], Edges: edges}, true
}

// CacheStats reports hit/miss statistics of the tree cache.
func (r *Router) CacheStats() utils.CacheStats {
	return r.trees.Stats()
}

func (r *Router) treeFrom(source VertexID) *shortestPathTree {
	if cached, ok := r.trees.Get(int(source)); ok {
		return cached.(*shortestPathTree)
	}
	tree := r.dijkstra(source)
	r.trees.Set(int(source), tree)
	return tree
}

// dijkstra computes the full shortest-path tree from the source.
func (r *Router) dijkstra(source VertexID) *shortestPathTree {
	n := r.graph.VertexCount()
	tree := &shortestPathTree{
		dist:     make([]float64, n),
		prevEdge: make([]EdgeID, n),
	}
	for i := range tree.dist {
		tree.dist[i] = math.Inf(1)
		tree.prevEdge[i] = -1
	}
	tree.dist[source] = 0

	queue := &vertexQueue{{vertex: source, dist: 0}}
	heap.Init(queue)

	for queue.Len() > 0 {
		current := heap.Pop(queue).(queueItem)
		// Stale entry: a shorter path was already settled.
		if current.dist > tree.dist[current.vertex] {
			continue
		}
		for _, id := range r.graph.IncidentEdges(current.vertex) {
			edge := r.graph.Edge(id)
			candidate := current.dist + edge.Weight
			if candidate < tree.dist[edge.To] {
				tree.dist[edge.To] = candidate
				tree.prevEdge[edge.To] = id
				heap.Push(queue, queueItem{vertex: edge.To, dist: candidate})
			}
		}
	}
	return tree
}

// queueItem is a vertex with its tentative distance.
type queueItem struct {
	vertex VertexID
	dist   float64
}

// vertexQueue implements heap.Interface for the Dijkstra frontier.
type vertexQueue []queueItem

func (q vertexQueue) Len() int { return len(q) }

func (q vertexQueue) Less(i, j int) bool {
	return q[i].dist < q[j].dist
}

func (q vertexQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *vertexQueue) Push(x interface{}) {
	*q = append(*q, x.(queueItem))
}

func (q *vertexQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
