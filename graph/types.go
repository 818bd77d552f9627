// File: types.go
// Role: Graph[N], Attrs, GraphOption, edge record, sentinel errors.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph container operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrBadWeight indicates a non-empty attribute bundle on an unweighted graph.
	ErrBadWeight = errors.New("graph: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")

	// ErrEdgeNotFound indicates a RemoveEdge call referenced an unknown edge ID.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// Attrs is an opaque attribute record attached to a single edge. It is the
// edge-data bundle consumed by the weight package's resolver: a weight
// specifier either calls a function (u,v,data) or looks data up by key,
// falling back to 1 when the key is absent.
type Attrs map[string]float64

// edgeRecord is the internal representation of one edge. An undirected
// edge has a single record whose ID is listed in both adjacency buckets.
type edgeRecord[N comparable] struct {
	id    string
	from  N
	to    N
	attrs Attrs
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed   bool
	weighted   bool
	multigraph bool
	loops      bool
}

// WithDirected sets whether new edges are directed (true) or undirected
// (false, the default). An undirected edge is listed in the adjacency of
// both endpoints.
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithWeighted allows non-empty attribute bundles on edges.
func WithWeighted() GraphOption {
	return func(c *graphConfig) { c.weighted = true }
}

// WithMultiEdges permits parallel edges between the same pair of nodes.
func WithMultiEdges() GraphOption {
	return func(c *graphConfig) { c.multigraph = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.loops = true }
}

// Graph is the generic in-memory graph container. The zero value is not
// usable; construct with New.
//
// muNode guards the node set; muEdgeAdj guards the edge catalog and both
// adjacency directions, mirroring the teacher's muVert/muEdgeAdj split.
// Calls that need both (AddNode, RemoveNode, Clear) always take muNode
// first, then muEdgeAdj.
type Graph[N comparable] struct {
	muNode    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	weighted   bool
	multigraph bool
	loops      bool

	nextEdgeID uint64

	nodes     map[N]struct{}
	nodeOrder []N

	edges map[string]*edgeRecord[N]
	// succAdj[u][v] holds every edge id of every u->v edge (>1 only for
	// multigraphs). predAdj mirrors it for directed graphs; for
	// undirected graphs predAdj IS succAdj (same map, shared by both
	// AddEdge insertions).
	succAdj map[N]map[N][]string
	predAdj map[N]map[N][]string
}

// New constructs an empty Graph with the given options. By default the
// graph is undirected, unweighted, single-edge, and loop-free.
func New[N comparable](opts ...GraphOption) *Graph[N] {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[N]{
		directed:   cfg.directed,
		weighted:   cfg.weighted,
		multigraph: cfg.multigraph,
		loops:      cfg.loops,
		nodes:      make(map[N]struct{}),
		edges:      make(map[string]*edgeRecord[N]),
		succAdj:    make(map[N]map[N][]string),
	}
	if g.directed {
		g.predAdj = make(map[N]map[N][]string)
	} else {
		g.predAdj = g.succAdj
	}

	return g
}
