// File: methods_clone.go
// Role: CloneEmpty/Clone/Clear, mirroring core/methods_clone.go's shape.
package graph

// CloneEmpty returns a new Graph with the same configuration flags and
// node set, but no edges. Complexity: O(V).
func (g *Graph[N]) CloneEmpty() *Graph[N] {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := New[N](
		WithDirected(g.directed),
		withWeightedIf(g.weighted),
		withMultiIf(g.multigraph),
		withLoopsIf(g.loops),
	)
	for _, n := range g.nodeOrder {
		out.AddNode(n)
	}

	return out
}

// Clone returns a deep copy of the graph: configuration, nodes, and edges.
// Complexity: O(V+E).
func (g *Graph[N]) Clone() *Graph[N] {
	out := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	// Each edge (directed or undirected) has exactly one edgeRecord —
	// undirected edges are registered in both adjacency directions but
	// never duplicated in the edge catalog — so a single pass suffices.
	for _, id := range g.edgeIDs() {
		rec := g.edges[id]
		_, _ = out.AddEdge(rec.from, rec.to, rec.attrs)
	}

	return out
}

// Clear removes every node and edge, preserving configuration flags.
// Complexity: O(1).
func (g *Graph[N]) Clear() {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.nodes = make(map[N]struct{})
	g.nodeOrder = nil
	g.edges = make(map[string]*edgeRecord[N])
	g.succAdj = make(map[N]map[N][]string)
	if g.directed {
		g.predAdj = make(map[N]map[N][]string)
	} else {
		g.predAdj = g.succAdj
	}
	g.nextEdgeID = 0
}

func withWeightedIf(b bool) GraphOption {
	return func(c *graphConfig) { c.weighted = b }
}

func withMultiIf(b bool) GraphOption {
	return func(c *graphConfig) { c.multigraph = b }
}

func withLoopsIf(b bool) GraphOption {
	return func(c *graphConfig) { c.loops = b }
}
