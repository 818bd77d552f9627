// File: methods_nodes.go
// Role: node lifecycle — AddNode/HasNode/RemoveNode/Nodes/NodeCount.
package graph

// AddNode inserts a node into the graph if absent; idempotent.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddNode(n N) {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[n]; exists {
		return
	}
	g.nodes[n] = struct{}{}
	g.nodeOrder = append(g.nodeOrder, n)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.succAdj[n]; !ok {
		g.succAdj[n] = make(map[N][]string)
	}
	if g.directed {
		if _, ok := g.predAdj[n]; !ok {
			g.predAdj[n] = make(map[N][]string)
		}
	}
}

// HasNode reports whether id is present in the graph. Complexity: O(1).
func (g *Graph[N]) HasNode(n N) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	_, ok := g.nodes[n]
	return ok
}

// RemoveNode deletes n and every edge incident to it. No-op if n is absent.
// Used only by the negative-cycle probe, which must restore the graph to
// its prior state on every exit path (success or error).
// Complexity: O(deg(n) + V) — the V term comes from scanning every other
// node's adjacency bucket to drop edges that terminate at n.
func (g *Graph[N]) RemoveNode(n N) {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.nodes[n]; !ok {
		return
	}
	delete(g.nodes, n)
	for i, v := range g.nodeOrder {
		if v == n {
			g.nodeOrder = append(g.nodeOrder[:i], g.nodeOrder[i+1:]...)
			break
		}
	}

	for _, eid := range g.succAdj[n] {
		for _, id := range eid {
			delete(g.edges, id)
		}
	}
	delete(g.succAdj, n)
	if g.directed {
		for _, eid := range g.predAdj[n] {
			for _, id := range eid {
				delete(g.edges, id)
			}
		}
		delete(g.predAdj, n)
	}

	for _, nbrs := range g.succAdj {
		if ids, ok := nbrs[n]; ok {
			for _, id := range ids {
				delete(g.edges, id)
			}
			delete(nbrs, n)
		}
	}
	if g.directed {
		for _, nbrs := range g.predAdj {
			if ids, ok := nbrs[n]; ok {
				for _, id := range ids {
					delete(g.edges, id)
				}
				delete(nbrs, n)
			}
		}
	}
}

// Nodes returns every node in the graph, in insertion order.
// Complexity: O(V).
func (g *Graph[N]) Nodes() []N {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]N, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph[N]) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}
