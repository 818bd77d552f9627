// File: methods_adjacent.go
// Role: the forward/reverse adjacency views §6 calls the algorithmic core's
// only window onto the graph: Succ and Pred.
package graph

import "sort"

// Neighbor is one entry of a Succ/Pred view: the neighboring node and its
// edge data. Data is an Attrs record for a simple graph, or a
// map[string]Attrs bundle (keyed by parallel-edge ID) for a multigraph —
// exactly the shape spec.md §3 describes for edge-data bundles, and what
// the weight package's Resolve expects to see.
type Neighbor[N comparable] struct {
	To   N
	Data any
}

// Succ returns every (u, edata) pair reachable from v along a forward edge.
// Errors: ErrNodeNotFound if v is absent.
// Complexity: O(deg(v)).
func (g *Graph[N]) Succ(v N) ([]Neighbor[N], error) {
	return g.adjView(v, true)
}

// Pred returns every (u, edata) pair reachable from v along a reverse edge.
// For undirected graphs this coincides with Succ. Errors: ErrNodeNotFound
// if v is absent. Complexity: O(deg(v)).
func (g *Graph[N]) Pred(v N) ([]Neighbor[N], error) {
	return g.adjView(v, false)
}

func (g *Graph[N]) adjView(v N, forward bool) ([]Neighbor[N], error) {
	if !g.HasNode(v) {
		return nil, ErrNodeNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var adj map[N]map[N][]string
	if forward || !g.directed {
		adj = g.succAdj
	} else {
		adj = g.predAdj
	}

	nbrs := adj[v]
	others := make([]N, 0, len(nbrs))
	for to := range nbrs {
		others = append(others, to)
	}
	sort.Slice(others, func(i, j int) bool { return lessAny(others[i], others[j]) })

	out := make([]Neighbor[N], 0, len(others))
	for _, to := range others {
		ids := nbrs[to]
		if g.multigraph {
			bundle := make(map[string]Attrs, len(ids))
			for _, id := range ids {
				bundle[id] = g.edges[id].attrs
			}
			out = append(out, Neighbor[N]{To: to, Data: bundle})
			continue
		}
		// Single-edge graph: at most one id per (v,to) pair.
		var data Attrs
		if len(ids) > 0 {
			data = g.edges[ids[0]].attrs
		}
		out = append(out, Neighbor[N]{To: to, Data: data})
	}

	return out, nil
}

// lessAny provides a best-effort deterministic order over arbitrary
// comparable node types for iteration: it orders by fmt-formatted string
// so that tests (and callers relying on §5's determinism guarantee) see a
// stable order regardless of N's concrete type, without requiring N to
// satisfy any ordering constraint itself (spec.md §9: "must not require Ord").
func lessAny[N comparable](a, b N) bool {
	return formatNode(a) < formatNode(b)
}
