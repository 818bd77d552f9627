// File: methods_selfloop.go
// Role: self-loop enumeration, used by the Bellman-Ford/Goldberg-Radzik
// self-loop precheck (spec.md §4.3, §4.4).
package graph

// SelfLoops returns the attribute bundle(s) of every self-loop edge on v.
// For a multigraph this is the same keyed-by-edge-ID bundle Succ returns;
// for a simple graph it is a single Attrs record (nil if v has no loop).
// Complexity: O(1).
func (g *Graph[N]) SelfLoops(v N) any {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := g.succAdj[v][v]
	if len(ids) == 0 {
		return nil
	}
	if g.multigraph {
		bundle := make(map[string]Attrs, len(ids))
		for _, id := range ids {
			bundle[id] = g.edges[id].attrs
		}
		return bundle
	}

	return g.edges[ids[0]].attrs
}
