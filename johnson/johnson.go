// File: johnson.go
// Role: the Bellman-Ford reweighting + per-source Dijkstra coordinator
// (spec.md §4.6).

package johnson

import (
	"fmt"

	"github.com/katalvlaran/shortestpath/bellmanford"
	"github.com/katalvlaran/shortestpath/dijkstra"
	"github.com/katalvlaran/shortestpath/graph"
	"github.com/katalvlaran/shortestpath/spatherr"
	"github.com/katalvlaran/shortestpath/weight"
)

// AllPairs computes, for every node v in g, the canonical shortest path
// from v to every other reachable node, via Johnson's algorithm.
//
// Precondition: g must be weighted (spatherr.DomainError otherwise).
func AllPairs[N comparable](g graph.View[N], w weight.Func[N]) (map[N]map[N][]N, error) {
	if !g.Weighted() {
		return nil, fmt.Errorf("johnson: %w: graph is not weighted", spatherr.DomainError)
	}

	nodes := g.Nodes()
	if len(nodes) == 0 {
		return map[N]map[N][]N{}, nil
	}

	initialDist := make(map[N]float64, len(nodes))
	for _, n := range nodes {
		initialDist[n] = 0
	}

	potential, err := bellmanford.MultiSource[N](g, nodes, w, bellmanford.WithInitialDist[N](initialDist))
	if err != nil {
		return nil, err
	}
	h := potential.Dist

	reweighted := func(u, v N, edata any) (float64, bool) {
		cost, ok := w(u, v, edata)
		if !ok {
			return 0, false
		}

		return cost + h[u] - h[v], true
	}

	out := make(map[N]map[N][]N, len(nodes))
	for _, src := range nodes {
		result, err := dijkstra.SingleSource[N](g, src, reweighted, dijkstra.WithPaths[N]())
		if err != nil {
			return nil, err
		}
		out[src] = result.Paths
	}

	return out, nil
}
