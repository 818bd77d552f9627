// File: negcycle.go
// Role: the fresh-sentinel-node negative-cycle probe (spec.md §4.7).

package negcycle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortestpath/bellmanford"
	"github.com/katalvlaran/shortestpath/graph"
	"github.com/katalvlaran/shortestpath/spatherr"
	"github.com/katalvlaran/shortestpath/weight"
)

// Exists reports whether g contains a negative-cost cycle reachable from
// anywhere, by adding sentinel with zero-weight edges to every existing
// node, running Bellman-Ford from it, and removing sentinel before
// returning on every exit path.
//
// sentinel must not already be a node of g (spatherr.ValueError).
func Exists[N comparable](g *graph.Graph[N], sentinel N, w weight.Func[N]) (bool, error) {
	if g.HasNode(sentinel) {
		return false, fmt.Errorf("negcycle: %w: sentinel %v already present", spatherr.ValueError, sentinel)
	}

	existing := g.Nodes()
	g.AddNode(sentinel)
	for _, n := range existing {
		_, err := g.AddEdge(sentinel, n, nil)
		if err != nil {
			// Should not happen on a freshly added sentinel, but clean up
			// whatever partial state exists before surfacing the error.
			cleanup(g, sentinel)
			return false, err
		}
	}

	wrapped := func(u, v N, edata any) (float64, bool) {
		if u == sentinel {
			return 0, true
		}

		return w(u, v, edata)
	}

	_, err := bellmanford.SingleSource[N](g, sentinel, wrapped)
	cleanup(g, sentinel)

	if err != nil {
		if errors.Is(err, spatherr.Unbounded) {
			return true, nil
		}

		return false, err
	}

	return false, nil
}

func cleanup[N comparable](g *graph.Graph[N], sentinel N) {
	g.RemoveNode(sentinel)
}
