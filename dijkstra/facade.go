// File: facade.go
// Role: single-source convenience wrappers over MultiSource, matching
// the shape of networkx's single_source_dijkstra / dijkstra_path /
// dijkstra_path_length / dijkstra_path_length family (spec.md §4.2,
// §3 supplemented features).

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/shortestpath/graph"
	"github.com/katalvlaran/shortestpath/pathutil"
	"github.com/katalvlaran/shortestpath/spatherr"
	"github.com/katalvlaran/shortestpath/weight"
)

// SingleSource computes shortest distances from source to every reachable
// node. It is MultiSource with a one-element source set.
func SingleSource[N comparable](g graph.View[N], source N, w weight.Func[N], opts ...Option[N]) (*Result[N], error) {
	return MultiSource(g, []N{source}, w, opts...)
}

// Length returns the shortest-path cost from source to target.
//
// Every caller option, including WithNodeWeight, is forwarded unchanged
// to SingleSource; networkx's single_source_dijkstra_path_length instead
// drops the caller's node weight, and this wrapper deliberately does not.
// If target is absent from the resulting Dist (a comma-ok lookup),
// Length returns spatherr.NoPath rather than a zero distance.
func Length[N comparable](g graph.View[N], source, target N, w weight.Func[N], opts ...Option[N]) (float64, error) {
	opts = append(opts, WithTarget[N](target))
	result, err := SingleSource(g, source, w, opts...)
	if err != nil {
		return 0, err
	}
	d, ok := result.Dist[target]
	if !ok {
		return 0, fmt.Errorf("dijkstra: %w: %v", spatherr.NoPath, target)
	}

	return d, nil
}

// Path returns the canonical shortest path from source to target.
func Path[N comparable](g graph.View[N], source, target N, w weight.Func[N], opts ...Option[N]) ([]N, error) {
	opts = append(opts, WithTarget[N](target), WithPaths[N]())
	result, err := SingleSource(g, source, w, opts...)
	if err != nil {
		return nil, err
	}
	p, ok := result.Paths[target]
	if !ok {
		return nil, fmt.Errorf("dijkstra: %w: %v", spatherr.NoPath, target)
	}

	return p, nil
}

// PathAndLength returns both the canonical shortest path and its cost in
// a single pass — the supplemented single_source_dijkstra equivalent,
// sparing callers a second traversal when both are needed together.
func PathAndLength[N comparable](g graph.View[N], source, target N, w weight.Func[N], opts ...Option[N]) ([]N, float64, error) {
	opts = append(opts, WithTarget[N](target), WithPaths[N]())
	result, err := SingleSource(g, source, w, opts...)
	if err != nil {
		return nil, 0, err
	}
	p, ok := result.Paths[target]
	if !ok {
		return nil, 0, fmt.Errorf("dijkstra: %w: %v", spatherr.NoPath, target)
	}

	return p, result.Dist[target], nil
}

// AllShortestPaths enumerates every co-optimal shortest path from source
// to target, using the co-optimal predecessor lists MultiSource builds
// when WithPredecessors is requested.
func AllShortestPaths[N comparable](g graph.View[N], source, target N, w weight.Func[N], opts ...Option[N]) ([][]N, error) {
	opts = append(opts, WithPredecessors[N]())
	result, err := SingleSource(g, source, w, opts...)
	if err != nil {
		return nil, err
	}
	if _, ok := result.Dist[target]; !ok {
		return nil, fmt.Errorf("dijkstra: %w: %v", spatherr.NoPath, target)
	}
	isSource := func(n N) bool { return n == source }

	return pathutil.AllShortestPaths(result.Pred, isSource, target)
}
