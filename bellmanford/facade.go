// File: facade.go
// Role: single-source convenience wrappers over MultiSource, mirroring
// networkx's bellman_ford_path / bellman_ford_path_length /
// single_source_bellman_ford family.

package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/shortestpath/graph"
	"github.com/katalvlaran/shortestpath/spatherr"
	"github.com/katalvlaran/shortestpath/weight"
)

// SingleSource relaxes edges from a one-element source set.
func SingleSource[N comparable](g graph.View[N], source N, w weight.Func[N], opts ...Option[N]) (*Result[N], error) {
	return MultiSource(g, []N{source}, w, opts...)
}

// Length returns the shortest-path cost from source to target, which may
// be negative but never below a reachable negative cycle (MultiSource
// would have already raised spatherr.Unbounded in that case).
func Length[N comparable](g graph.View[N], source, target N, w weight.Func[N], opts ...Option[N]) (float64, error) {
	opts = append(opts, WithTarget[N](target))
	result, err := SingleSource(g, source, w, opts...)
	if err != nil {
		return 0, err
	}
	d, ok := result.Dist[target]
	if !ok {
		return 0, fmt.Errorf("bellmanford: %w: %v", spatherr.NoPath, target)
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
		return nil, fmt.Errorf("bellmanford: %w: %v", spatherr.NoPath, target)
	}

	return p, nil
}

// PathAndLength returns both the canonical shortest path and its cost in
// a single pass.
func PathAndLength[N comparable](g graph.View[N], source, target N, w weight.Func[N], opts ...Option[N]) ([]N, float64, error) {
	opts = append(opts, WithTarget[N](target), WithPaths[N]())
	result, err := SingleSource(g, source, w, opts...)
	if err != nil {
		return nil, 0, err
	}
	p, ok := result.Paths[target]
	if !ok {
		return nil, 0, fmt.Errorf("bellmanford: %w: %v", spatherr.NoPath, target)
	}

	return p, result.Dist[target], nil
}
