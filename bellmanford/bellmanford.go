// File: bellmanford.go
// Role: the deque-based Bellman-Ford / SPFA core (spec.md §4.3), ported
// from networkx's _bellman_ford: relax from a FIFO deque seeded with the
// sources, skipping a node's relaxation while any of its recorded
// predecessors is still pending, with an optional heuristic that detects
// a negative cycle the instant an update path revisits a node.

package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/shortestpath/graph"
	"github.com/katalvlaran/shortestpath/pathutil"
	"github.com/katalvlaran/shortestpath/spatherr"
	"github.com/katalvlaran/shortestpath/weight"
)

// recentUpdate is the heuristic's two-element tuple (u,v): the most
// recent edge that improved a node along its current update chain. The
// zero value has present == false and matches no node, so it serves as
// the "no edge yet" entry for sources even when N's zero value is itself
// a node of the graph.
type recentUpdate[N comparable] struct {
	a, b    N
	present bool
}

func (r recentUpdate[N]) contains(v N) bool {
	return r.present && (r.a == v || r.b == v)
}

// MultiSource relaxes edges from every node in sources until the deque
// drains or a negative cycle is detected.
//
// Preconditions and validation (in order):
//  1. every source must exist in g (spatherr.NodeNotFound).
//  2. no self-loop may carry a negative weight (spatherr.Unbounded).
//
// Complexity: O(V*E) worst case.
func MultiSource[N comparable](g graph.View[N], sources []N, w weight.Func[N], opts ...Option[N]) (*Result[N], error) {
	cfg := Options[N]{}
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, s := range sources {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("bellmanford: %w: source %v", spatherr.NodeNotFound, s)
		}
	}
	if err := selfLoopPrecheck(g, w); err != nil {
		return nil, err
	}

	r := &runner[N]{
		g:           g,
		w:           w,
		opts:        cfg,
		n:           g.NodeCount(),
		dist:        make(map[N]float64, g.NodeCount()),
		pred:        make(map[N][]N, g.NodeCount()),
		predEdge:    make(map[N]N),
		hasPredEdge: make(map[N]bool),
		recent:      make(map[N]recentUpdate[N]),
		inQueue:     make(map[N]bool, len(sources)),
		count:       make(map[N]int),
	}
	r.init(sources)
	if err := r.run(); err != nil {
		return nil, err
	}

	result := &Result[N]{Dist: r.dist}
	if cfg.WantPred {
		result.Pred = r.pred
	}
	if cfg.WantPaths {
		paths, err := r.materializePaths(sources)
		if err != nil {
			return nil, err
		}
		result.Paths = paths
	}

	return result, nil
}

func selfLoopPrecheck[N comparable](g graph.View[N], w weight.Func[N]) error {
	for _, n := range g.Nodes() {
		bundle := g.SelfLoops(n)
		if bundle == nil {
			continue
		}
		switch b := bundle.(type) {
		case graph.Attrs:
			if cost, ok := w(n, n, b); ok && cost < 0 {
				return fmt.Errorf("bellmanford: %w: negative self-loop at %v", spatherr.Unbounded, n)
			}
		case map[string]graph.Attrs:
			for _, attrs := range b {
				if cost, ok := w(n, n, attrs); ok && cost < 0 {
					return fmt.Errorf("bellmanford: %w: negative self-loop at %v", spatherr.Unbounded, n)
				}
			}
		}
	}

	return nil
}

type runner[N comparable] struct {
	g    graph.View[N]
	w    weight.Func[N]
	opts Options[N]
	n    int

	dist        map[N]float64
	pred        map[N][]N
	predEdge    map[N]N
	hasPredEdge map[N]bool
	recent      map[N]recentUpdate[N]

	inQueue map[N]bool
	count   map[N]int
	deque   []N
}

func (r *runner[N]) init(sources []N) {
	if r.opts.InitialDist != nil {
		for k, v := range r.opts.InitialDist {
			r.dist[k] = v
		}
	}
	for _, s := range sources {
		if _, ok := r.dist[s]; !ok {
			r.dist[s] = 0
		}
		r.pred[s] = []N{}
		r.recent[s] = recentUpdate[N]{} // present=false: nonexistent_edge sentinel, matches nothing
		r.deque = append(r.deque, s)
		r.inQueue[s] = true
	}
}

func (r *runner[N]) run() error {
	for len(r.deque) > 0 {
		u := r.deque[0]
		r.deque = r.deque[1:]
		r.inQueue[u] = false

		if !r.predecessorsSettled(u) {
			continue
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// predecessorsSettled reports whether none of u's recorded predecessors
// is still pending in the queue — the SPFA optimization that defers
// relaxing u's successors until its own distance is stable.
func (r *runner[N]) predecessorsSettled(u N) bool {
	for _, p := range r.pred[u] {
		if r.inQueue[p] {
			return false
		}
	}

	return true
}

func (r *runner[N]) relax(u N) error {
	distU := r.dist[u]
	nbrs, err := r.g.Succ(u)
	if err != nil {
		return err
	}

	for _, nb := range nbrs {
		v := nb.To
		cost, ok := r.w(u, v, nb.Data)
		if !ok {
			continue
		}
		distV, known := r.dist[v]
		newDist := distU + cost

		if !known || newDist < distV {
			if !r.opts.NoHeuristic {
				if r.recent[u].contains(v) {
					return fmt.Errorf("bellmanford: %w: negative cost cycle at %v", spatherr.Unbounded, v)
				}
				if r.hasPredEdge[v] && r.predEdge[v] == u {
					r.recent[v] = r.recent[u]
				} else {
					r.recent[v] = recentUpdate[N]{a: u, b: v, present: true}
				}
			}

			if !r.inQueue[v] {
				r.deque = append(r.deque, v)
				r.inQueue[v] = true
				r.count[v]++
				if r.count[v] == r.n {
					return fmt.Errorf("bellmanford: %w: cycle count reached %d at %v", spatherr.Unbounded, r.n, v)
				}
			}
			r.dist[v] = newDist
			r.pred[v] = []N{u}
			r.predEdge[v] = u
			r.hasPredEdge[v] = true
		} else if known && newDist == distV {
			r.pred[v] = append(r.pred[v], u)
		}
	}

	return nil
}

func (r *runner[N]) materializePaths(sources []N) (map[N][]N, error) {
	isSource := make(map[N]bool, len(sources))
	for _, s := range sources {
		isSource[s] = true
	}
	accept := func(n N) bool { return isSource[n] }

	paths := make(map[N][]N, len(r.dist))
	targets := r.targets()
	for _, t := range targets {
		p, err := pathutil.BuildPath(r.pred, accept, t)
		if err != nil {
			return nil, err
		}
		paths[t] = p
	}

	return paths, nil
}

func (r *runner[N]) targets() []N {
	if r.opts.HasTarget {
		if _, ok := r.dist[r.opts.Target]; !ok {
			return nil
		}

		return []N{r.opts.Target}
	}
	out := make([]N, 0, len(r.pred))
	for k := range r.pred {
		out = append(out, k)
	}

	return out
}
