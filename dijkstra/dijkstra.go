// File: dijkstra.go
// Role: the multi-source Dijkstra core (spec.md §4.2).
//
// Notes on implementation choices (kept from the teacher):
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries once a node is finalized.
//   - Negative weights are detected post-hoc, the instant relaxation would
//     improve an already-finalized node — spec.md §4.2 step 4 — rather
//     than the teacher's upfront full-edge scan, which isn't possible
//     once weights come from an arbitrary callable (weight.Func) instead
//     of a single concrete field.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/shortestpath/graph"
	"github.com/katalvlaran/shortestpath/spatherr"
	"github.com/katalvlaran/shortestpath/weight"
)

// MultiSource computes shortest distances from every node in sources to
// every reachable node in g, relaxing edges through w.
//
// Preconditions and validation (in order):
//  1. sources must be non-empty (spatherr.ValueError).
//  2. every source must exist in g (spatherr.NodeNotFound).
//
// Returns spatherr.Contradictory the instant a relaxation would improve
// an already-finalized node's distance — the Dijkstra invariant violation
// that signals a negative edge weight reached the core.
//
// Complexity: O((V+E) log V). Space: O(V+E).
func MultiSource[N comparable](g graph.View[N], sources []N, w weight.Func[N], opts ...Option[N]) (*Result[N], error) {
	cfg := Options[N]{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("dijkstra: %w: sources must be non-empty", spatherr.ValueError)
	}
	for _, s := range sources {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("dijkstra: %w: source %v", spatherr.NodeNotFound, s)
		}
	}

	r := &runner[N]{
		g:        g,
		w:        w,
		opts:     cfg,
		dist:     make(map[N]float64, g.NodeCount()),
		seen:     make(map[N]float64, g.NodeCount()),
		isSource: make(map[N]bool, len(sources)),
	}
	if cfg.WantPred {
		r.pred = make(map[N][]N, g.NodeCount())
	}
	if cfg.WantPaths {
		r.paths = make(map[N][]N, g.NodeCount())
	}

	r.init(sources)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result[N]{Dist: r.dist, Pred: r.pred, Paths: r.paths}, nil
}

// runner holds the mutable state of a single MultiSource execution.
type runner[N comparable] struct {
	g    graph.View[N]
	w    weight.Func[N]
	opts Options[N]

	dist map[N]float64 // finalized distances
	seen map[N]float64 // tentative distances of nodes in the fringe

	pred  map[N][]N // nil unless requested
	paths map[N][]N // nil unless requested

	isSource map[N]bool
	seq      uint64
	pq       nodePQ[N]
}

func (r *runner[N]) init(sources []N) {
	heap.Init(&r.pq)
	for _, s := range sources {
		r.isSource[s] = true
		init := 0.0
		if r.opts.NodeWeight != nil {
			init = r.opts.NodeWeight[s]
		}
		r.seen[s] = init
		heap.Push(&r.pq, pqItem[N]{dist: init, seq: r.seq, node: s})
		r.seq++
		if r.paths != nil {
			r.paths[s] = []N{s}
		}
		if r.pred != nil {
			r.pred[s] = []N{}
		}
	}
}

func (r *runner[N]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(pqItem[N])
		v, d := item.node, item.dist

		if _, finalized := r.dist[v]; finalized {
			continue // stale lazy-decrease-key entry
		}
		if r.opts.HasCutoff && d > r.opts.Cutoff {
			break // heap pops in non-decreasing order: nothing further qualifies
		}
		r.dist[v] = d
		if r.opts.HasTarget && v == r.opts.Target {
			break
		}

		if err := r.relax(v, d); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner[N]) relax(v N, d float64) error {
	nbrs, err := r.g.Succ(v)
	if err != nil {
		return err
	}

	for _, nb := range nbrs {
		u := nb.To
		cost, ok := r.w(v, u, nb.Data)
		if !ok {
			continue // hidden edge
		}
		if r.opts.NodeWeight != nil {
			cost += r.opts.NodeWeight[u]
		}
		newDist := d + cost
		if r.opts.HasCutoff && newDist > r.opts.Cutoff {
			continue
		}

		if fd, finalized := r.dist[u]; finalized {
			if newDist < fd {
				return fmt.Errorf("dijkstra: %w: node %v", spatherr.Contradictory, u)
			}
			if newDist == fd && r.pred != nil && !r.isSource[u] {
				r.pred[u] = append(r.pred[u], v)
			}
			continue
		}

		sd, known := r.seen[u]
		switch {
		case !known || newDist < sd:
			r.seen[u] = newDist
			heap.Push(&r.pq, pqItem[N]{dist: newDist, seq: r.seq, node: u})
			r.seq++
			if r.paths != nil {
				r.paths[u] = appendPath(r.paths[v], u)
			}
			if r.pred != nil && !r.isSource[u] {
				r.pred[u] = []N{v}
			}
		case newDist == sd:
			if r.pred != nil && !r.isSource[u] {
				r.pred[u] = append(r.pred[u], v)
			}
		}
	}

	return nil
}

func appendPath[N any](prefix []N, tail N) []N {
	out := make([]N, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = tail

	return out
}

// pqItem is one priority-queue entry: (tentative_distance, insertion_seq,
// node). seq breaks ties deterministically and is the reason the queue
// never needs N to be orderable (spec.md §9).
type pqItem[N comparable] struct {
	dist float64
	seq  uint64
	node N
}

// nodePQ is a min-heap of pqItem ordered by (dist, seq) ascending.
type nodePQ[N comparable] []pqItem[N]

func (pq nodePQ[N]) Len() int { return len(pq) }
func (pq nodePQ[N]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}
func (pq nodePQ[N]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[N]) Push(x any)        { *pq = append(*pq, x.(pqItem[N])) }
func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
