// File: bidirectional.go
// Role: bidirectional Dijkstra (spec.md §4.5) — two frontiers, forward
// from source via Succ and backward from target via Pred, alternately
// advanced one pop at a time, meeting in the middle.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/shortestpath/graph"
	"github.com/katalvlaran/shortestpath/spatherr"
	"github.com/katalvlaran/shortestpath/weight"
)

// Bidirectional computes the shortest-path cost and one canonical path
// from source to target, alternating which frontier advances one pop at
// a time (dir := 1 - dir) and returning the instant a popped node is
// already finalized by the other frontier — networkx's
// bidirectional_dijkstra main loop, ported directly.
//
// Earlier drafts of this routine initialized finaldist to 0 and
// finalpath to the empty slice, then overwrote them only when a strictly
// better candidate appeared. That is wrong the first time any meeting
// node is found: a zero-valued finaldist would never be beaten by a
// positive real distance, so the function would return the source's own
// self-distance instead of the true shortest path. This is the same
// uninitialized-finaldist hazard spec.md §9 flags in the original
// source; finaldist starts at +Inf and finalpath at nil so the first
// candidate always wins.
//
// source == target is handled before any search: the answer is (0,
// [source]) regardless of the graph's edges.
func Bidirectional[N comparable](g graph.View[N], source, target N, w weight.Func[N]) ([]N, float64, error) {
	if !g.HasNode(source) {
		return nil, 0, fmt.Errorf("dijkstra: %w: source %v", spatherr.NodeNotFound, source)
	}
	if !g.HasNode(target) {
		return nil, 0, fmt.Errorf("dijkstra: %w: target %v", spatherr.NodeNotFound, target)
	}
	if source == target {
		return []N{source}, 0, nil
	}

	fwd := newFrontier[N](source)
	bwd := newFrontier[N](target)

	finaldist := math.Inf(1)
	var finalpath []N

	dir := 1 // flips to 0 on the first iteration, so forward goes first
	for fwd.pq.Len() > 0 && bwd.pq.Len() > 0 {
		dir = 1 - dir
		forward := dir == 0
		this, other := fwd, bwd
		if !forward {
			this, other = bwd, fwd
		}

		item := heap.Pop(&this.pq).(pqItem[N])
		v, d := item.node, item.dist
		if _, stale := this.dist[v]; stale {
			continue // already finalized via an earlier, cheaper heap entry
		}
		this.dist[v] = d

		if _, met := other.dist[v]; met {
			return finalpath, finaldist, nil
		}

		var nbrs []graph.Neighbor[N]
		var err error
		if forward {
			nbrs, err = g.Succ(v)
		} else {
			nbrs, err = g.Pred(v)
		}
		if err != nil {
			return nil, 0, err
		}

		for _, nb := range nbrs {
			u := nb.To
			var cost float64
			var ok bool
			if forward {
				cost, ok = w(v, u, nb.Data)
			} else {
				cost, ok = w(u, v, nb.Data)
			}
			if !ok {
				continue
			}
			vwLength := d + cost

			if fd, finalized := this.dist[u]; finalized {
				if vwLength < fd {
					return nil, 0, fmt.Errorf("dijkstra: %w: node %v", spatherr.Contradictory, u)
				}
				continue
			}

			sd, known := this.seen[u]
			if known && vwLength >= sd {
				continue
			}
			this.seen[u] = vwLength
			heap.Push(&this.pq, pqItem[N]{dist: vwLength, seq: this.seq, node: u})
			this.seq++
			this.paths[u] = appendPath(this.paths[v], u)

			if od, bothSeen := other.seen[u]; bothSeen {
				total := vwLength + od
				if finalpath == nil || total < finaldist {
					finaldist = total
					fwdPath, bwdPath := this.paths[u], other.paths[u]
					if !forward {
						fwdPath, bwdPath = other.paths[u], this.paths[u]
					}
					tail := append([]N(nil), bwdPath...)
					reverseSlice(tail)
					finalpath = append(append([]N(nil), fwdPath...), tail[1:]...)
				}
			}
		}
	}

	if finalpath == nil {
		return nil, 0, fmt.Errorf("dijkstra: %w: %v -> %v", spatherr.NoPath, source, target)
	}

	return finalpath, finaldist, nil
}

// frontier holds one direction's Dijkstra state during a bidirectional
// search: finalized distances, tentative ("seen") distances, and the
// canonical path from this frontier's root to each seen node.
type frontier[N comparable] struct {
	root  N
	dist  map[N]float64
	seen  map[N]float64
	paths map[N][]N
	seq   uint64
	pq    nodePQ[N]
}

func newFrontier[N comparable](root N) *frontier[N] {
	f := &frontier[N]{
		root:  root,
		dist:  make(map[N]float64),
		seen:  map[N]float64{root: 0},
		paths: map[N][]N{root: {root}},
	}
	heap.Init(&f.pq)
	heap.Push(&f.pq, pqItem[N]{dist: 0, seq: f.seq, node: root})
	f.seq++

	return f
}

func reverseSlice[N any](s []N) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
