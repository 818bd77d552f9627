// File: goldbergradzik.go
// Role: the alternating topological-scan/relax core (spec.md §4.4).

package goldbergradzik

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortestpath/graph"
	"github.com/katalvlaran/shortestpath/spatherr"
	"github.com/katalvlaran/shortestpath/weight"
)

// Run computes single-source shortest distances and a single-predecessor
// table from source over g, relaxing edges through w.
//
// Preconditions and validation (in order):
//  1. source must exist in g (spatherr.NodeNotFound).
//  2. no self-loop may carry a negative weight (spatherr.Unbounded).
func Run[N comparable](g graph.View[N], source N, w weight.Func[N]) (*Result[N], error) {
	if !g.HasNode(source) {
		return nil, fmt.Errorf("goldbergradzik: %w: source %v", spatherr.NodeNotFound, source)
	}
	if err := selfLoopPrecheck(g, w); err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	if len(nodes) == 1 {
		return &Result[N]{Pred: map[N]*N{source: nil}, Dist: map[N]float64{source: 0}}, nil
	}

	r := &core[N]{
		g:    g,
		w:    w,
		dist: make(map[N]float64, len(nodes)),
		pred: make(map[N]*N, len(nodes)),
	}
	for _, n := range nodes {
		r.dist[n] = math.Inf(1)
	}
	r.dist[source] = 0
	r.pred[source] = nil

	relabeled := []N{source}
	for len(relabeled) > 0 {
		toScan, err := r.topoSort(relabeled)
		if err != nil {
			return nil, err
		}
		relabeled = r.relax(toScan)
	}

	dist := make(map[N]float64, len(r.pred))
	for k := range r.pred {
		dist[k] = r.dist[k]
	}

	return &Result[N]{Pred: r.pred, Dist: dist}, nil
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
				return fmt.Errorf("goldbergradzik: %w: negative self-loop at %v", spatherr.Unbounded, n)
			}
		case map[string]graph.Attrs:
			for _, attrs := range b {
				if cost, ok := w(n, n, attrs); ok && cost < 0 {
					return fmt.Errorf("goldbergradzik: %w: negative self-loop at %v", spatherr.Unbounded, n)
				}
			}
		}
	}

	return nil
}

type core[N comparable] struct {
	g    graph.View[N]
	w    weight.Func[N]
	dist map[N]float64
	pred map[N]*N
}

// stackFrame is one DFS frame: the node, its successors fetched once, and
// the next index to examine — Go's stand-in for Python's resumable
// iterator in the nonrecursive DFS.
type stackFrame[N comparable] struct {
	node N
	succ []graph.Neighbor[N]
	idx  int
}

// topoSort runs the nonrecursive DFS over nodes relabeled in the
// previous round, inserting every node reachable via a chain of
// nonpositive-reduced-cost edges into to_scan in reverse topological
// order, and raises spatherr.Unbounded the instant a back edge closes a
// negative-cost cycle.
func (r *core[N]) topoSort(relabeled []N) ([]N, error) {
	var toScan []N
	negCount := make(map[N]int) // also doubles as the visited marker

	for _, start := range relabeled {
		if _, visited := negCount[start]; visited {
			continue
		}

		succStart, err := r.g.Succ(start)
		if err != nil {
			return nil, err
		}
		hasNegReduced := false
		for _, nb := range succStart {
			cost, ok := r.w(start, nb.To, nb.Data)
			if !ok {
				continue
			}
			if r.dist[start]+cost < r.dist[nb.To] {
				hasNegReduced = true
				break
			}
		}
		if !hasNegReduced {
			continue
		}

		stack := []*stackFrame[N]{{node: start, succ: succStart}}
		inStack := map[N]bool{start: true}
		negCount[start] = 0

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.idx >= len(top.succ) {
				toScan = append(toScan, top.node)
				stack = stack[:len(stack)-1]
				delete(inStack, top.node)
				continue
			}
			nb := top.succ[top.idx]
			top.idx++
			v := nb.To
			cost, ok := r.w(top.node, v, nb.Data)
			if !ok {
				continue
			}
			t := r.dist[top.node] + cost
			dv := r.dist[v]
			if t > dv {
				continue
			}
			isNeg := t < dv
			r.dist[v] = t
			parent := top.node
			r.pred[v] = &parent

			if _, seen := negCount[v]; !seen {
				inc := 0
				if isNeg {
					inc = 1
				}
				negCount[v] = negCount[top.node] + inc
				succV, err := r.g.Succ(v)
				if err != nil {
					return nil, err
				}
				stack = append(stack, &stackFrame[N]{node: v, succ: succV})
				inStack[v] = true
			} else if inStack[v] {
				inc := 0
				if isNeg {
					inc = 1
				}
				if negCount[top.node]+inc > negCount[v] {
					return nil, fmt.Errorf("goldbergradzik: %w: cycle through %v", spatherr.Unbounded, v)
				}
			}
		}
	}

	reverseSlice(toScan)

	return toScan, nil
}

// relax scans to_scan in topological order and relaxes each node's
// out-edges with strict inequality, returning the set of relabeled
// nodes for the next round.
func (r *core[N]) relax(toScan []N) []N {
	seen := make(map[N]bool)
	var relabeled []N

	for _, u := range toScan {
		du := r.dist[u]
		nbrs, err := r.g.Succ(u)
		if err != nil {
			continue
		}
		for _, nb := range nbrs {
			v := nb.To
			cost, ok := r.w(u, v, nb.Data)
			if !ok {
				continue
			}
			if du+cost < r.dist[v] {
				r.dist[v] = du + cost
				parent := u
				r.pred[v] = &parent
				if !seen[v] {
					seen[v] = true
					relabeled = append(relabeled, v)
				}
			}
		}
	}

	return relabeled
}

func reverseSlice[N any](s []N) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
