package pathutil

import "errors"

// ErrNoPath indicates the predecessor table does not connect target to any
// recognized source (the walk ran off the table without hitting one).
var ErrNoPath = errors.New("pathutil: no path to any source")

// BuildPath walks pred back from target, always following the first
// recorded predecessor (pred[v][0]), until it reaches a node isSource
// accepts. It returns the path from that source to target, inclusive.
//
// This is the "one canonical path" reconstruction Bellman-Ford uses to
// materialize paths[target]: deterministic because the cores reset
// pred[v] to a single entry whenever v's distance improves and only
// append co-optimal predecessors after it, so pred[v][0] is the node
// that first reached v at its final distance.
func BuildPath[N comparable](pred map[N][]N, isSource func(N) bool, target N) ([]N, error) {
	path := []N{target}
	cur := target
	seen := map[N]bool{target: true}

	for !isSource(cur) {
		preds := pred[cur]
		if len(preds) == 0 {
			return nil, ErrNoPath
		}
		next := preds[0]
		if seen[next] {
			// A cycle in pred would mean a core bug (predecessor tables
			// must be acyclic on termination); fail loudly rather than loop.
			return nil, ErrNoPath
		}
		path = append(path, next)
		seen[next] = true
		cur = next
	}

	reverse(path)

	return path, nil
}

// AllShortestPaths enumerates every co-optimal path from any source
// accepted by isSource to target, by exhaustively walking every
// combination of recorded predecessors. This is the supplemented
// all-shortest-paths feature (networkx's _build_paths_from_predecessors),
// useful once pred has been populated with every co-optimal predecessor
// (e.g. by dijkstra's pred out-parameter).
//
// The result is unordered; callers that need determinism should sort it.
// Complexity: O(number of co-optimal paths * path length) — exponential
// in pathological graphs with many tied predecessors at every hop, which
// is why this is a separate opt-in helper rather than the default.
func AllShortestPaths[N comparable](pred map[N][]N, isSource func(N) bool, target N) ([][]N, error) {
	var out [][]N
	var walk func(node N, suffix []N, visiting map[N]bool) error
	walk = func(node N, suffix []N, visiting map[N]bool) error {
		chain := append([]N{node}, suffix...)
		if isSource(node) {
			full := make([]N, len(chain))
			copy(full, chain)
			out = append(out, full)
			return nil
		}
		preds := pred[node]
		if len(preds) == 0 {
			return ErrNoPath
		}
		if visiting[node] {
			return ErrNoPath
		}
		visiting[node] = true
		defer delete(visiting, node)
		for _, p := range preds {
			if err := walk(p, chain, visiting); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk(target, nil, map[N]bool{}); err != nil {
		return nil, err
	}

	return out, nil
}

func reverse[N any](s []N) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
