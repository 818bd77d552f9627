// File: types.go
// Role: the Result shape for a single Run call.

package goldbergradzik

// Result holds the single-predecessor table and pruned distance map a
// Run call produces.
//
// Pred's shape intentionally differs from bellmanford.Result.Pred: here
// each node has at most one predecessor (*N, nil only for source),
// because the core relaxation keeps exactly one incoming edge per node
// rather than accumulating every co-optimal one — spec.md §9 flags this
// as an intentional, documented divergence from the Bellman-Ford family.
type Result[N comparable] struct {
	Pred map[N]*N
	Dist map[N]float64
}
