// File: types.go
// Role: Options/Option/Result for a single MultiSource call.

package bellmanford

// Options configures a single MultiSource call. The zero value means: no
// target, no predecessors/paths collection, heuristic cycle detection
// enabled (the teacher's DefaultOptions pattern: a safe, fast default the
// caller opts out of, not into).
type Options[N comparable] struct {
	Target      N
	HasTarget   bool
	WantPred    bool
	WantPaths   bool
	NoHeuristic bool
	InitialDist map[N]float64
}

// Option is a functional option mutating Options.
type Option[N comparable] func(*Options[N])

// WithTarget requests paths/dist be meaningful for this node specifically;
// MultiSource still computes distances to every reachable node, but
// facade wrappers use Target to pick a single result.
func WithTarget[N comparable](target N) Option[N] {
	return func(o *Options[N]) {
		o.Target = target
		o.HasTarget = true
	}
}

// WithPredecessors requests the co-optimal predecessor list be populated
// on the returned Result.
func WithPredecessors[N comparable]() Option[N] {
	return func(o *Options[N]) { o.WantPred = true }
}

// WithPaths requests one canonical path per reached node be populated on
// the returned Result.
func WithPaths[N comparable]() Option[N] {
	return func(o *Options[N]) { o.WantPaths = true }
}

// WithoutHeuristic disables the recent_update cycle-detection heuristic,
// falling back to the count[v]==|V| signal alone. Slower to detect a
// cycle but simpler to reason about; exposed for testing the fallback
// path and for callers who distrust the heuristic on unusual graphs.
func WithoutHeuristic[N comparable]() Option[N] {
	return func(o *Options[N]) { o.NoHeuristic = true }
}

// WithInitialDist seeds dist from an existing map instead of 0 at every
// source — Johnson's reweighting pass uses this to pre-seed dist to 0 at
// every node in the graph (spec.md §4.6 step 1).
func WithInitialDist[N comparable](dist map[N]float64) Option[N] {
	return func(o *Options[N]) { o.InitialDist = dist }
}

// Result is the out-parameter record a MultiSource call returns.
type Result[N comparable] struct {
	Dist  map[N]float64
	Pred  map[N][]N
	Paths map[N][]N
}
