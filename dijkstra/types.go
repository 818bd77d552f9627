// File: types.go
// Role: Options/Option/Result for a single MultiSource call.

package dijkstra

// Options configures a single MultiSource call. The zero value means: no cutoff,
// no target, no per-node weight, and pred/paths are not collected —
// matching the teacher's DefaultOptions() pattern of a safe, inert
// default that the caller opts out of via functional options.
type Options[N comparable] struct {
	Cutoff     float64
	HasCutoff  bool
	Target     N
	HasTarget  bool
	NodeWeight map[N]float64
	WantPred   bool
	WantPaths  bool
}

// Option is a functional option mutating Options, matching the teacher's
// Option shape in spirit (func(*Options)) generalized over N.
type Option[N comparable] func(*Options[N])

// WithCutoff discards any tentative distance exceeding c.
func WithCutoff[N comparable](c float64) Option[N] {
	return func(o *Options[N]) {
		o.Cutoff = c
		o.HasCutoff = true
	}
}

// WithTarget halts the search the instant target is popped off the heap.
func WithTarget[N comparable](target N) Option[N] {
	return func(o *Options[N]) {
		o.Target = target
		o.HasTarget = true
	}
}

// WithNodeWeight adds a per-node cost: each source is seeded at
// nodeWeight[source] instead of 0, and each edge relaxation into u adds
// nodeWeight[u] to the edge cost.
func WithNodeWeight[N comparable](nodeWeight map[N]float64) Option[N] {
	return func(o *Options[N]) { o.NodeWeight = nodeWeight }
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

// Result is the out-parameter record a MultiSource call returns. Pred and Paths
// are nil unless the matching option was supplied — per spec.md §9's
// design note, the core owns its maps internally for the duration of the
// call and hands ownership to the caller only at the end, rather than
// taking caller-owned maps as aliasable out-parameters.
type Result[N comparable] struct {
	Dist  map[N]float64
	Pred  map[N][]N
	Paths map[N][]N
}
