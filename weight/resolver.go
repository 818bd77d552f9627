package weight

import "github.com/katalvlaran/shortestpath/graph"

// Func is the uniform weight callable every algorithm core relaxes edges
// through: given an edge u->v carrying edata, it returns the edge's cost
// and whether the edge participates in this search at all. Returning
// ok==false means "this edge is hidden/non-existent for this search" —
// spec.md §4.1's null return.
type Func[N comparable] func(u, v N, edata any) (cost float64, ok bool)

// Spec is a weight specifier: either a ready-made Func, or an attribute
// key to look up on each edge's Attrs bundle.
type Spec[N comparable] struct {
	Func Func[N]
	Key  string
}

// ByKey builds a Spec that resolves weights by attribute key, the common
// case ("weight", "cost", "distance", ...).
func ByKey[N comparable](key string) Spec[N] {
	return Spec[N]{Key: key}
}

// ByFunc builds a Spec from an already-uniform callable, returned
// unchanged by Resolve per spec.md §4.1's first resolution rule.
func ByFunc[N comparable](f Func[N]) Spec[N] {
	return Spec[N]{Func: f}
}

// defaultWeight is the fallback cost used when an attribute key is absent
// from an edge's bundle, matching networkx's d.get(key, 1).
const defaultWeight = 1.0

// Resolve normalizes spec into a uniform Func for the given graph.
//
//   - If spec carries a Func, it is returned unchanged (spec.md §4.1 rule 1).
//   - Else, for a non-multigraph graph, the returned Func looks attrs[key]
//     up on the single Attrs record, defaulting to 1.
//   - Else (multigraph), edata is a map[string]graph.Attrs bundle keyed by
//     parallel-edge ID; the returned Func reduces it by minimum over every
//     parallel edge's attrs[key] (defaulting each to 1). An empty bundle
//     is a caller error (never produced by graph.Graph's Succ/Pred, which
//     omit empty buckets from the adjacency view entirely).
func Resolve[N comparable](g graph.View[N], spec Spec[N]) Func[N] {
	if spec.Func != nil {
		return spec.Func
	}

	key := spec.Key
	if g.Multigraph() {
		return func(_, _ N, edata any) (float64, bool) {
			bundle, _ := edata.(map[string]graph.Attrs)
			best := 0.0
			first := true
			for _, attrs := range bundle {
				w, ok := attrs[key]
				if !ok {
					w = defaultWeight
				}
				if first || w < best {
					best = w
					first = false
				}
			}
			if first {
				// Undefined per spec.md §4.1; treat as "no edge" rather
				// than panic on a caller error.
				return 0, false
			}

			return best, true
		}
	}

	return func(_, _ N, edata any) (float64, bool) {
		attrs, _ := edata.(graph.Attrs)
		if attrs == nil {
			return defaultWeight, true
		}
		if w, ok := attrs[key]; ok {
			return w, true
		}

		return defaultWeight, true
	}
}
