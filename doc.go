// Package shortestpath is a library of weighted shortest-path
// algorithms over generic, hashable-node graphs.
//
// What is shortestpath?
//
//	A thread-safe-per-call, near-zero-dependency library bringing
//	together:
//
//	  - A generic graph container (graph/) with arbitrary comparable
//	    node identity, directed/undirected/multigraph/self-loop support.
//	  - Dijkstra (dijkstra/): unidirectional multi-source and
//	    bidirectional, for non-negative weights.
//	  - Bellman-Ford / SPFA (bellmanford/): arbitrary real weights, with
//	    an optional heuristic for early negative-cycle detection.
//	  - Goldberg-Radzik (goldbergradzik/): an alternative single-source
//	    core for graphs with few negative edges.
//	  - Johnson (johnson/): all-pairs shortest paths via reweighting.
//	  - A negative-cycle probe (negcycle/): does any negative cycle exist
//	    anywhere in the graph?
//
// Why choose shortestpath?
//
//   - Generic    — node identity is any comparable type, not just string
//   - Pure Go    — no cgo; testify is the only runtime dependency, for tests
//   - Consistent — every algorithm package shares one weight resolver
//     (weight/), one path-reconstruction helper (pathutil/), and one
//     error taxonomy (spatherr/)
//
// Usage is shown by each package's _test.go files; the module ships no
// examples/ directory.
package shortestpath
