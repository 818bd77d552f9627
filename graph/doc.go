// Package graph provides a generic, thread-safe, in-memory Graph
// implementation with a minimal, composable API surface.
//
// The Graph G = (V,E) supports a rich mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weight is not a
//     single hardcoded field but an attribute bundle (Attrs) consumed
//     by the weight package's resolver
//   - Parallel edges / multigraphs (WithMultiEdges), exposed as a
//     bundle keyed by edge ID rather than a single Attrs record
//   - Self-loops (WithLoops)
//   - Arbitrary hashable node identity via the type parameter N
//     (comparable), not just strings
//   - Collision-free edge IDs ("e1", "e2", …) returned by AddEdge, from a
//     counter guarded by muEdgeAdj
//   - Separate sync.RWMutex for vertices (muNode) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention
//
// Why use graph.Graph[N]?
//
//   - Single type, composable flags — no explosion of separate graph
//     types for directed/undirected/weighted/multigraph combinations.
//   - Deterministic iteration — Nodes() returns results in insertion
//     order, and Succ/Pred return neighbors sorted by a best-effort
//     total order over N, stable across repeated calls on an unmutated
//     graph.
//   - Clone support — CloneEmpty (nodes+flags), Clone (deep copy).
//   - The Succ/Pred adjacency views are exactly the external interface
//     the shortestpath algorithm packages consume; see graph.View.
package graph
