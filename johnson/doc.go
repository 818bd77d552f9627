// Package johnson implements Johnson's all-pairs shortest-paths
// algorithm (spec.md §4.6): one Bellman-Ford reweighting pass over every
// node as a virtual super-source, followed by one Dijkstra per source
// under the reweighted, now-nonnegative edge costs.
//
// Overview:
//
//   - AllPairs calls bellmanford.MultiSource with every node of the
//     graph as a source and dist pre-seeded to 0 everywhere, producing a
//     potential h[v] <= 0 equal to the shortest distance from the
//     virtual super-source to v.
//   - It then builds a reweighted callable w'(u,v,e) = w(u,v,e) + h[u] -
//     h[v], which is nonnegative on every real edge, and runs
//     dijkstra.SingleSource from every node under w', collecting paths.
//
// Precondition: the graph must be weighted, which AllPairs checks through
// View.Weighted() alone (for *graph.Graph, construction with
// graph.WithWeighted()). Violating this raises spatherr.DomainError.
// AllPairs does not inspect edge attributes: a weighted graph whose edges
// carry no explicit weight is accepted, every edge then costing the
// default 1 that weight.Resolve applies.
//
// Error handling: spatherr.DomainError if Weighted() reports false,
// spatherr.Unbounded if the graph contains a negative cycle (propagated
// from the reweighting pass).
package johnson
