// Package goldbergradzik implements the Goldberg-Radzik shortest-path
// algorithm (spec.md §4.4): an alternating topological-scan/relax
// procedure that tends to outperform Bellman-Ford on graphs with few
// negative edges, ported from networkx's goldberg_radzik.
//
// Overview:
//
//   - Run alternates a topological scan over nodes relabeled in the
//     previous round (discovering the residual negative-reduced-cost
//     subgraph via DFS) with a relax pass over that topological order,
//     until a round relabels nothing.
//   - A negative cycle is detected the instant the DFS finds a back edge
//     whose path carries a negative total reduced cost — before the scan
//     would otherwise loop forever.
//
// When to use: single-source shortest paths on graphs with arbitrary
// real weights, as an alternative to bellmanford.SingleSource when the
// caller does not need the predecessor-list/paths machinery and only a
// single canonical predecessor per node.
//
// Error handling: spatherr.NodeNotFound for a missing source,
// spatherr.Unbounded for a negative self-loop or a detected negative
// cycle.
package goldbergradzik
