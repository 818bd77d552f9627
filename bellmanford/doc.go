// Package bellmanford implements the deque-based Bellman-Ford / SPFA
// relaxation core for graphs with arbitrary real edge weights, including
// negative weights, with early negative-cycle detection (spec.md §4.3).
//
// Overview:
//
//   - MultiSource relaxes every edge repeatedly from a deque of
//     "enqueued" nodes until the deque drains or a negative cycle is
//     detected, in O(V*E) worst case but typically much faster.
//   - The "smart queue" optimization (grounded in the teacher's own FIFO
//     BFS queue style, generalized to SPFA's predecessor-in-queue skip)
//     defers relaxing a node while any of its recorded predecessors is
//     still pending, avoiding redundant work.
//   - An optional heuristic tracks each node's most recent improving
//     edge to detect a negative cycle before count[v] would otherwise
//     reach |V|.
//
// When to use:
//
//   - Graphs that may carry negative edge weights, where Dijkstra's
//     non-negative precondition cannot be assumed.
//   - As the reweighting pass inside Johnson's all-pairs coordinator.
//
// Error handling: returns spatherr.Unbounded the instant a negative
// cycle is detected (via the heuristic, or via the count[v]==|V| signal),
// and spatherr.NodeNotFound for a missing source.
//
// Thread safety: a single MultiSource call is not thread-safe against
// concurrent mutation of the same graph.
package bellmanford
