// Package dijkstra provides a precise implementation of Dijkstra's
// shortest-path algorithm over weighted graphs with non-negative edge
// weights: unidirectional multi-source, and bidirectional.
//
// Overview:
//
//   - MultiSource computes the minimum-cost path from a set of source
//     nodes to every reachable node in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the
//     next-closest node, using a lazy decrease-key strategy.
//   - Supports optional predecessor lists, canonical paths, a cutoff
//     distance, an early-halting target, and per-node weights.
//   - Bidirectional alternates forward/backward frontiers from source and
//     target and meets in the middle (spec.md §4.5).
//
// When to use:
//
//   - Any static weighted graph with non-negative edge weights.
//   - As a building block for network routing, traffic simulation,
//     resource allocation, or Johnson's all-pairs coordinator.
//
// Key features:
//
//   - Functional options (WithCutoff, WithTarget, WithNodeWeight,
//     WithPredecessors, WithPaths) configure a MultiSource call without changing
//     its signature.
//   - Pred and Paths are returned on the Result, not taken as
//     caller-owned out-parameters — see spec.md §9's design note.
//   - Negative edge weights are a caller error, reported as
//     spatherr.Contradictory the instant detected, not validated upfront.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted at most once from the priority queue.
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Space: O(V + E); paths, if requested, are O(V · avg path length)
//     because each path is materialized as paths[v] + [u].
//
// Error handling: MultiSource returns (wrapping) spatherr.ValueError for
// an empty source set, spatherr.NodeNotFound for a missing source, and
// spatherr.Contradictory when a relaxation would improve an already
// finalized node — the signal that a negative weight reached the core.
// Bidirectional additionally returns spatherr.NoPath when the two
// frontiers exhaust without meeting.
//
// Thread safety: a single MultiSource/Bidirectional call is not
// thread-safe against concurrent mutation of the same graph.Graph; the
// graph is read-only for the duration of the call (spec.md §5).
package dijkstra
