// Package pathutil is the path-reconstruction helper spec.md §6 describes
// as an external collaborator: given a predecessor table and a source
// set, it rebuilds concrete node sequences for a target. Bellman-Ford's
// canonical path materialization and the supplemented all-shortest-paths
// enumerator both build on it.
package pathutil
