// File: view.go
// Role: View is the complete external interface spec.md §6 lists as what
// the algorithmic cores consume from a graph — nothing more. Every
// algorithm package in this module except negcycle depends on View, not
// *Graph[N] directly, so any conforming container (not just this one) can
// plug in; negcycle takes *Graph[N] because it adds and removes a node.
package graph

// View is the read side of the graph contract the shortest-path cores
// require: membership, size, directedness/multigraph flags, and the two
// adjacency projections. *Graph[N] satisfies View.
type View[N comparable] interface {
	HasNode(n N) bool
	Nodes() []N
	NodeCount() int
	Directed() bool
	Multigraph() bool
	Weighted() bool
	Succ(v N) ([]Neighbor[N], error)
	Pred(v N) ([]Neighbor[N], error)
	SelfLoops(v N) any
}

var _ View[string] = (*Graph[string])(nil)
