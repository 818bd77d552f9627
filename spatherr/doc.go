// Package spatherr defines the shared error taxonomy spec.md §6 names in
// the abstract: NodeNotFound, NoPath, Unbounded, Contradictory,
// DomainError, ValueError. Algorithm packages wrap these sentinels with
// fmt.Errorf("%w: ...") for context, the way the teacher wraps
// dijkstra.ErrNegativeWeight — but test against the shared sentinel with
// errors.Is so callers can distinguish failure classes across packages
// (e.g. a negative-cycle error from bellmanford and one from
// goldbergradzik both satisfy errors.Is(err, spatherr.Unbounded)).
package spatherr

import "errors"

var (
	// NodeNotFound: a required source/target is not in the graph.
	NodeNotFound = errors.New("spatherr: node not found")

	// NoPath: termination without reaching a required target.
	NoPath = errors.New("spatherr: no path to target")

	// Unbounded: a negative cycle is reachable from a source.
	Unbounded = errors.New("spatherr: negative cost cycle detected")

	// Contradictory: Dijkstra found a shorter path to an already-finalized
	// node — the caller passed negative weights.
	Contradictory = errors.New("spatherr: contradictory paths found, negative weights?")

	// DomainError: an operation's precondition on the graph's shape or
	// configuration was violated (e.g. Johnson on an unweighted graph).
	DomainError = errors.New("spatherr: domain precondition violated")

	// ValueError: an argument was invalid, e.g. an empty source set where
	// a non-empty one is required, or a negcycle sentinel already present
	// in the graph.
	ValueError = errors.New("spatherr: invalid argument")
)
