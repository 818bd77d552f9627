// Package negcycle answers a single yes/no question: does any negative
// cost cycle exist, reachable from anywhere in the graph (spec.md §4.7)?
//
// Overview:
//
//   - Exists adds a fresh sentinel node with zero-weight edges to every
//     existing node, runs bellmanford.SingleSource from the sentinel,
//     and interprets spatherr.Unbounded as "yes." The sentinel (and its
//     edges) are removed before returning on every exit path, including
//     the error path — spec.md's scoped-cleanup discipline.
//   - Because Go generics cannot synthesize an arbitrary comparable value
//     out of thin air, the generic Exists takes the sentinel as an
//     explicit caller-supplied parameter. ExistsAuto is a string-keyed
//     convenience that generates one by probing "negcycle-sentinel-N"
//     for increasing N until it finds a name absent from the graph,
//     grounded in the teacher's own counter-suffixed edge-ID scheme
//     ("e" + counter).
//
// Error handling: Exists never itself returns spatherr.Unbounded — a
// detected cycle is the true answer, reported as (true, nil); a negative
// self-loop is reported the same way — but propagates any other error
// (e.g. spatherr.ValueError for a sentinel already in the graph).
package negcycle
