// File: auto.go
// Role: ExistsAuto, a string-node convenience over Exists that generates
// its own collision-free sentinel name.

package negcycle

import (
	"fmt"

	"github.com/katalvlaran/shortestpath/graph"
	"github.com/katalvlaran/shortestpath/weight"
)

// ExistsAuto probes "negcycle-sentinel-0", "negcycle-sentinel-1", ...
// until it finds a name absent from g, then calls Exists with it —
// sparing callers of string-node graphs the need to invent a collision-
// free sentinel themselves.
func ExistsAuto(g *graph.Graph[string], w weight.Func[string]) (bool, error) {
	sentinel := freshSentinel(g)

	return Exists[string](g, sentinel, w)
}

func freshSentinel(g *graph.Graph[string]) string {
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("negcycle-sentinel-%d", i)
		if !g.HasNode(candidate) {
			return candidate
		}
	}
}
