package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortestpath/bellmanford"
	"github.com/katalvlaran/shortestpath/graph"
	"github.com/katalvlaran/shortestpath/spatherr"
	"github.com/katalvlaran/shortestpath/weight"
)

func weightFunc(g *graph.Graph[string]) weight.Func[string] {
	return weight.Resolve[string](g, weight.ByKey[string]("weight"))
}

func TestMultiSource_NegativeWeightEdge(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 4})
	_, _ = g.AddEdge("A", "C", graph.Attrs{"weight": 2})
	_, _ = g.AddEdge("C", "B", graph.Attrs{"weight": -3})
	w := weightFunc(g)

	result, err := bellmanford.SingleSource[string](g, "A", w)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Dist["A"])
	assert.Equal(t, -1.0, result.Dist["B"])
	assert.Equal(t, 2.0, result.Dist["C"])
}

func TestMultiSource_NegativeCycle(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 1})
	_, _ = g.AddEdge("B", "C", graph.Attrs{"weight": -1})
	_, _ = g.AddEdge("C", "B", graph.Attrs{"weight": -1})
	w := weightFunc(g)

	_, err := bellmanford.SingleSource[string](g, "A", w)
	require.Error(t, err)
	assert.ErrorIs(t, err, spatherr.Unbounded)
}

func TestMultiSource_NegativeSelfLoop(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted(), graph.WithLoops())
	_, _ = g.AddEdge("A", "A", graph.Attrs{"weight": -1})
	w := weightFunc(g)

	_, err := bellmanford.SingleSource[string](g, "A", w)
	require.Error(t, err)
	assert.ErrorIs(t, err, spatherr.Unbounded)
}

func TestMultiSource_PathAndLength(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 4})
	_, _ = g.AddEdge("A", "C", graph.Attrs{"weight": 2})
	_, _ = g.AddEdge("C", "B", graph.Attrs{"weight": -3})
	w := weightFunc(g)

	path, length, err := bellmanford.PathAndLength[string](g, "A", "B", w)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, path)
	assert.Equal(t, -1.0, length)
}

func TestMultiSource_UnknownSource(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
	g.AddNode("A")
	w := weightFunc(g)

	_, err := bellmanford.SingleSource[string](g, "nope", w)
	require.Error(t, err)
	assert.ErrorIs(t, err, spatherr.NodeNotFound)
}

func TestMultiSource_WithoutHeuristicStillDetectsCycle(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 1})
	_, _ = g.AddEdge("B", "C", graph.Attrs{"weight": -1})
	_, _ = g.AddEdge("C", "B", graph.Attrs{"weight": -1})
	w := weightFunc(g)

	_, err := bellmanford.SingleSource[string](g, "A", w, bellmanford.WithoutHeuristic[string]())
	require.Error(t, err)
	assert.ErrorIs(t, err, spatherr.Unbounded)
}
