package goldbergradzik_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortestpath/goldbergradzik"
	"github.com/katalvlaran/shortestpath/graph"
	"github.com/katalvlaran/shortestpath/spatherr"
	"github.com/katalvlaran/shortestpath/weight"
)

func weightFunc(g *graph.Graph[string]) weight.Func[string] {
	return weight.Resolve[string](g, weight.ByKey[string]("weight"))
}

func TestRun_NegativeWeightEdge(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 4})
	_, _ = g.AddEdge("A", "C", graph.Attrs{"weight": 2})
	_, _ = g.AddEdge("C", "B", graph.Attrs{"weight": -3})
	w := weightFunc(g)

	result, err := goldbergradzik.Run[string](g, "A", w)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Dist["A"])
	assert.Equal(t, -1.0, result.Dist["B"])
	assert.Equal(t, 2.0, result.Dist["C"])
	require.NotNil(t, result.Pred["B"])
	assert.Equal(t, "C", *result.Pred["B"])
	assert.Nil(t, result.Pred["A"])
}

func TestRun_NegativeCycle(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 1})
	_, _ = g.AddEdge("B", "C", graph.Attrs{"weight": -1})
	_, _ = g.AddEdge("C", "B", graph.Attrs{"weight": -1})
	w := weightFunc(g)

	_, err := goldbergradzik.Run[string](g, "A", w)
	require.Error(t, err)
	assert.ErrorIs(t, err, spatherr.Unbounded)
}

func TestRun_UnreachableNodesPruned(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 1})
	g.AddNode("Z")
	w := weightFunc(g)

	result, err := goldbergradzik.Run[string](g, "A", w)
	require.NoError(t, err)
	_, reached := result.Dist["Z"]
	assert.False(t, reached)
}

func TestRun_SingleNode(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
	g.AddNode("A")
	w := weightFunc(g)

	result, err := goldbergradzik.Run[string](g, "A", w)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0}, result.Dist)
	assert.Nil(t, result.Pred["A"])
}

func TestRun_UnknownSource(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
	g.AddNode("A")
	w := weightFunc(g)

	_, err := goldbergradzik.Run[string](g, "nope", w)
	require.Error(t, err)
	assert.ErrorIs(t, err, spatherr.NodeNotFound)
}
