package weight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/shortestpath/graph"
	"github.com/katalvlaran/shortestpath/weight"
)

func TestResolve_ByFunc(t *testing.T) {
	g := graph.New[string](graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 9})

	called := false
	f := weight.Resolve[string](g, weight.ByFunc[string](func(u, v string, edata any) (float64, bool) {
		called = true

		return 42, true
	}))

	cost, ok := f("A", "B", nil)
	assert.True(t, ok)
	assert.Equal(t, 42.0, cost)
	assert.True(t, called)
}

func TestResolve_ByKey_DefaultsToOne(t *testing.T) {
	g := graph.New[string](graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", nil)

	f := weight.Resolve[string](g, weight.ByKey[string]("weight"))
	nbrs, _ := g.Succ("A")
	cost, ok := f("A", "B", nbrs[0].Data)
	assert.True(t, ok)
	assert.Equal(t, 1.0, cost)
}

func TestResolve_ByKey_ExplicitValue(t *testing.T) {
	g := graph.New[string](graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 7})

	f := weight.Resolve[string](g, weight.ByKey[string]("weight"))
	nbrs, _ := g.Succ("A")
	cost, ok := f("A", "B", nbrs[0].Data)
	assert.True(t, ok)
	assert.Equal(t, 7.0, cost)
}

func TestResolve_Multigraph_TakesMinimum(t *testing.T) {
	g := graph.New[string](graph.WithMultiEdges(), graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 5})
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 2})

	f := weight.Resolve[string](g, weight.ByKey[string]("weight"))
	nbrs, _ := g.Succ("A")
	cost, ok := f("A", "B", nbrs[0].Data)
	assert.True(t, ok)
	assert.Equal(t, 2.0, cost)
}
