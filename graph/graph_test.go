package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortestpath/graph"
)

func TestAddRemoveNode(t *testing.T) {
	g := graph.New[string]()
	assert.False(t, g.HasNode("A"))

	g.AddNode("A")
	assert.True(t, g.HasNode("A"))
	assert.Equal(t, 1, g.NodeCount())

	g.AddNode("A") // idempotent
	assert.Equal(t, 1, g.NodeCount())

	g.RemoveNode("A")
	assert.False(t, g.HasNode("A"))
	assert.Equal(t, 0, g.NodeCount())
}

func TestAddEdge_LoopRejectedByDefault(t *testing.T) {
	g := graph.New[string]()
	_, err := g.AddEdge("A", "A", nil)
	require.ErrorIs(t, err, graph.ErrLoopNotAllowed)
}

func TestAddEdge_LoopAllowedWithOption(t *testing.T) {
	g := graph.New[string](graph.WithLoops())
	id, err := g.AddEdge("A", "A", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestAddEdge_WeightRejectedOnUnweighted(t *testing.T) {
	g := graph.New[string]()
	_, err := g.AddEdge("A", "B", graph.Attrs{"weight": 1})
	require.ErrorIs(t, err, graph.ErrBadWeight)
}

func TestAddEdge_MultiEdgeRejectedByDefault(t *testing.T) {
	g := graph.New[string]()
	_, err := g.AddEdge("A", "B", nil)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", nil)
	require.ErrorIs(t, err, graph.ErrMultiEdgeNotAllowed)
}

func TestAddEdge_MultiEdgeAllowedWithOption(t *testing.T) {
	g := graph.New[string](graph.WithMultiEdges())
	_, err := g.AddEdge("A", "B", nil)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestSucc_UndirectedMirrorsBothWays(t *testing.T) {
	g := graph.New[string](graph.WithWeighted())
	_, err := g.AddEdge("A", "B", graph.Attrs{"weight": 5})
	require.NoError(t, err)

	succA, err := g.Succ("A")
	require.NoError(t, err)
	require.Len(t, succA, 1)
	assert.Equal(t, "B", succA[0].To)

	succB, err := g.Succ("B")
	require.NoError(t, err)
	require.Len(t, succB, 1)
	assert.Equal(t, "A", succB[0].To)
}

func TestSucc_DirectedDoesNotMirror(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
	_, err := g.AddEdge("A", "B", graph.Attrs{"weight": 5})
	require.NoError(t, err)

	succB, err := g.Succ("B")
	require.NoError(t, err)
	assert.Empty(t, succB)

	predB, err := g.Pred("B")
	require.NoError(t, err)
	require.Len(t, predB, 1)
	assert.Equal(t, "A", predB[0].To)
}

func TestSucc_UnknownNode(t *testing.T) {
	g := graph.New[string]()
	_, err := g.Succ("nope")
	require.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestRemoveNode_PurgesIncidentEdges(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true))
	_, _ = g.AddEdge("A", "B", nil)
	_, _ = g.AddEdge("B", "C", nil)

	g.RemoveNode("B")
	assert.Equal(t, 0, g.EdgeCount())
	assert.True(t, g.HasNode("A"))
	assert.True(t, g.HasNode("C"))
}

func TestClone_IsIndependent(t *testing.T) {
	g := graph.New[string](graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 1})

	clone := g.Clone()
	clone.RemoveNode("B")

	assert.True(t, g.HasNode("B"))
	assert.False(t, clone.HasNode("B"))
}

func TestCloneEmpty_KeepsNodesDropsEdges(t *testing.T) {
	g := graph.New[string](graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 1})

	empty := g.CloneEmpty()
	assert.True(t, empty.HasNode("A"))
	assert.True(t, empty.HasNode("B"))
	assert.Equal(t, 0, empty.EdgeCount())
}

func TestStats(t *testing.T) {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted(), graph.WithLoops())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 1})
	_, _ = g.AddEdge("A", "A", graph.Attrs{"weight": 1})

	stats := g.Stats()
	assert.True(t, stats.Directed)
	assert.True(t, stats.Weighted)
	assert.Equal(t, 2, stats.NodeCount)
	assert.Equal(t, 2, stats.EdgeCount)
	assert.Equal(t, 1, stats.SelfLoops)
}

func TestMultigraphBundle(t *testing.T) {
	g := graph.New[string](graph.WithMultiEdges(), graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 3})
	_, _ = g.AddEdge("A", "B", graph.Attrs{"weight": 1})

	nbrs, err := g.Succ("A")
	require.NoError(t, err)
	require.Len(t, nbrs, 1)
	bundle, ok := nbrs[0].Data.(map[string]graph.Attrs)
	require.True(t, ok)
	assert.Len(t, bundle, 2)
}
