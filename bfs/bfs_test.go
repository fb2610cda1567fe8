package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SarvikIIT/algokit/bfs"
	"github.com/SarvikIIT/algokit/core"
)

// lineGraph builds A-B-C-D as an undirected path.
func lineGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	return g
}

// TestBFS_Validation covers nil graph, missing start, and weighted graphs.
func TestBFS_Validation(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := lineGraph(t)
	_, err = bfs.BFS(g, "ghost")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	wg := core.NewGraph(core.WithWeighted())
	_, werr := wg.AddEdge("A", "B", 2)
	require.NoError(t, werr)
	_, err = bfs.BFS(wg, "A")
	assert.ErrorIs(t, err, bfs.ErrWeightedGraph)
}

// TestBFS_DepthsAndParents verifies hop counts, parent links, and order.
func TestBFS_DepthsAndParents(t *testing.T) {
	g := lineGraph(t)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}, res.Depth)
	assert.Equal(t, "B", res.Parent["C"])
	_, hasRootParent := res.Parent["A"]
	assert.False(t, hasRootParent, "start vertex has no parent")
}

// TestBFS_MaxDepth stops expanding beyond the limit.
func TestBFS_MaxDepth(t *testing.T) {
	g := lineGraph(t)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_FilterNeighbor skips filtered edges entirely.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := lineGraph(t)

	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, neighbor string) bool {
		return neighbor != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order, "C is blocked, so D is unreachable")
}

// TestBFS_OnVisitAbort propagates hook errors.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := lineGraph(t)
	boom := errors.New("boom")

	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestBFS_ContextCancel aborts promptly on a cancelled context.
func TestBFS_ContextCancel(t *testing.T) {
	g := lineGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_DirectedReachability only follows edge direction.
func TestBFS_DirectedReachability(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "B", 0)
	require.NoError(t, err)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order, "C is upstream of B and unreachable")
}
