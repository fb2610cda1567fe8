package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SarvikIIT/algokit/core"
	"github.com/SarvikIIT/algokit/dfs"
)

// binaryTreeGraph builds the undirected tree A-(B,C), B-(D,E).
func binaryTreeGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, pair := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"B", "E"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	return g
}

// TestDFS_Validation covers nil graph, missing start, and bad options.
func TestDFS_Validation(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := binaryTreeGraph(t)
	_, err = dfs.DFS(g, "ghost")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.DFS(g, "A", dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

// TestDFS_PreOrder verifies discovery order, depths, and parents.
func TestDFS_PreOrder(t *testing.T) {
	g := binaryTreeGraph(t)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, "B", res.Parent["E"])
}

// TestDFS_PostOrderHook checks OnExit fires children-first.
func TestDFS_PostOrderHook(t *testing.T) {
	g := binaryTreeGraph(t)

	var exits []string
	_, err := dfs.DFS(g, "A", dfs.WithOnExit(func(id string, _ int) error {
		exits = append(exits, id)

		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "E", "B", "C", "A"}, exits)
}

// TestDFS_MaxDepth prunes below the given depth.
func TestDFS_MaxDepth(t *testing.T) {
	g := binaryTreeGraph(t)

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

// TestDFS_FullTraversal covers disconnected components in sorted root order.
func TestDFS_FullTraversal(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("Z"))

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "Z"}, res.Order)
}

// TestDFS_HookAbortAndCancel exercises both abort paths.
func TestDFS_HookAbortAndCancel(t *testing.T) {
	g := binaryTreeGraph(t)
	boom := errors.New("boom")

	_, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "D" {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestHasCycle_Directed distinguishes a DAG from a cyclic digraph.
func TestHasCycle_Directed(t *testing.T) {
	dag := core.NewGraph(core.WithDirected(true))
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		_, err := dag.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}
	found, err := dfs.HasCycle(dag)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = dag.AddEdge("C", "A", 0)
	require.NoError(t, err)
	found, err = dfs.HasCycle(dag)
	require.NoError(t, err)
	assert.True(t, found)
}

// TestHasCycle_Undirected: a tree has no cycle; closing it creates one.
func TestHasCycle_Undirected(t *testing.T) {
	g := binaryTreeGraph(t)
	found, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = g.AddEdge("D", "E", 0)
	require.NoError(t, err)
	found, err = dfs.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, found)
}

// TestHasCycle_SelfLoop counts a self-loop as a cycle.
func TestHasCycle_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)

	found, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, found)
}

// TestTopologicalSort_Order verifies every edge points forward in the result.
func TestTopologicalSort_Order(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	edges := [][2]string{{"shirt", "tie"}, {"tie", "jacket"}, {"pants", "shoes"}, {"pants", "jacket"}}
	for _, pair := range edges {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, g.VertexCount())

	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, pair := range edges {
		assert.Less(t, pos[pair[0]], pos[pair[1]], "%s must precede %s", pair[0], pair[1])
	}
}

// TestTopologicalSort_Errors covers undirected input and cycles.
func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	und := core.NewGraph()
	_, aerr := und.AddEdge("A", "B", 0)
	require.NoError(t, aerr)
	_, err = dfs.TopologicalSort(und)
	assert.ErrorIs(t, err, dfs.ErrNotDirected)

	cyc := core.NewGraph(core.WithDirected(true))
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		_, aerr = cyc.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, aerr)
	}
	_, err = dfs.TopologicalSort(cyc)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}
