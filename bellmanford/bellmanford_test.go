package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SarvikIIT/algokit/bellmanford"
	"github.com/SarvikIIT/algokit/core"
)

// negEdgeGraph builds A→B(4), A→C(2), B→D(3), C→B(-1), C→D(8).
// Shortest paths from A: B=1 (via C), C=2, D=4 (A→C→B→D).
func negEdgeGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	edges := []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "D", 3}, {"C", "B", -1}, {"C", "D", 8},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

// TestBellmanFord_Validation walks every sentinel error path.
func TestBellmanFord_Validation(t *testing.T) {
	g := negEdgeGraph(t)

	_, _, err := bellmanford.BellmanFord(g, "")
	assert.ErrorIs(t, err, bellmanford.ErrEmptySource)

	_, _, err = bellmanford.BellmanFord(nil, "A")
	assert.ErrorIs(t, err, bellmanford.ErrGraphNil)

	und := core.NewGraph(core.WithWeighted())
	_, aerr := und.AddEdge("A", "B", 1)
	require.NoError(t, aerr)
	_, _, err = bellmanford.BellmanFord(und, "A")
	assert.ErrorIs(t, err, bellmanford.ErrUndirectedGraph)

	unw := core.NewGraph(core.WithDirected(true))
	_, aerr = unw.AddEdge("A", "B", 0)
	require.NoError(t, aerr)
	_, _, err = bellmanford.BellmanFord(unw, "A")
	assert.ErrorIs(t, err, bellmanford.ErrUnweightedGraph)

	_, _, err = bellmanford.BellmanFord(g, "ghost")
	assert.ErrorIs(t, err, bellmanford.ErrVertexNotFound)
}

// TestBellmanFord_NegativeEdges routes through the -1 edge.
func TestBellmanFord_NegativeEdges(t *testing.T) {
	g := negEdgeGraph(t)

	dist, prev, err := bellmanford.BellmanFord(g, "A", bellmanford.WithReturnPath())
	require.NoError(t, err)

	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(1), dist["B"], "A→C→B")
	assert.Equal(t, int64(2), dist["C"])
	assert.Equal(t, int64(4), dist["D"], "A→C→B→D")

	path, ok := bellmanford.Path(prev, "A", "D")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C", "B", "D"}, path)
}

// TestBellmanFord_NegativeCycle detects a reachable negative cycle.
func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := negEdgeGraph(t)
	_, err := g.AddEdge("D", "C", -10)
	require.NoError(t, err)

	_, _, err = bellmanford.BellmanFord(g, "A")
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

// TestBellmanFord_UnreachableNegativeCycle ignores cycles the source
// cannot reach.
func TestBellmanFord_UnreachableNegativeCycle(t *testing.T) {
	g := negEdgeGraph(t)
	// X⇄Y is a negative cycle in a separate component.
	_, err := g.AddEdge("X", "Y", -5)
	require.NoError(t, err)
	_, err = g.AddEdge("Y", "X", 2)
	require.NoError(t, err)

	dist, _, err := bellmanford.BellmanFord(g, "A")
	require.NoError(t, err, "cycle not reachable from A must not be reported")
	assert.Equal(t, bellmanford.Unreachable, dist["X"])
	assert.Equal(t, int64(4), dist["D"])
}

// TestBellmanFord_MatchesDijkstraShape sanity check: with all-positive
// weights the distances equal the obvious hand-computed values.
func TestBellmanFord_AllPositive(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range []struct {
		from, to string
		w        int64
	}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5}} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	dist, _, err := bellmanford.BellmanFord(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist["C"], "A→B→C beats direct A→C")
}
