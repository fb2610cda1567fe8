package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SarvikIIT/algokit/dsu"
)

// TestNew_Validation rejects non-positive sizes and checks the initial state.
func TestNew_Validation(t *testing.T) {
	_, err := dsu.New(0)
	assert.ErrorIs(t, err, dsu.ErrBadSize)
	_, err = dsu.New(-3)
	assert.ErrorIs(t, err, dsu.ErrBadSize)

	d, err := dsu.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 5, d.Count(), "all singletons initially")

	for i := 0; i < 5; i++ {
		root, ferr := d.Find(i)
		require.NoError(t, ferr)
		assert.Equal(t, i, root, "each element is its own root")
	}
}

// TestUnion_MergesAndCounts verifies merge reporting, Same, Size, and Count.
func TestUnion_MergesAndCounts(t *testing.T) {
	d, err := dsu.New(6)
	require.NoError(t, err)

	merged, err := d.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = d.Union(1, 2)
	require.NoError(t, err)
	assert.True(t, merged)

	// Already connected: no merge.
	merged, err = d.Union(0, 2)
	require.NoError(t, err)
	assert.False(t, merged)

	same, err := d.Same(0, 2)
	require.NoError(t, err)
	assert.True(t, same)

	same, err = d.Same(0, 5)
	require.NoError(t, err)
	assert.False(t, same)

	size, err := d.Size(1)
	require.NoError(t, err)
	assert.Equal(t, 3, size)

	size, err = d.Size(4)
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	assert.Equal(t, 4, d.Count(), "6 elements, 2 merges → 4 sets")
}

// TestFind_PathCompression unions a chain and checks all elements end up
// under a single root.
func TestFind_PathCompression(t *testing.T) {
	const n = 64
	d, err := dsu.New(n)
	require.NoError(t, err)

	for i := 1; i < n; i++ {
		_, uerr := d.Union(i-1, i)
		require.NoError(t, uerr)
	}

	root, err := d.Find(0)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		r, ferr := d.Find(i)
		require.NoError(t, ferr)
		assert.Equal(t, root, r)
	}
	assert.Equal(t, 1, d.Count())

	size, err := d.Size(n / 2)
	require.NoError(t, err)
	assert.Equal(t, n, size)
}

// TestOutOfRange covers invalid element indices on every operation.
func TestOutOfRange(t *testing.T) {
	d, err := dsu.New(3)
	require.NoError(t, err)

	_, err = d.Find(3)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = d.Find(-1)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = d.Union(0, 3)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = d.Same(-1, 0)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = d.Size(99)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
}
