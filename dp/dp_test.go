package dp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SarvikIIT/algokit/dp"
)

// TestCoinChangeMin covers reachable targets, the zero target and
// every error path.
func TestCoinChangeMin(t *testing.T) {
	coins := []int64{1, 3, 4}

	got, err := dp.CoinChangeMin(coins, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got, "3+3")

	got, err = dp.CoinChangeMin(coins, 0)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = dp.CoinChangeMin([]int64{5, 7}, 3)
	assert.ErrorIs(t, err, dp.ErrUnreachable)

	_, err = dp.CoinChangeMin(nil, 3)
	assert.ErrorIs(t, err, dp.ErrUnreachable)

	_, err = dp.CoinChangeMin(coins, -1)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)

	_, err = dp.CoinChangeMin([]int64{0, 2}, 4)
	assert.ErrorIs(t, err, dp.ErrBadCoin)
}

// TestCoinChangeCoins verifies the reconstructed multiset sums to the
// target with the minimal count.
func TestCoinChangeCoins(t *testing.T) {
	used, err := dp.CoinChangeCoins([]int64{1, 3, 4}, 6)
	require.NoError(t, err)
	assert.Len(t, used, 2)

	var sum int64
	for _, c := range used {
		sum += c
	}
	assert.Equal(t, int64(6), sum)

	used, err = dp.CoinChangeCoins([]int64{2}, 0)
	require.NoError(t, err)
	assert.Empty(t, used)

	_, err = dp.CoinChangeCoins([]int64{2}, 3)
	assert.ErrorIs(t, err, dp.ErrUnreachable)
}

// TestCoinChangeWays counts multisets, order-insensitive.
func TestCoinChangeWays(t *testing.T) {
	got, err := dp.CoinChangeWays([]int64{1, 2, 5}, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got, "{5},{2,2,1},{2,1,1,1},{1×5}")

	got, err = dp.CoinChangeWays([]int64{2}, 3)
	require.NoError(t, err)
	assert.Zero(t, got, "ways is a count, not an error")

	got, err = dp.CoinChangeWays([]int64{7}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got, "empty multiset")
}

func TestLIS(t *testing.T) {
	assert.Equal(t, 0, dp.LIS(nil))
	assert.Equal(t, 1, dp.LIS([]int64{7}))
	assert.Equal(t, 4, dp.LIS([]int64{10, 9, 2, 5, 3, 7, 101, 18}))
	assert.Equal(t, 1, dp.LIS([]int64{5, 5, 5}), "strictly increasing")
	assert.Equal(t, 1, dp.LIS([]int64{9, 7, 5, 3}))
	assert.Equal(t, 6, dp.LIS([]int64{1, 2, 3, 4, 5, 6}))
}

// TestLISSequence checks the witness is increasing, has LIS length
// and uses only input values in input order.
func TestLISSequence(t *testing.T) {
	values := []int64{10, 9, 2, 5, 3, 7, 101, 18}
	seq := dp.LISSequence(values)
	require.Len(t, seq, dp.LIS(values))
	for i := 1; i < len(seq); i++ {
		assert.Less(t, seq[i-1], seq[i])
	}
	assert.Equal(t, []int64{2, 3, 7, 18}, seq)

	assert.Nil(t, dp.LISSequence(nil))
	assert.Equal(t, []int64{4}, dp.LISSequence([]int64{4}))
}

func TestGridPaths(t *testing.T) {
	got, err := dp.GridPaths([]string{
		"....",
		".*..",
		"...*",
		"....",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)

	got, err = dp.GridPaths([]string{"."})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	got, err = dp.GridPaths([]string{"*.", ".."})
	require.NoError(t, err)
	assert.Zero(t, got, "blocked start")

	_, err = dp.GridPaths(nil)
	assert.ErrorIs(t, err, dp.ErrBadGrid)
	_, err = dp.GridPaths([]string{"..", "."})
	assert.ErrorIs(t, err, dp.ErrBadGrid)
	_, err = dp.GridPaths([]string{".x"})
	assert.ErrorIs(t, err, dp.ErrBadGrid)
}

func TestUniquePaths(t *testing.T) {
	got, err := dp.UniquePaths(3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(28), got)

	got, err = dp.UniquePaths(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	_, err = dp.UniquePaths(0, 5)
	assert.ErrorIs(t, err, dp.ErrBadGrid)
}

// TestGridPathsAgreesWithUniquePaths cross-checks the two counters on
// an obstacle-free grid.
func TestGridPathsAgreesWithUniquePaths(t *testing.T) {
	grid := []string{".....", ".....", ".....", "....."}
	fromGrid, err := dp.GridPaths(grid)
	require.NoError(t, err)
	direct, err := dp.UniquePaths(4, 5)
	require.NoError(t, err)
	assert.Equal(t, direct, fromGrid)
}

func TestClimbingStairs(t *testing.T) {
	want := []int64{1, 1, 2, 3, 5, 8, 13}
	for n, w := range want {
		got, err := dp.ClimbingStairs(n)
		require.NoError(t, err)
		assert.Equal(t, w, got, "n=%d", n)
	}

	_, err := dp.ClimbingStairs(-1)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
}

func TestDiceCombinations(t *testing.T) {
	// ways(n) for n=0..7: 1 1 2 4 8 16 32 63.
	want := []int64{1, 1, 2, 4, 8, 16, 32, 63}
	for n, w := range want {
		got, err := dp.DiceCombinations(int64(n))
		require.NoError(t, err)
		assert.Equal(t, w, got, "n=%d", n)
	}

	_, err := dp.DiceCombinations(-1)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
}

func TestFrogJump(t *testing.T) {
	got, err := dp.FrogJump([]int64{10, 30, 40, 20})
	require.NoError(t, err)
	assert.Equal(t, int64(30), got, "10→30→20")

	got, err = dp.FrogJump([]int64{5})
	require.NoError(t, err)
	assert.Zero(t, got, "already at the goal")

	_, err = dp.FrogJump(nil)
	assert.ErrorIs(t, err, dp.ErrEmptyInput)
}

func TestFrogJumpK(t *testing.T) {
	heights := []int64{10, 30, 40, 50, 20}

	got, err := dp.FrogJumpK(heights, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(30), got, "10→30→20 with k=3")

	// k=1 forces every adjacent hop.
	got, err = dp.FrogJumpK(heights, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(70), got)

	_, err = dp.FrogJumpK(heights, 0)
	assert.ErrorIs(t, err, dp.ErrBadJump)
}

func TestSubsetSum(t *testing.T) {
	values := []int64{3, 34, 4, 12, 5, 2}

	ok, err := dp.SubsetSum(values, 9)
	require.NoError(t, err)
	assert.True(t, ok, "4+5")

	ok, err = dp.SubsetSum(values, 30)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dp.SubsetSum(nil, 0)
	require.NoError(t, err)
	assert.True(t, ok, "empty subset")

	ok, err = dp.SubsetSum([]int64{7, 7}, 14)
	require.NoError(t, err)
	assert.True(t, ok, "each element usable once")

	_, err = dp.SubsetSum(values, -2)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
	_, err = dp.SubsetSum([]int64{-1}, 2)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
}

func TestFib(t *testing.T) {
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21}
	for n, w := range want {
		got, err := dp.Fib(n)
		require.NoError(t, err)
		assert.Equal(t, w, got, "F(%d)", n)
	}

	got, err := dp.Fib(92)
	require.NoError(t, err)
	assert.Equal(t, int64(7_540_113_804_746_346_429), got)

	_, err = dp.Fib(-1)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
}
