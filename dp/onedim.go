package dp

import (
	"fmt"

	"github.com/SarvikIIT/algokit/numtheory"
)

// ClimbingStairs counts the distinct ways to climb n steps taking 1
// or 2 at a time. The result is exact; it fits int64 for n <= 91.
// Complexity: O(n) time, O(1) space
func ClimbingStairs(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeInput, n)
	}

	a, b := int64(1), int64(1) // ways(0), ways(1)
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b, nil
}

// DiceCombinations counts the ordered sequences of dice throws
// (faces 1..6) summing to n, modulo numtheory.Mod.
// Complexity: O(n) time, O(n) space
func DiceCombinations(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeInput, n)
	}

	ways := make([]int64, n+1)
	ways[0] = 1
	for sum := int64(1); sum <= n; sum++ {
		for face := int64(1); face <= 6 && face <= sum; face++ {
			ways[sum] = (ways[sum] + ways[sum-face]) % numtheory.Mod
		}
	}

	return ways[n], nil
}

// FrogJump returns the minimum total cost for a frog starting on
// stone 0 to reach the last stone, jumping one or two stones ahead at
// cost |heights[next] - heights[cur]| per jump.
// Complexity: O(n) time, O(1) space
func FrogJump(heights []int64) (int64, error) {
	return FrogJumpK(heights, 2)
}

// FrogJumpK generalizes FrogJump to jumps of up to k stones ahead.
// Complexity: O(n·k) time, O(n) space
func FrogJumpK(heights []int64, k int) (int64, error) {
	if len(heights) == 0 {
		return 0, ErrEmptyInput
	}
	if k < 1 {
		return 0, fmt.Errorf("%w: k = %d", ErrBadJump, k)
	}

	const inf = int64(1) << 62
	cost := make([]int64, len(heights))
	for i := 1; i < len(heights); i++ {
		cost[i] = inf
		for j := max(0, i-k); j < i; j++ {
			step := heights[i] - heights[j]
			if step < 0 {
				step = -step
			}
			if cost[j]+step < cost[i] {
				cost[i] = cost[j] + step
			}
		}
	}

	return cost[len(heights)-1], nil
}

// SubsetSum reports whether some subset of values sums exactly to
// target. Values must be non-negative; target zero is trivially true
// via the empty subset.
// Complexity: O(len(values) · target) time, O(target) space
func SubsetSum(values []int64, target int64) (bool, error) {
	if target < 0 {
		return false, fmt.Errorf("%w: target %d", ErrNegativeInput, target)
	}
	for _, v := range values {
		if v < 0 {
			return false, fmt.Errorf("%w: value %d", ErrNegativeInput, v)
		}
	}

	reachable := make([]bool, target+1)
	reachable[0] = true
	for _, v := range values {
		if v == 0 || v > target {
			continue
		}
		// Downward sweep keeps each value usable at most once.
		for s := target; s >= v; s-- {
			if reachable[s-v] {
				reachable[s] = true
			}
		}
	}

	return reachable[target], nil
}

// Fib returns the nth Fibonacci number by linear tabulation, exact up
// to F(92). For huge indices under a modulus use numtheory.Fibonacci.
// Complexity: O(n) time, O(1) space
func Fib(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeInput, n)
	}

	a, b := int64(0), int64(1)
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}

	return a, nil
}
