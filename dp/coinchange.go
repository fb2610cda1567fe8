package dp

import (
	"fmt"

	"github.com/SarvikIIT/algokit/numtheory"
)

// CoinChangeMin returns the minimum number of coins summing to target.
// A target of zero needs zero coins. Returns ErrUnreachable when no
// combination works, ErrBadCoin for non-positive denominations and
// ErrNegativeInput for a negative target.
// Complexity: O(target · len(coins)) time, O(target) space
func CoinChangeMin(coins []int64, target int64) (int64, error) {
	if err := checkCoins(coins, target); err != nil {
		return 0, err
	}

	const inf = int64(1) << 62
	table := make([]int64, target+1)
	for i := range table[1:] {
		table[i+1] = inf
	}

	for _, c := range coins {
		for amount := c; amount <= target; amount++ {
			if table[amount-c]+1 < table[amount] {
				table[amount] = table[amount-c] + 1
			}
		}
	}

	if table[target] == inf {
		return 0, fmt.Errorf("%w: amount %d", ErrUnreachable, target)
	}

	return table[target], nil
}

// CoinChangeCoins returns one minimal multiset of coins summing to
// target, largest-first order not guaranteed. Same error contract as
// CoinChangeMin; a zero target yields an empty slice.
// Complexity: O(target · len(coins)) time, O(target) space
func CoinChangeCoins(coins []int64, target int64) ([]int64, error) {
	if err := checkCoins(coins, target); err != nil {
		return nil, err
	}

	const inf = int64(1) << 62
	table := make([]int64, target+1)
	choice := make([]int64, target+1)
	for i := range table[1:] {
		table[i+1] = inf
	}

	for amount := int64(1); amount <= target; amount++ {
		for _, c := range coins {
			if c <= amount && table[amount-c]+1 < table[amount] {
				table[amount] = table[amount-c] + 1
				choice[amount] = c
			}
		}
	}

	if table[target] == inf {
		return nil, fmt.Errorf("%w: amount %d", ErrUnreachable, target)
	}

	var used []int64
	for rest := target; rest > 0; rest -= choice[rest] {
		used = append(used, choice[rest])
	}

	return used, nil
}

// CoinChangeWays counts the coin multisets summing to target, modulo
// numtheory.Mod. Order does not matter: the coin loop runs outermost
// so each denomination is considered once.
// Complexity: O(target · len(coins)) time, O(target) space
func CoinChangeWays(coins []int64, target int64) (int64, error) {
	if err := checkCoins(coins, target); err != nil {
		return 0, err
	}

	table := make([]int64, target+1)
	table[0] = 1
	for _, c := range coins {
		for amount := c; amount <= target; amount++ {
			table[amount] = (table[amount] + table[amount-c]) % numtheory.Mod
		}
	}

	return table[target], nil
}

// checkCoins validates the shared coin-change inputs.
func checkCoins(coins []int64, target int64) error {
	if target < 0 {
		return fmt.Errorf("%w: target %d", ErrNegativeInput, target)
	}
	for _, c := range coins {
		if c <= 0 {
			return fmt.Errorf("%w: %d", ErrBadCoin, c)
		}
	}

	return nil
}
