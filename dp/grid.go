package dp

import (
	"fmt"

	"github.com/SarvikIIT/algokit/numtheory"
)

// GridPaths counts the paths from the top-left to the bottom-right
// cell of a grid, moving only right or down, modulo numtheory.Mod.
// Each row is a string of '.' (free) and '*' (obstacle) cells. A
// blocked start or goal yields zero paths. Returns ErrBadGrid for an
// empty, ragged or otherwise malformed grid.
// Complexity: O(rows · cols) time, O(cols) space
func GridPaths(grid []string) (int64, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrBadGrid)
	}
	cols := len(grid[0])
	for r, row := range grid {
		if len(row) != cols {
			return 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadGrid, r, len(row), cols)
		}
		for c := 0; c < cols; c++ {
			if row[c] != '.' && row[c] != '*' {
				return 0, fmt.Errorf("%w: unexpected cell %q at (%d,%d)", ErrBadGrid, row[c], r, c)
			}
		}
	}

	// One rolling row: paths[c] is the count for the current row.
	paths := make([]int64, cols)
	if grid[0][0] == '.' {
		paths[0] = 1
	}
	for _, row := range grid {
		for c := 0; c < cols; c++ {
			if row[c] == '*' {
				paths[c] = 0

				continue
			}
			if c > 0 {
				paths[c] = (paths[c] + paths[c-1]) % numtheory.Mod
			}
		}
	}

	return paths[cols-1], nil
}

// UniquePaths counts the monotone lattice paths in an unobstructed
// m-by-n grid exactly, which is the binomial C(m+n-2, m-1). Both
// dimensions must be positive.
// Complexity: O(min(m, n))
func UniquePaths(m, n int) (int64, error) {
	if m <= 0 || n <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrBadGrid, m, n)
	}

	return numtheory.Binomial(int64(m+n-2), int64(m-1)), nil
}
