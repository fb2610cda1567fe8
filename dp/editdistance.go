package dp

// EditDistance computes the Levenshtein distance between a and b:
// the minimum number of single-character insertions, deletions and
// substitutions transforming a into b.
//
// Algorithm outline (full-matrix):
//  1. Let n = len(a), m = len(b). Allocate an (n+1)x(m+1) table D.
//  2. D[i][0] = i, D[0][j] = j (pure deletions / insertions).
//  3. For i = 1..n, j = 1..m:
//     D[i][j] = D[i-1][j-1]                    if a[i-1] == b[j-1]
//     D[i][j] = 1 + min(D[i-1][j],             deletion
//                       D[i][j-1],             insertion
//                       D[i-1][j-1])           substitution
//  4. distance = D[n][m].
//  5. If opts.ReturnOps, backtrack from (n,m) to (0,0) preferring
//     match/substitute over delete over insert.
//
// Memory modes:
//   - FullMatrix — O(n·m) storage, supports ReturnOps.
//   - TwoRows — O(m) storage, distance only; requesting ReturnOps in
//     this mode yields ErrOpsNeedFullMatrix.
//
// A nil opts means FullMatrix without script reconstruction.
// Complexity: O(n·m) time
func EditDistance(a, b string, opts *EditOptions) (int, []EditOp, error) {
	mem := FullMatrix
	wantOps := false
	if opts != nil {
		mem = opts.MemoryMode
		wantOps = opts.ReturnOps
	}
	if wantOps && mem != FullMatrix {
		return 0, nil, ErrOpsNeedFullMatrix
	}

	n, m := len(a), len(b)
	if mem == TwoRows {
		return editTwoRows(a, b), nil, nil
	}

	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
		table[i][0] = i
	}
	for j := 1; j <= m; j++ {
		table[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1]

				continue
			}
			table[i][j] = 1 + min(table[i-1][j], table[i][j-1], table[i-1][j-1])
		}
	}

	var ops []EditOp
	if wantOps {
		ops = backtrackOps(a, b, table)
	}

	return table[n][m], ops, nil
}

// editTwoRows is the rolling-storage fill: only the previous row is
// needed to compute the current one.
func editTwoRows(a, b string) int {
	m := len(b)
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]

				continue
			}
			curr[j] = 1 + min(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrackOps walks the filled table from (n,m) back to the origin
// and emits the edit script in forward order.
func backtrackOps(a, b string, table [][]int) []EditOp {
	var ops []EditOp
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && table[i][j] == table[i-1][j-1]:
			ops = append(ops, EditOp{Kind: OpMatch, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && j > 0 && table[i][j] == table[i-1][j-1]+1:
			ops = append(ops, EditOp{Kind: OpSubstitute, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && table[i][j] == table[i-1][j]+1:
			ops = append(ops, EditOp{Kind: OpDelete, I: i - 1, J: -1})
			i--
		default:
			ops = append(ops, EditOp{Kind: OpInsert, I: -1, J: j - 1})
			j--
		}
	}

	// Backtracking emits the script in reverse; flip in place.
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return ops
}
