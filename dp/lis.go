package dp

import "sort"

// LIS returns the length of the longest strictly increasing
// subsequence of values, using patience sorting over tail values.
// An empty input has length zero.
// Complexity: O(n log n) time, O(n) space
func LIS(values []int64) int {
	tails := make([]int64, 0, len(values))
	for _, v := range values {
		pos := sort.Search(len(tails), func(i int) bool { return tails[i] >= v })
		if pos == len(tails) {
			tails = append(tails, v)
		} else {
			tails[pos] = v
		}
	}

	return len(tails)
}

// LISSequence returns one longest strictly increasing subsequence of
// values. Ties break toward the earliest achievable elements.
// Complexity: O(n log n) time, O(n) space
func LISSequence(values []int64) []int64 {
	if len(values) == 0 {
		return nil
	}

	// tailIdx[l] is the index of the smallest tail of any increasing
	// subsequence of length l+1; parent links recover the sequence.
	tailIdx := make([]int, 0, len(values))
	parent := make([]int, len(values))
	for i, v := range values {
		pos := sort.Search(len(tailIdx), func(j int) bool {
			return values[tailIdx[j]] >= v
		})
		if pos > 0 {
			parent[i] = tailIdx[pos-1]
		} else {
			parent[i] = -1
		}
		if pos == len(tailIdx) {
			tailIdx = append(tailIdx, i)
		} else {
			tailIdx[pos] = i
		}
	}

	seq := make([]int64, len(tailIdx))
	for i, at := len(tailIdx)-1, tailIdx[len(tailIdx)-1]; i >= 0; i-- {
		seq[i] = values[at]
		at = parent[at]
	}

	return seq
}
