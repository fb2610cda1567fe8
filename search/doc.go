// Package search provides generic binary, ternary, and linear searches over
// slices, plus binary search on a monotone predicate ("search on answer").
//
// Lookup functions return a (index, ok) pair instead of a -1 sentinel, so the
// result is unambiguous for any slice. Bound functions (LowerBound,
// UpperBound) return insertion points and therefore always succeed.
//
// Preconditions mirror the textbook versions: Binary and the bound functions
// require the slice to be sorted ascending; the ternary family requires a
// strictly unimodal input; OnAnswer requires the predicate to be monotone
// (false…false,true…true) over the searched interval. Violating a
// precondition yields an unspecified index, not a panic.
//
// Rotated searches a sorted slice rotated at an unknown pivot and requires
// distinct elements. BinaryReal and NthRoot carry the predicate search onto
// real intervals.
//
// Complexity:
//
//   - Binary / LowerBound / UpperBound / OnAnswer: O(log n)
//   - Rotated:                                     O(log n)
//   - TernaryMax / TernaryMin / Peak:              O(log n)
//   - TernaryReal / BinaryReal / NthRoot:          O(log((hi-lo)/eps))
//   - Linear / LinearAll / FindIf:                 O(n)
package search
