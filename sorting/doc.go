// Package sorting provides generic, in-place implementations of the classic
// comparison sorts over slices of any ordered element type.
//
// These exist for algorithmic study and benchmarking against each other; for
// production code the standard library's slices.Sort is usually the right
// call. All functions mutate the slice they are given and accept nil/empty
// slices as no-ops.
//
// Algorithms and complexity:
//
//   - Quick            O(n log n) avg, O(n²) worst   Lomuto partition, last-element pivot
//   - RandomizedQuick  O(n log n) expected           random pivot defeats adversarial input
//   - ThreeWayQuick    O(n log n) avg                Dutch-flag partition, fast on many duplicates
//   - Merge            O(n log n), O(n) extra        stable, top-down
//   - BottomUpMerge    O(n log n), O(n) extra        stable, iterative
//   - Heap             O(n log n), in place          max-heap selection
//   - Insertion        O(n²), O(n) on nearly sorted
//   - Selection        O(n²)                         minimum swaps
//   - Bubble           O(n²)                         early exit on a clean pass
//
// MergeFunc and HeapFunc accept a custom less function for element types or
// orders that constraints.Ordered cannot express.
package sorting
