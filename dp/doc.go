// Package dp collects classic dynamic-programming routines as plain
// library functions: coin change, longest increasing subsequence,
// edit distance, grid path counting, subset sum and a family of
// one-dimensional ladder problems.
//
// Conventions:
//
//   - Counting problems that can overflow int64 (CoinChangeWays,
//     DiceCombinations, GridPaths) report their result modulo
//     numtheory.Mod (1e9+7); small exact counters (ClimbingStairs,
//     UniquePaths) return true values.
//   - Impossible targets surface as ErrUnreachable rather than a -1
//     sentinel value.
//   - EditDistance follows the two-mode memory layout used by dtw:
//     FullMatrix keeps the whole table and can reconstruct the edit
//     script, TwoRows keeps two rows and returns the distance only.
//
// All functions are pure and safe for concurrent use.
package dp
