// Package sparse implements the mutable B×B nonnegative-integer matrix
// that stores aggregated block-to-block edge counts (the "blockmodel").
//
// 🚀 What is sparse?
//
//	A single concrete, map-backed matrix tuned for the access pattern of
//	incremental blockmodel updates:
//	  • point increments/decrements (Add, Sub, Get)
//	  • batched row folds (AddRow) for one vertex's whole out-edge list
//	  • dense row/column snapshots (GetRow, GetCol)
//	  • totals and axis sums (Sum, SumAxis)
//	  • nonzero enumeration (Nonzero, Values) so scoring can skip the
//	    zero entries that dominate as B grows
//	  • UpdateEdgeCounts — all four row/column replacements of a vertex
//	    move applied in one call, never observed half-updated
//
// ✨ Design notes:
//
//   - One backing representation: per-row hash maps. Rows are the hot
//     axis (a vertex move rewrites two rows); columns pay O(B).
//   - Entries that reach zero are deleted, so Nonzero enumerates exactly
//     the support of the matrix.
//   - Nonzero/Values iterate in (row, col) ascending order — scoring over
//     them is bit-for-bit deterministic.
//   - The only checked runtime error is out-of-range indexing; it carries
//     the offending index and the largest valid one, and matches
//     ErrOutOfRange via errors.Is.
//
// Performance:
//
//   - Add/Sub/Get:       O(1) expected
//   - GetRow/GetCol:     O(B)
//   - UpdateEdgeCounts:  O(B) per replaced row/column
//   - Sum/SumAxis:       O(nnz)
//
// See example_test.go for usage patterns.
package sparse
