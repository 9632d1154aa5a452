// Package partition maintains the state of a stochastic block model (SBM)
// partition of a directed graph and updates it incrementally.
//
// 🚀 What is partition?
//
//	The mutable aggregate at the heart of a community-detection engine:
//	  • the vertex→block assignment vector
//	  • the B×B blockmodel of aggregated edge counts (sparse.Matrix)
//	  • per-block out/in/total degree vectors
//	  • the description-length score the outer search minimizes
//
//	The invariant of the package: assignment, blockmodel and degrees never
//	diverge. Every mutation goes through an invariant-preserving operation
//	— MoveVertex, MergeBlocks, CarryOutBestMerges, InitializeEdgeCounts —
//	and each one touches only the entries that actually change.
//
// ✨ Protocol with the external search driver:
//
//   - The driver proposes a move, computes the four new blockmodel
//     rows/columns (EdgeCountUpdates) and the new degree vectors, then
//     commits them atomically with MoveVertex.
//   - A merge round collapses NumBlocksToMerge block pairs at once via
//     CarryOutBestMerges; block ids are renumbered contiguously and the
//     stale blockmodel is dropped — the driver recounts with
//     InitializeEdgeCounts before scoring again.
//   - Copy() yields a fully independent partition for speculative
//     evaluation; Triplet + PrepareForNextNumBlocks drive the golden-ratio
//     search over the number of blocks.
//
// Concurrency: a Partition is a value-like object. It is never shared
// across goroutines; run independent copies instead.
//
// See example_test.go for constructor and move walkthroughs.
package partition
