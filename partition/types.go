// SPDX-License-Identifier: MIT
// Package partition: transfer records exchanged with the search driver.

package partition

// EdgeCountUpdates bundles the four dense blockmodel vectors produced by one
// proposed vertex move: the NEW row and column contents for the vertex's
// current block and for the proposed block. Pure data, no behavior — the
// driver computes it, MoveVertex commits it, then it is discarded.
//
// Each vector must have length NumBlocks.
type EdgeCountUpdates struct {
	BlockRow    []int64 // new row for the current block
	ProposalRow []int64 // new row for the proposed block
	BlockCol    []int64 // new column for the current block
	ProposalCol []int64 // new column for the proposed block
}

// VertexEdges is one vertex's out-edge table: the two-column
// (neighbor, weight) form in which the graph-loading collaborator hands
// neighbor lists to this package. Neighbors and Weights are paired and must
// have equal length.
type VertexEdges struct {
	Neighbors []int   // destination vertex ids
	Weights   []int64 // positive edge weights, parallel to Neighbors
}
