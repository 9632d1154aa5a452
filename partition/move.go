// SPDX-License-Identifier: MIT
// Package partition: the incremental mutation protocol — vertex moves and
// pairwise block merges. Deltas are computed by the driver; this file only
// commits them, transactionally.

package partition

import "fmt"

// MoveVertex reassigns one vertex from currentBlock to newBlock and commits
// the three coupled changes together: the assignment entry, the four
// blockmodel rows/columns in updates, and the caller-precomputed degree
// vectors. The operation computes no deltas itself.
//
// All-or-nothing: every length and block index is validated before the
// first write, so a rejected call leaves assignment, blockmodel and degrees
// exactly as they were. Invalid block indices surface as
// sparse.ErrOutOfRange from the batched matrix update; the vertex index is
// a caller-enforced precondition.
// Complexity: O(B).
func (p *Partition) MoveVertex(vertex, currentBlock, newBlock int, updates EdgeCountUpdates, newDegreesOut, newDegreesIn, newDegrees []int64) error {
	if p.empty {
		return ErrEmptyPartition
	}
	if len(newDegreesOut) != p.numBlocks || len(newDegreesIn) != p.numBlocks || len(newDegrees) != p.numBlocks {
		return fmt.Errorf("partition: MoveVertex: degree vectors must have length %d: %w",
			p.numBlocks, ErrDimensionMismatch)
	}

	// UpdateEdgeCounts validates the four vectors and both block indices
	// before writing anything, which makes this the commit point.
	if err := p.blockmodel.UpdateEdgeCounts(currentBlock, newBlock,
		updates.BlockRow, updates.ProposalRow, updates.BlockCol, updates.ProposalCol); err != nil {
		return err
	}

	p.assignment[vertex] = newBlock
	copy(p.degreesOut, newDegreesOut)
	copy(p.degreesIn, newDegreesIn)
	copy(p.degrees, newDegrees)

	return nil
}

// UpdateEdgeCounts applies one move's four row/column replacements to the
// blockmodel without touching assignment or degrees. Merge-delta folding
// uses it when collapsing a block's row and column into its merge target
// ahead of MergeBlocks.
func (p *Partition) UpdateEdgeCounts(currentBlock, proposedBlock int, updates EdgeCountUpdates) error {
	return p.blockmodel.UpdateEdgeCounts(currentBlock, proposedBlock,
		updates.BlockRow, updates.ProposalRow, updates.BlockCol, updates.ProposalCol)
}

// MergeBlocks reassigns every vertex currently in fromBlock to toBlock.
// The caller must already have folded fromBlock's blockmodel row and column
// into toBlock's; after the call fromBlock has no vertices, but its matrix
// row and column remain until the round's renumbering step (index reuse,
// not compaction). Block indices are caller-enforced preconditions.
// Complexity: O(V).
func (p *Partition) MergeBlocks(fromBlock, toBlock int) {
	for v, b := range p.assignment {
		if b == fromBlock {
			p.assignment[v] = toBlock
		}
	}
}
