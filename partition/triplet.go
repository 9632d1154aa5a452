// SPDX-License-Identifier: MIT
// Package partition: golden-ratio bookkeeping for the search over the
// number of blocks.

package partition

import "math"

// goldenRatio is the bracket-shrinking factor of the golden-section search.
const goldenRatio = 0.618

// Triplet tracks the three best partitions bracketing the optimal number of
// blocks, ordered by descending block count with the best (lowest
// description length) in the middle. Empty slots are nil until the bracket
// is established.
type Triplet struct {
	partitions   [3]*Partition
	optimalFound bool
}

// OptimalFound reports whether the search has narrowed the bracket down to
// the optimal number of blocks.
func (t *Triplet) OptimalFound() bool { return t.optimalFound }

// Best returns the middle (best so far) partition, or nil before the first
// Update.
func (t *Triplet) Best() *Partition { return t.partitions[1] }

// At returns the bracket slot i (0 = highest block count, 2 = lowest).
func (t *Triplet) At(i int) *Partition { return t.partitions[i] }

// Update inserts a finished partition into the bracket. A new best displaces
// the previous best toward the side its block count came from; a worse
// result tightens the bracket on its own side.
func (t *Triplet) Update(p *Partition) {
	best := t.partitions[1]
	if best == nil || p.overallEntropy <= best.overallEntropy {
		if best != nil {
			if best.numBlocks > p.numBlocks {
				t.partitions[0] = best
			} else {
				t.partitions[2] = best
			}
		}
		t.partitions[1] = p

		return
	}
	if best.numBlocks > p.numBlocks {
		t.partitions[2] = p
	} else {
		t.partitions[0] = p
	}
}

// PrepareForNextNumBlocks decides the next number of blocks to try after a
// partition has converged at its current block count, and returns the
// partition to refine next together with whether the optimal block count
// has been found.
//
// Until the bracket has a low side, the block count is reduced by
// reductionRate per round. Once the bracket is established, golden-section
// steps shrink the wider segment until the bracket spans consecutive block
// counts, at which point the middle partition is the answer. The returned
// partition is always an independent copy with NumBlocksToMerge set for the
// next merge round.
func PrepareForNextNumBlocks(p *Partition, t *Triplet, reductionRate float64) (*Partition, bool) {
	p.numBlocksToMerge = 0
	t.Update(p)

	// Bracket has no low side yet: keep shrinking at the fixed rate.
	if t.partitions[2] == nil {
		next := t.partitions[1].Copy()
		next.numBlocksToMerge = int(float64(next.numBlocks) * reductionRate)
		if next.numBlocksToMerge == 0 {
			t.optimalFound = true
			return next, true
		}

		return next, false
	}

	// Bracket narrowed to consecutive block counts: the middle is optimal.
	if t.partitions[0] != nil && t.partitions[0].numBlocks-t.partitions[2].numBlocks == 2 {
		t.optimalFound = true
		return t.partitions[1].Copy(), true
	}
	if t.partitions[0] == nil && t.partitions[1].numBlocks-t.partitions[2].numBlocks == 1 {
		t.optimalFound = true
		return t.partitions[1].Copy(), true
	}

	// Otherwise step into the wider segment of the bracket.
	var index int
	switch {
	case t.partitions[0] == nil && t.partitions[1].numBlocks > t.partitions[2].numBlocks:
		index = 1
	case t.partitions[0] != nil &&
		t.partitions[0].numBlocks-t.partitions[1].numBlocks >= t.partitions[1].numBlocks-t.partitions[2].numBlocks:
		index = 0
	default:
		index = 1
	}
	nextB := t.partitions[index+1].numBlocks +
		int(math.Round(float64(t.partitions[index].numBlocks-t.partitions[index+1].numBlocks)*goldenRatio))
	next := t.partitions[index].Copy()
	next.numBlocksToMerge = next.numBlocks - nextB

	return next, false
}
