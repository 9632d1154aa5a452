// SPDX-License-Identifier: MIT
// Package partition: the greedy block-merge round.

package partition

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/blockpart/sparse"
)

// CarryOutBestMerges executes one agglomerative merge round. Given, per
// block, the entropy change of its best candidate merge and the target
// block, it greedily performs up to NumBlocksToMerge merges in order of
// most-negative delta, with ties broken by ascending block index. A block
// participates at most once per round: a merge is skipped when its source
// or target was already consumed as either side of an earlier merge, and a
// block is never merged into itself.
//
// Afterwards the surviving block ids are renumbered contiguously into
// [0, B − merged), ascending in old id, and the stale blockmodel and degree
// vectors are dropped: the partition holds a zero blockmodel of the reduced
// size until the driver recounts via InitializeEdgeCounts. Dropping, rather
// than keeping, the stale rows guarantees merged-away entries can never
// leak into a later score.
//
// Both inputs must have length NumBlocks.
// Complexity: O(B log B + V).
func (p *Partition) CarryOutBestMerges(deltaEntropyPerBlock []float64, bestMergeTargetPerBlock []int) error {
	if p.empty {
		return ErrEmptyPartition
	}
	if len(deltaEntropyPerBlock) != p.numBlocks || len(bestMergeTargetPerBlock) != p.numBlocks {
		return fmt.Errorf("partition: CarryOutBestMerges: inputs must have length %d: %w",
			p.numBlocks, ErrDimensionMismatch)
	}

	// Rank candidate sources by delta; the stable sort over the ascending
	// identity order yields the ascending-index tie-break.
	order := make([]int, p.numBlocks)
	for b := range order {
		order[b] = b
	}
	sort.SliceStable(order, func(i, j int) bool {
		return deltaEntropyPerBlock[order[i]] < deltaEntropyPerBlock[order[j]]
	})

	consumed := make([]bool, p.numBlocks)
	merged := 0
	for _, from := range order {
		if merged >= p.numBlocksToMerge {
			break
		}
		to := bestMergeTargetPerBlock[from]
		if to < 0 || to >= p.numBlocks || to == from {
			continue
		}
		if consumed[from] || consumed[to] {
			continue
		}
		p.MergeBlocks(from, to)
		consumed[from], consumed[to] = true, true
		merged++
	}

	p.renumberBlocks()

	return nil
}

// renumberBlocks relabels the blocks that still own vertices into a
// contiguous [0, B') range, ascending in old id, then resets the blockmodel
// and degrees to zeroed containers of the new size. Callers recount via
// InitializeEdgeCounts.
func (p *Partition) renumberBlocks() {
	present := make([]bool, p.numBlocks)
	for _, b := range p.assignment {
		present[b] = true
	}
	remap := make([]int, p.numBlocks)
	next := 0
	for b := 0; b < p.numBlocks; b++ {
		if present[b] {
			remap[b] = next
			next++
		}
	}
	for v, b := range p.assignment {
		p.assignment[v] = remap[b]
	}

	p.numBlocks = next
	p.numBlocksToMerge = int(float64(next) * p.reductionRate)
	p.blockmodel, _ = sparse.New(next, next) // next >= 1 whenever vertices exist
	p.degreesOut = make([]int64, next)
	p.degreesIn = make([]int64, next)
	p.degrees = make([]int64, next)
}
