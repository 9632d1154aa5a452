// SPDX-License-Identifier: MIT
// Package partition: deep copies and the ground-truth clone used by
// external evaluation.

package partition

import (
	"fmt"
	"sort"
)

// Copy returns an independent partition sharing no mutable state with the
// receiver. It is the mechanism for speculative evaluation and for
// driver-side parallelism: mutate the copy, compare scores, keep or discard.
// Complexity: O(V + B + nnz).
func (p *Partition) Copy() *Partition {
	out := &Partition{
		numBlocks:        p.numBlocks,
		assignment:       cloneInts(p.assignment),
		degreesOut:       cloneInt64(p.degreesOut),
		degreesIn:        cloneInt64(p.degreesIn),
		degrees:          cloneInt64(p.degrees),
		reductionRate:    p.reductionRate,
		overallEntropy:   p.overallEntropy,
		numBlocksToMerge: p.numBlocksToMerge,
		empty:            p.empty,
	}
	if p.blockmodel != nil {
		out.blockmodel = p.blockmodel.Clone()
	}

	return out
}

// CloneWithTrueBlockMembership builds an independent partition whose
// assignment is a caller-supplied ground truth, with block labels relabeled
// contiguously and blockmodel/degrees rederived from graph. It exists only
// for evaluating a search result against known ground truth — never inside
// the search loop.
// Complexity: O(V log V + E).
func (p *Partition) CloneWithTrueBlockMembership(graph []VertexEdges, trueAssignment []int) (*Partition, error) {
	if len(trueAssignment) != len(graph) {
		return nil, fmt.Errorf("partition: CloneWithTrueBlockMembership: %d assignments vs %d vertices: %w",
			len(trueAssignment), len(graph), ErrDimensionMismatch)
	}

	relabeled, numBlocks, err := relabelContiguous(trueAssignment)
	if err != nil {
		return nil, err
	}

	return NewFromGraphWithAssignment(numBlocks, graph, p.reductionRate, relabeled)
}

// relabelContiguous maps arbitrary nonnegative block labels onto [0, B'),
// ascending in original label, and returns the relabeled vector and B'.
func relabelContiguous(assignment []int) ([]int, int, error) {
	distinct := make(map[int]struct{}, len(assignment))
	for _, b := range assignment {
		if b < 0 {
			return nil, 0, fmt.Errorf("partition: negative block label %d: %w", b, ErrBadBlockCount)
		}
		distinct[b] = struct{}{}
	}
	labels := make([]int, 0, len(distinct))
	for b := range distinct {
		labels = append(labels, b)
	}
	sort.Ints(labels)

	remap := make(map[int]int, len(labels))
	for i, b := range labels {
		remap[b] = i
	}
	out := make([]int, len(assignment))
	for v, b := range assignment {
		out[v] = remap[b]
	}

	return out, len(labels), nil
}
