// SPDX-License-Identifier: MIT
// Package partition: lifting a subsample partition back onto the full graph.

package partition

import "fmt"

// FromSample rebuilds a partition for the full graph from a partition of a
// subsampled sub-graph: sampleAssignment holds the block of each sample
// vertex, and vertexMapping maps sample vertex index → full-graph vertex
// index. Sample block labels are relabeled contiguously first, so the block
// space of the result is [0, numBlocks) regardless of which labels survived
// subsampling.
//
// Vertices outside the sample inherit the block of their first sampled
// out-neighbor; vertices with no sampled out-neighbor fall back to block 0.
// The blockmodel and degrees are then recounted over the full graph.
//
// numBlocks must equal the number of distinct sample blocks; the mapping
// must cover every sample vertex and stay inside the full graph.
// Complexity: O(V + E).
func FromSample(numBlocks int, graph []VertexEdges, sampleAssignment []int, vertexMapping map[int]int, reductionRate float64) (*Partition, error) {
	relabeled, distinct, err := relabelContiguous(sampleAssignment)
	if err != nil {
		return nil, err
	}
	if distinct != numBlocks {
		return nil, fmt.Errorf("partition: FromSample: %d distinct sample blocks vs %d requested: %w",
			distinct, numBlocks, ErrBadBlockCount)
	}

	// Lift the sample assignment into full-graph vertex space.
	assignment := make([]int, len(graph))
	sampled := make([]bool, len(graph))
	for si, b := range relabeled {
		fi, ok := vertexMapping[si]
		if !ok {
			return nil, fmt.Errorf("partition: FromSample: sample vertex %d has no mapping: %w",
				si, ErrVertexMapping)
		}
		if fi < 0 || fi >= len(graph) {
			return nil, fmt.Errorf("partition: FromSample: sample vertex %d maps to %d of %d: %w",
				si, fi, len(graph), ErrVertexMapping)
		}
		assignment[fi] = b
		sampled[fi] = true
	}

	// Unsampled vertices join the block of their first sampled out-neighbor,
	// defaulting to block 0.
	for v := range graph {
		if sampled[v] {
			continue
		}
		assignment[v] = 0
		for _, n := range graph[v].Neighbors {
			if n >= 0 && n < len(graph) && sampled[n] {
				assignment[v] = assignment[n]
				break
			}
		}
	}

	return NewFromGraphWithAssignment(numBlocks, graph, reductionRate, assignment)
}
