// SPDX-License-Identifier: MIT
// Package partition: the Partition aggregate and its named constructors —
// one factory per initialization scenario (empty, from-scratch, from-graph,
// with-assignment; see sample.go for from-sample).

package partition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/blockpart/sparse"
)

// Partition owns the assignment vector, the blockmodel and the per-block
// degree vectors, plus the scalar bookkeeping the search driver reads.
// All fields are unexported: the only way to mutate a Partition is through
// the invariant-preserving operations, so assignment, blockmodel and
// degrees can never diverge.
//
// A Partition is a value-like object: it exclusively owns its vectors and
// matrix, and Copy() produces a fully independent instance. It is not safe
// for concurrent use.
type Partition struct {
	numBlocks  int
	blockmodel *sparse.Matrix
	assignment []int // vertex -> block, every entry in [0, numBlocks)

	degreesOut []int64 // row sums of the blockmodel
	degreesIn  []int64 // column sums of the blockmodel
	degrees    []int64 // degreesOut + degreesIn

	reductionRate    float64
	overallEntropy   float64
	numBlocksToMerge int
	empty            bool
}

// Empty returns the placeholder partition: all fields default, the empty
// flag set. Useful as the "no result yet" slot in driver bookkeeping.
func Empty() *Partition {
	return &Partition{empty: true, overallEntropy: math.Inf(1)}
}

// New creates a from-scratch partition over numBlocks vertices with the
// identity assignment (block i = vertex i), a zero blockmodel and
// NumBlocksToMerge = floor(numBlocks · reductionRate).
// Returns ErrBadBlockCount / ErrBadReductionRate on invalid input.
// Complexity: O(B).
func New(numBlocks int, reductionRate float64) (*Partition, error) {
	if numBlocks <= 0 {
		return nil, ErrBadBlockCount
	}
	if math.IsNaN(reductionRate) || reductionRate < 0 || reductionRate >= 1 {
		return nil, ErrBadReductionRate
	}

	bm, err := sparse.New(numBlocks, numBlocks)
	if err != nil {
		return nil, err
	}
	assignment := make([]int, numBlocks)
	for i := range assignment {
		assignment[i] = i
	}

	return &Partition{
		numBlocks:        numBlocks,
		blockmodel:       bm,
		assignment:       assignment,
		degreesOut:       make([]int64, numBlocks),
		degreesIn:        make([]int64, numBlocks),
		degrees:          make([]int64, numBlocks),
		reductionRate:    reductionRate,
		overallEntropy:   math.Inf(1),
		numBlocksToMerge: int(float64(numBlocks) * reductionRate),
	}, nil
}

// NewFromGraph creates the identity partition and then aggregates every
// directed edge of graph into the blockmodel in one pass, establishing the
// invariant that the blockmodel equals the aggregation of edges under the
// assignment. The identity assignment requires len(graph) == numBlocks.
// Complexity: O(B + E).
func NewFromGraph(numBlocks int, graph []VertexEdges, reductionRate float64) (*Partition, error) {
	if len(graph) != numBlocks {
		return nil, fmt.Errorf("partition: NewFromGraph: %d vertices vs %d blocks: %w",
			len(graph), numBlocks, ErrDimensionMismatch)
	}
	p, err := New(numBlocks, reductionRate)
	if err != nil {
		return nil, err
	}
	if err = p.InitializeEdgeCounts(graph); err != nil {
		return nil, err
	}

	return p, nil
}

// NewFromGraphWithAssignment is NewFromGraph with a caller-supplied
// assignment instead of the identity one. Every assignment entry must lie
// in [0, numBlocks) and len(assignment) must equal len(graph).
// Complexity: O(V + B + E).
func NewFromGraphWithAssignment(numBlocks int, graph []VertexEdges, reductionRate float64, assignment []int) (*Partition, error) {
	if len(assignment) != len(graph) {
		return nil, fmt.Errorf("partition: NewFromGraphWithAssignment: %d assignments vs %d vertices: %w",
			len(assignment), len(graph), ErrDimensionMismatch)
	}
	p, err := New(numBlocks, reductionRate)
	if err != nil {
		return nil, err
	}
	p.assignment = make([]int, len(assignment))
	for v, b := range assignment {
		if b < 0 || b >= numBlocks {
			return nil, fmt.Errorf("partition: NewFromGraphWithAssignment: vertex %d assigned to block %d of %d: %w",
				v, b, numBlocks, ErrBadBlockCount)
		}
		p.assignment[v] = b
	}
	if err = p.InitializeEdgeCounts(graph); err != nil {
		return nil, err
	}

	return p, nil
}

// InitializeEdgeCounts rebuilds the blockmodel and degree vectors from
// scratch by folding every vertex's out-edges into its block's row. It is
// invoked by the graph-aware constructors and by the driver after each
// merge round, once block ids have been renumbered.
// Returns ErrDimensionMismatch when graph does not match the assignment.
// Complexity: O(B + E).
func (p *Partition) InitializeEdgeCounts(graph []VertexEdges) error {
	if p.empty {
		return ErrEmptyPartition
	}
	if len(graph) != len(p.assignment) {
		return fmt.Errorf("partition: InitializeEdgeCounts: %d vertices vs %d assignments: %w",
			len(graph), len(p.assignment), ErrDimensionMismatch)
	}

	bm, err := sparse.New(p.numBlocks, p.numBlocks)
	if err != nil {
		return err
	}
	blocks := make([]int, 0, 16) // scratch, reused across vertices
	for v, edges := range graph {
		if len(edges.Neighbors) == 0 {
			continue
		}
		blocks = blocks[:0]
		for _, n := range edges.Neighbors {
			blocks = append(blocks, p.assignment[n])
		}
		if err = bm.AddRow(p.assignment[v], blocks, edges.Weights); err != nil {
			return err
		}
	}

	p.blockmodel = bm
	p.recomputeDegrees()

	return nil
}

// recomputeDegrees rederives the three degree vectors from blockmodel axis
// sums: out = row sums, in = column sums, total = out + in.
func (p *Partition) recomputeDegrees() {
	p.degreesOut = p.blockmodel.SumAxis(sparse.ByRow)
	p.degreesIn = p.blockmodel.SumAxis(sparse.ByCol)
	p.degrees = make([]int64, p.numBlocks)
	for b := 0; b < p.numBlocks; b++ {
		p.degrees[b] = p.degreesOut[b] + p.degreesIn[b]
	}
}

// IsEmpty reports whether the receiver is the Empty() placeholder.
func (p *Partition) IsEmpty() bool { return p.empty }

// NumBlocks returns the current number of blocks B.
func (p *Partition) NumBlocks() int { return p.numBlocks }

// NumVertices returns the length of the assignment vector.
func (p *Partition) NumVertices() int { return len(p.assignment) }

// NumBlocksToMerge returns how many blocks the next merge round collapses.
func (p *Partition) NumBlocksToMerge() int { return p.numBlocksToMerge }

// SetNumBlocksToMerge overrides the merge budget for the next round; the
// golden-ratio search uses it to steer toward a target block count.
func (p *Partition) SetNumBlocksToMerge(n int) { p.numBlocksToMerge = n }

// ReductionRate returns the configured block reduction rate.
func (p *Partition) ReductionRate() float64 { return p.reductionRate }

// Entropy returns the stored description-length score (lower is better).
// It is whatever the driver last recorded via SetEntropy; use
// LogPosteriorProbability to compute it from the current state.
func (p *Partition) Entropy() float64 { return p.overallEntropy }

// SetEntropy records the driver-computed description length.
func (p *Partition) SetEntropy(s float64) { p.overallEntropy = s }

// Block returns the block currently assigned to vertex v.
// The vertex index is a caller-enforced precondition.
func (p *Partition) Block(v int) int { return p.assignment[v] }

// Assignment returns a copy of the vertex→block vector.
func (p *Partition) Assignment() []int {
	out := make([]int, len(p.assignment))
	copy(out, p.assignment)

	return out
}

// Blockmodel exposes the live blockmodel for driver-side proposal reads
// (rows, columns, nonzero scans). Mutating it directly bypasses the
// consistency protocol; drivers mutate only through Partition operations.
func (p *Partition) Blockmodel() *sparse.Matrix { return p.blockmodel }

// DegreeOut returns the out-degree of block b (caller-enforced index).
func (p *Partition) DegreeOut(b int) int64 { return p.degreesOut[b] }

// DegreeIn returns the in-degree of block b (caller-enforced index).
func (p *Partition) DegreeIn(b int) int64 { return p.degreesIn[b] }

// Degree returns the total degree of block b (caller-enforced index).
func (p *Partition) Degree(b int) int64 { return p.degrees[b] }

// DegreesOut returns a copy of the per-block out-degree vector.
func (p *Partition) DegreesOut() []int64 { return cloneInt64(p.degreesOut) }

// DegreesIn returns a copy of the per-block in-degree vector.
func (p *Partition) DegreesIn() []int64 { return cloneInt64(p.degreesIn) }

// Degrees returns a copy of the per-block total-degree vector.
func (p *Partition) Degrees() []int64 { return cloneInt64(p.degrees) }

// cloneInt64 copies an int64 vector.
func cloneInt64(v []int64) []int64 {
	out := make([]int64, len(v))
	copy(out, v)

	return out
}

// cloneInts copies an int vector.
func cloneInts(v []int) []int {
	out := make([]int, len(v))
	copy(out, v)

	return out
}
