// Package partition_test: tests for deep copies and the ground-truth clone.
package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockpart/partition"
)

// TestCopyIndependence verifies that mutating a copy (one MoveVertex)
// leaves the original's assignment, blockmodel and degrees unchanged.
func TestCopyIndependence(t *testing.T) {
	original := fixturePartition(t)
	snapshot := original.Copy()

	speculative := original.Copy()
	updates, dOut, dIn, dTotal := fixtureMove()
	require.NoError(t, speculative.MoveVertex(1, 0, 1, updates, dOut, dIn, dTotal))

	requireSameState(t, snapshot, original)
	require.Equal(t, []int{0, 1, 1}, speculative.Assignment())
	require.NotEqual(t, original.Assignment(), speculative.Assignment())
}

// TestCopyCarriesBookkeeping verifies that scalar bookkeeping survives Copy.
func TestCopyCarriesBookkeeping(t *testing.T) {
	p := fixturePartition(t)
	p.SetEntropy(42.0)
	p.SetNumBlocksToMerge(7)

	c := p.Copy()
	require.Equal(t, 42.0, c.Entropy())
	require.Equal(t, 7, c.NumBlocksToMerge())
	require.Equal(t, p.NumBlocks(), c.NumBlocks())
	require.False(t, c.IsEmpty())

	require.True(t, partition.Empty().Copy().IsEmpty())
}

// TestCloneWithTrueBlockMembership verifies the contiguous relabel and the
// rederived blockmodel for a ground-truth assignment.
func TestCloneWithTrueBlockMembership(t *testing.T) {
	graph := []partition.VertexEdges{
		{Neighbors: []int{1}, Weights: []int64{1}},
		{Neighbors: []int{0}, Weights: []int64{1}},
		{Neighbors: []int{3}, Weights: []int64{1}},
		{Neighbors: []int{2}, Weights: []int64{1}},
	}
	p, err := partition.NewFromGraph(4, graph, 0.25)
	require.NoError(t, err)

	truth, err := p.CloneWithTrueBlockMembership(graph, []int{5, 5, 9, 9})
	require.NoError(t, err)

	require.Equal(t, 2, truth.NumBlocks())
	require.Equal(t, []int{0, 0, 1, 1}, truth.Assignment())
	require.Equal(t, int64(4), truth.Blockmodel().Sum())
	require.Equal(t, []int64{2, 2}, truth.DegreesOut())

	// the receiver is untouched
	require.Equal(t, 4, p.NumBlocks())
	require.Equal(t, []int{0, 1, 2, 3}, p.Assignment())
}

// TestCloneWithTrueBlockMembershipValidation verifies the input checks.
func TestCloneWithTrueBlockMembershipValidation(t *testing.T) {
	graph := fixtureGraph()
	p := fixturePartition(t)

	_, err := p.CloneWithTrueBlockMembership(graph, []int{0, 0}) // short
	require.ErrorIs(t, err, partition.ErrDimensionMismatch)

	_, err = p.CloneWithTrueBlockMembership(graph, []int{0, -1, 0}) // negative label
	require.ErrorIs(t, err, partition.ErrBadBlockCount)
}
