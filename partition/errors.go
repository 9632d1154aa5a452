// SPDX-License-Identifier: MIT
// Package partition: sentinel error set.
// Constructors validate their own inputs and return these sentinels;
// tests match them via errors.Is. Out-of-range block indices on the hot
// mutation path are NOT defended here — they surface as sparse.ErrOutOfRange
// from direct matrix access, or are caller-enforced preconditions.

package partition

import "errors"

var (
	// ErrBadBlockCount is returned when a requested number of blocks is
	// non-positive, or when a supplied assignment references more blocks
	// than the partition declares.
	ErrBadBlockCount = errors.New("partition: number of blocks must be positive")

	// ErrBadReductionRate is returned when the block reduction rate is
	// negative, NaN or >= 1 (merging every block leaves nothing to search).
	ErrBadReductionRate = errors.New("partition: reduction rate must be in [0, 1)")

	// ErrDimensionMismatch indicates incompatible lengths: assignment vs.
	// neighbor lists, degree vectors vs. number of blocks, or merge-round
	// inputs vs. number of blocks.
	ErrDimensionMismatch = errors.New("partition: dimension mismatch")

	// ErrEmptyPartition is returned when an operation requires initialized
	// state but the receiver is the Empty() placeholder.
	ErrEmptyPartition = errors.New("partition: partition is empty")

	// ErrVertexMapping is returned by FromSample when the sample-to-graph
	// vertex mapping does not cover the sample assignment or points outside
	// the full graph.
	ErrVertexMapping = errors.New("partition: invalid sample vertex mapping")
)
