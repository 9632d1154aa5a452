// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors (plus the one typed
// error that carries index payload). All methods MUST return these sentinels
// and tests MUST check them via errors.Is. No method panics on
// user-triggered error conditions.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Every indexing method returns an *OutOfRangeError, which
	// matches this sentinel via errors.Is.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths between paired
	// slices (AddRow cols/weights) or between a supplied dense vector and
	// the matrix dimension (UpdateEdgeCounts).
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)

// OutOfRangeError reports the offending index together with the largest
// valid one, so drivers can surface actionable diagnostics without string
// parsing. It unwraps to ErrOutOfRange; callers keep matching via errors.Is.
type OutOfRangeError struct {
	Index int // the index that was supplied
	Max   int // the largest valid index (dimension - 1)
}

// Error formats the failure in the canonical "[0, max]" form.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("sparse: index %d is out of bounds [0, %d]", e.Index, e.Max)
}

// Unwrap lets errors.Is(err, ErrOutOfRange) succeed on the typed error.
func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// outOfRange builds the typed error for index i against dimension n.
func outOfRange(i, n int) error { return &OutOfRangeError{Index: i, Max: n - 1} }
