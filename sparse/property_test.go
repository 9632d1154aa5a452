package sparse_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/blockpart/sparse"
)

const propDim = 8 // matrix dimension used by all properties below

// TestMatrixInvariants uses property-based testing to verify the algebraic
// invariants of the blockmodel matrix. These properties must hold for any
// sequence of valid operations.
func TestMatrixInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	idx := gen.IntRange(0, propDim-1)
	val := gen.Int64Range(0, 1000)

	// Property 1: Add accumulates — add(r,c,v1);add(r,c,v2) ⇒ get == v1+v2.
	properties.Property("add accumulates", prop.ForAll(
		func(r, c int, v1, v2 int64) bool {
			m, err := sparse.New(propDim, propDim)
			if err != nil {
				return false
			}
			if m.Add(r, c, v1) != nil || m.Add(r, c, v2) != nil {
				return false
			}
			got, err := m.Get(r, c)
			return err == nil && got == v1+v2
		},
		idx, idx, val, val,
	))

	// Property 2: axis sums are consistent with row snapshots and the total.
	properties.Property("axis sums match row snapshots", prop.ForAll(
		func(rows, cols []int, vals []int64) bool {
			m, err := sparse.New(propDim, propDim)
			if err != nil {
				return false
			}
			n := len(rows)
			if len(cols) < n {
				n = len(cols)
			}
			if len(vals) < n {
				n = len(vals)
			}
			for i := 0; i < n; i++ {
				if m.Add(rows[i], cols[i], vals[i]) != nil {
					return false
				}
			}

			byRow := m.SumAxis(sparse.ByRow)
			var total int64
			for b := 0; b < propDim; b++ {
				row, rerr := m.GetRow(b)
				if rerr != nil {
					return false
				}
				var rowSum int64
				for _, v := range row {
					rowSum += v
				}
				if rowSum != byRow[b] {
					return false
				}
				total += rowSum
			}
			return total == m.Sum()
		},
		gen.SliceOf(idx), gen.SliceOf(idx), gen.SliceOf(val),
	))

	// Property 3: a clone never observes later mutations of the original.
	properties.Property("clone is independent", prop.ForAll(
		func(r, c int, v int64) bool {
			m, err := sparse.New(propDim, propDim)
			if err != nil {
				return false
			}
			if m.Add(r, c, v) != nil {
				return false
			}
			clone := m.Clone()
			if m.Add(r, c, 1) != nil {
				return false
			}
			got, err := clone.Get(r, c)
			return err == nil && got == v
		},
		idx, idx, val,
	))

	// Property 4: add then sub of the same delta is an identity on the entry.
	properties.Property("sub reverses add", prop.ForAll(
		func(r, c int, v int64) bool {
			m, err := sparse.New(propDim, propDim)
			if err != nil {
				return false
			}
			if m.Add(r, c, v) != nil || m.Sub(r, c, v) != nil {
				return false
			}
			got, err := m.Get(r, c)
			return err == nil && got == 0 && m.Sum() == 0
		},
		idx, idx, val,
	))

	properties.TestingRun(t)
}
