// SPDX-License-Identifier: MIT
// Package sparse: the concrete map-backed blockmodel matrix.
//
// One implementation, no interface: the single backing representation
// (per-row hash maps) serves every access pattern the partition core needs.

package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// Axis selects the direction of SumAxis.
type Axis int

const (
	// ByRow yields one sum per row: SumAxis(ByRow)[r] == Σ GetRow(r).
	ByRow Axis = iota
	// ByCol yields one sum per column: SumAxis(ByCol)[c] == Σ GetCol(c).
	ByCol
)

// Matrix is a mutable r×c sparse matrix of nonnegative int64 counts.
// Zero entries are not stored; an entry decremented to zero is deleted.
// Matrix is not safe for concurrent use; clone per goroutine instead.
type Matrix struct {
	rows, cols int
	data       []map[int]int64 // data[r][c] = count; absent key means 0
}

// New creates an r×c zero matrix.
// Returns ErrBadShape when rows or cols is non-positive.
// Complexity: O(r) allocation.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	data := make([]map[int]int64, rows)
	for r := range data {
		data[r] = make(map[int]int64)
	}

	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// check validates (row, col) against the matrix shape.
// The returned error carries the offending index and the valid maximum.
func (m *Matrix) check(row, col int) error {
	if row < 0 || row >= m.rows {
		return outOfRange(row, m.rows)
	}
	if col < 0 || col >= m.cols {
		return outOfRange(col, m.cols)
	}

	return nil
}

// set writes v at (row, col), deleting the key when v becomes zero so that
// Nonzero enumerates exactly the support. Indices must be pre-validated.
func (m *Matrix) set(row, col int, v int64) {
	if v == 0 {
		delete(m.data[row], col)
		return
	}
	m.data[row][col] = v
}

// Add increments entry (row, col) by delta.
// Returns ErrOutOfRange on an invalid index. Complexity: O(1) expected.
func (m *Matrix) Add(row, col int, delta int64) error {
	if err := m.check(row, col); err != nil {
		return err
	}
	m.set(row, col, m.data[row][col]+delta)

	return nil
}

// AddRow increments several columns of one row in a single pass — the
// batched form used to fold an entire vertex's out-edges into its block's
// row. cols and weights must be the same length.
// Returns ErrOutOfRange on any invalid index, ErrDimensionMismatch on
// unpaired slices; validation happens before any entry is touched.
// Complexity: O(len(cols)) expected.
func (m *Matrix) AddRow(row int, cols []int, weights []int64) error {
	if len(cols) != len(weights) {
		return fmt.Errorf("sparse: AddRow: %d cols vs %d weights: %w",
			len(cols), len(weights), ErrDimensionMismatch)
	}
	if row < 0 || row >= m.rows {
		return outOfRange(row, m.rows)
	}
	for _, c := range cols {
		if c < 0 || c >= m.cols {
			return outOfRange(c, m.cols)
		}
	}
	for i, c := range cols {
		m.set(row, c, m.data[row][c]+weights[i])
	}

	return nil
}

// Sub decrements entry (row, col) by delta.
// A result below zero indicates a caller defect and is not defended.
// Returns ErrOutOfRange on an invalid index. Complexity: O(1) expected.
func (m *Matrix) Sub(row, col int, delta int64) error {
	if err := m.check(row, col); err != nil {
		return err
	}
	m.set(row, col, m.data[row][col]-delta)

	return nil
}

// Get returns entry (row, col), 0 if absent.
// Returns ErrOutOfRange on an invalid index. Complexity: O(1) expected.
func (m *Matrix) Get(row, col int) (int64, error) {
	if err := m.check(row, col); err != nil {
		return 0, err
	}

	return m.data[row][col], nil
}

// GetRow returns a dense length-Cols snapshot of one row.
// The snapshot shares no storage with the matrix. Complexity: O(Cols).
func (m *Matrix) GetRow(row int) ([]int64, error) {
	if row < 0 || row >= m.rows {
		return nil, outOfRange(row, m.rows)
	}
	out := make([]int64, m.cols)
	for c, v := range m.data[row] {
		out[c] = v
	}

	return out, nil
}

// GetCol returns a dense length-Rows snapshot of one column.
// Complexity: O(Rows) expected.
func (m *Matrix) GetCol(col int) ([]int64, error) {
	if col < 0 || col >= m.cols {
		return nil, outOfRange(col, m.cols)
	}
	out := make([]int64, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.data[r][col]
	}

	return out, nil
}

// Sum returns the total over all entries. Complexity: O(nnz).
func (m *Matrix) Sum() int64 {
	var total int64
	for r := 0; r < m.rows; r++ {
		for _, v := range m.data[r] {
			total += v
		}
	}

	return total
}

// SumAxis returns the per-row (ByRow) or per-column (ByCol) sum vector.
// Complexity: O(nnz), plus O(Rows) or O(Cols) for the output.
func (m *Matrix) SumAxis(axis Axis) []int64 {
	if axis == ByRow {
		out := make([]int64, m.rows)
		for r := 0; r < m.rows; r++ {
			for _, v := range m.data[r] {
				out[r] += v
			}
		}

		return out
	}
	out := make([]int64, m.cols)
	for r := 0; r < m.rows; r++ {
		for c, v := range m.data[r] {
			out[c] += v
		}
	}

	return out
}

// Nonzero returns paired row/col index lists of every stored entry, in
// ascending (row, col) order. The fixed order makes any accumulation over
// the support deterministic. Complexity: O(nnz log nnz) for the per-row sort.
func (m *Matrix) Nonzero() (rows, cols []int) {
	for r := 0; r < m.rows; r++ {
		keys := make([]int, 0, len(m.data[r]))
		for c := range m.data[r] {
			keys = append(keys, c)
		}
		sort.Ints(keys)
		for _, c := range keys {
			rows = append(rows, r)
			cols = append(cols, c)
		}
	}

	return rows, cols
}

// Values returns the stored entries in the same (row, col) ascending order
// as Nonzero, so the three slices zip into triplets. Complexity: as Nonzero.
func (m *Matrix) Values() []int64 {
	var out []int64
	for r := 0; r < m.rows; r++ {
		keys := make([]int, 0, len(m.data[r]))
		for c := range m.data[r] {
			keys = append(keys, c)
		}
		sort.Ints(keys)
		for _, c := range keys {
			out = append(out, m.data[r][c])
		}
	}

	return out
}

// UpdateEdgeCounts replaces the two rows and two columns affected by moving
// one vertex from currentBlock to proposedBlock, in a single call. The four
// dense vectors are the NEW contents, not deltas; they are applied rows
// first, then columns, so the column vectors win at the four intersections
// (a consistent proposal computes identical values there).
//
// Every index and vector length is validated before the first write — on
// error the matrix is unchanged.
// Returns ErrOutOfRange / ErrDimensionMismatch. Complexity: O(Rows + Cols).
func (m *Matrix) UpdateEdgeCounts(currentBlock, proposedBlock int, currentRow, proposedRow, currentCol, proposedCol []int64) error {
	if currentBlock < 0 || currentBlock >= m.rows {
		return outOfRange(currentBlock, m.rows)
	}
	if proposedBlock < 0 || proposedBlock >= m.rows {
		return outOfRange(proposedBlock, m.rows)
	}
	if len(currentRow) != m.cols || len(proposedRow) != m.cols {
		return fmt.Errorf("sparse: UpdateEdgeCounts: row vectors must have length %d: %w",
			m.cols, ErrDimensionMismatch)
	}
	if len(currentCol) != m.rows || len(proposedCol) != m.rows {
		return fmt.Errorf("sparse: UpdateEdgeCounts: column vectors must have length %d: %w",
			m.rows, ErrDimensionMismatch)
	}

	m.setRow(currentBlock, currentRow)
	m.setRow(proposedBlock, proposedRow)
	m.setCol(currentBlock, currentCol)
	m.setCol(proposedBlock, proposedCol)

	return nil
}

// setRow replaces row r with the dense vector v, dropping zero entries.
func (m *Matrix) setRow(r int, v []int64) {
	fresh := make(map[int]int64, len(m.data[r]))
	for c, val := range v {
		if val != 0 {
			fresh[c] = val
		}
	}
	m.data[r] = fresh
}

// setCol replaces column c with the dense vector v, dropping zero entries.
func (m *Matrix) setCol(c int, v []int64) {
	for r := 0; r < m.rows; r++ {
		m.set(r, c, v[r])
	}
}

// Clone returns a deep copy sharing no storage with the original.
// Complexity: O(Rows + nnz).
func (m *Matrix) Clone() *Matrix {
	data := make([]map[int]int64, m.rows)
	for r := 0; r < m.rows; r++ {
		fresh := make(map[int]int64, len(m.data[r]))
		for c, v := range m.data[r] {
			fresh[c] = v
		}
		data[r] = fresh
	}

	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether two matrices have the same shape and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for r := 0; r < m.rows; r++ {
		if len(m.data[r]) != len(o.data[r]) {
			return false
		}
		for c, v := range m.data[r] {
			if o.data[r][c] != v {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging, one dense row per line.
// Complexity: O(Rows*Cols).
func (m *Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteString("[")
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[r][c])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
