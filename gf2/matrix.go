// Package gf2: concrete binary-matrix type — a fixed shape and one bit
// vector per row. The mutating helpers used by the reducer live here;
// the reduction itself is in snf.go.
package gf2

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Matrix is a rows×cols matrix over GF(2).
// Each row is a bitset of length cols; a set bit is a 1 entry.
type Matrix struct {
	rows, cols int
	data       []*bitset.BitSet // one bit vector per row, len == rows
}

// New creates a rows×cols zero matrix.
// Returns ErrBadShape unless rows > 0 and cols > 0.
// Complexity: O(rows · cols / w).
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("gf2.New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	data := make([]*bitset.BitSet, rows)
	for i := range data {
		data[i] = bitset.New(uint(cols))
	}

	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// NewFromRows builds a matrix from a rectangular slice of {0,1} ints.
// Returns ErrBadShape for empty or ragged input and ErrNotBinary for
// entries outside {0,1}.
// Complexity: O(rows · cols).
func NewFromRows(entries [][]int) (*Matrix, error) {
	if len(entries) == 0 || len(entries[0]) == 0 {
		return nil, fmt.Errorf("gf2.NewFromRows: empty input: %w", ErrBadShape)
	}

	m, err := New(len(entries), len(entries[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range entries {
		if len(row) != m.cols {
			return nil, fmt.Errorf("gf2.NewFromRows: row %d has %d entries, want %d: %w",
				i, len(row), m.cols, ErrBadShape)
		}
		for j, v := range row {
			switch v {
			case 0:
				// zero is the default
			case 1:
				m.data[i].Set(uint(j))
			default:
				return nil, fmt.Errorf("gf2.NewFromRows: entry (%d,%d)=%d: %w", i, j, v, ErrNotBinary)
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the entry at (row, col) as 0 or 1.
// Returns ErrOutOfRange for indices outside the matrix.
func (m *Matrix) At(row, col int) (int, error) {
	if err := m.check(row, col); err != nil {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, err)
	}
	if m.data[row].Test(uint(col)) {
		return 1, nil
	}

	return 0, nil
}

// Set assigns value v (0 or 1) at (row, col).
// Returns ErrOutOfRange for bad indices and ErrNotBinary for other v.
func (m *Matrix) Set(row, col, v int) error {
	if err := m.check(row, col); err != nil {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", row, col, err)
	}
	if v != 0 && v != 1 {
		return fmt.Errorf("Matrix.Set(%d,%d)=%d: %w", row, col, v, ErrNotBinary)
	}
	m.data[row].SetTo(uint(col), v == 1)

	return nil
}

// check validates matrix indices.
func (m *Matrix) check(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(rows · cols / w).
func (m *Matrix) Clone() *Matrix {
	data := make([]*bitset.BitSet, m.rows)
	for i, row := range m.data {
		data[i] = row.Clone()
	}

	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether m and other have the same shape and entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, row := range m.data {
		if !row.Equal(other.data[i]) {
			return false
		}
	}

	return true
}

// String renders the matrix row by row, e.g. "1 0 1\n0 1 1".
// Intended for debugging and golden tests.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			if m.data[i].Test(uint(j)) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}

	return b.String()
}

// swapRows exchanges rows i and j. O(1): rows are pointers.
func (m *Matrix) swapRows(i, j int) {
	m.data[i], m.data[j] = m.data[j], m.data[i]
}

// swapCols exchanges columns i and j. O(rows).
func (m *Matrix) swapCols(i, j int) {
	if i == j {
		return
	}
	for _, row := range m.data {
		bi, bj := row.Test(uint(i)), row.Test(uint(j))
		row.SetTo(uint(i), bj)
		row.SetTo(uint(j), bi)
	}
}

// addRow XORs row src into row dst (dst += src over GF(2)).
// Word-wide via the bitset symmetric difference.
func (m *Matrix) addRow(dst, src int) {
	m.data[dst].InPlaceSymmetricDifference(m.data[src])
}

// addCol XORs column src into column dst. O(rows).
func (m *Matrix) addCol(dst, src int) {
	for _, row := range m.data {
		if row.Test(uint(src)) {
			row.SetTo(uint(dst), !row.Test(uint(dst)))
		}
	}
}
