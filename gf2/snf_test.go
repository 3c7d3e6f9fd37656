package gf2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kc-howe/betti/gf2"
)

// tetrahedronEdgeBoundary is the boundary matrix of the six edges of a
// tetrahedron over its four vertices (rank 3).
func tetrahedronEdgeBoundary(t *testing.T) *gf2.Matrix {
	t.Helper()
	m, err := gf2.NewFromRows([][]int{
		{1, 1, 1, 0, 0, 0},
		{1, 0, 0, 1, 1, 0},
		{0, 1, 0, 1, 0, 1},
		{0, 0, 1, 0, 1, 1},
	})
	require.NoError(t, err)

	return m
}

// TestSNF_Simple2x2 pins the normal form of the all-ones 2×2 matrix.
func TestSNF_Simple2x2(t *testing.T) {
	m, err := gf2.NewFromRows([][]int{
		{1, 1},
		{1, 1},
	})
	require.NoError(t, err)

	want, err := gf2.NewFromRows([][]int{
		{1, 0},
		{0, 0},
	})
	require.NoError(t, err)

	s := m.SmithNormalForm()
	assert.True(t, s.Equal(want), "SNF of the all-ones 2×2 is E_1:\n%s", s)
}

// TestSNF_ZeroMatrix verifies the zero matrix is already in normal form.
func TestSNF_ZeroMatrix(t *testing.T) {
	m, err := gf2.New(3, 4)
	require.NoError(t, err)

	s := m.SmithNormalForm()
	assert.True(t, s.Equal(m), "zero matrix reduces to itself")
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 4, s.ZeroColumns())
}

// TestSNF_TetrahedronEdges reduces the 4×6 edge boundary of the
// tetrahedron: rank 3, kernel dimension 3.
func TestSNF_TetrahedronEdges(t *testing.T) {
	s := tetrahedronEdgeBoundary(t).SmithNormalForm()

	assert.Equal(t, 3, s.Rank(), "edge boundary has rank 3")
	assert.Equal(t, 3, s.ZeroColumns(), "cycle space has dimension 3")

	// The identity block must sit in the upper-left corner.
	for i := 0; i < 3; i++ {
		for j := 0; j < 6; j++ {
			v, err := s.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 1, v, "diagonal entry (%d,%d)", i, j)
			} else {
				assert.Equal(t, 0, v, "off-diagonal entry (%d,%d)", i, j)
			}
		}
	}
}

// TestSNF_Idempotent verifies reducing a normal form returns it unchanged.
func TestSNF_Idempotent(t *testing.T) {
	s := tetrahedronEdgeBoundary(t).SmithNormalForm()
	again := s.SmithNormalForm()

	assert.True(t, again.Equal(s), "SNF must be a fixed point of reduction")
}

// TestSNF_DoesNotMutateInput verifies the reducer works on a copy.
func TestSNF_DoesNotMutateInput(t *testing.T) {
	m := tetrahedronEdgeBoundary(t)
	snapshot := m.Clone()

	_ = m.SmithNormalForm()
	assert.True(t, m.Equal(snapshot), "reduction must leave the input untouched")
}

// TestSNF_Deterministic verifies equal inputs reduce identically.
func TestSNF_Deterministic(t *testing.T) {
	a := tetrahedronEdgeBoundary(t).SmithNormalForm()
	b := tetrahedronEdgeBoundary(t).SmithNormalForm()

	assert.True(t, a.Equal(b), "reduction must be reproducible bit-for-bit")
}

// TestSNF_WideAndTall exercises non-square shapes in both orientations.
func TestSNF_WideAndTall(t *testing.T) {
	wide, err := gf2.NewFromRows([][]int{
		{1, 1, 1, 1},
	})
	require.NoError(t, err)
	s := wide.SmithNormalForm()
	assert.Equal(t, 1, s.Rank())
	assert.Equal(t, 3, s.ZeroColumns())

	tall, err := gf2.NewFromRows([][]int{
		{1},
		{1},
		{1},
		{1},
	})
	require.NoError(t, err)
	s = tall.SmithNormalForm()
	assert.Equal(t, 1, s.Rank())
	assert.Equal(t, 0, s.ZeroColumns())
}
