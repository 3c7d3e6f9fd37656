// Package boundary: the Store container and its two ingestion paths.
package boundary

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/kc-howe/betti/gf2"
)

// Store holds the boundary matrices of a complex keyed by dimension,
// alongside the sorted index maps that give the simplex at each column
// position. The zero value is not usable; call NewStore.
type Store[V cmp.Ordered] struct {
	matrices  map[int]*gf2.Matrix
	indexMaps map[int][][]V
	dim       int // highest dimension present; -1 when empty
}

// NewStore creates an empty boundary-matrix store.
func NewStore[V cmp.Ordered]() *Store[V] {
	return &Store[V]{
		matrices:  make(map[int]*gf2.Matrix),
		indexMaps: make(map[int][][]V),
		dim:       -1,
	}
}

// AddSimplices ingests all simplices of one dimension p and builds
// boundary[p]. The simplices arrive as vertex lists sharing one length
// p+1; they are sorted and de-duplicated into the index map, and for
// p ≥ 1 every facet is resolved to its row through index map p−1.
// Re-adding a dimension overwrites it.
//
// Errors: ErrNoSimplices for an empty list, ErrDimensionMismatch for
// mixed lengths or a facet missing below (a broken triangulation),
// ErrMissingLowerDimension when dimension p−1 was never added.
//
// Complexity: O(n log n) for the index map plus O(n · p) row lookups.
func (s *Store[V]) AddSimplices(simplices [][]V) error {
	if len(simplices) == 0 {
		return fmt.Errorf("Store.AddSimplices: %w", ErrNoSimplices)
	}

	p := len(simplices[0]) - 1
	sorted := make([][]V, len(simplices))
	for i, sim := range simplices {
		if len(sim) != p+1 {
			return fmt.Errorf("Store.AddSimplices: simplex %v has dimension %d, want %d: %w",
				sim, len(sim)-1, p, ErrDimensionMismatch)
		}
		sorted[i] = slices.Clone(sim)
		slices.Sort(sorted[i])
	}
	if p > 0 {
		if _, ok := s.matrices[p-1]; !ok {
			return fmt.Errorf("Store.AddSimplices(p=%d): %w", p, ErrMissingLowerDimension)
		}
	}

	// Deterministic column order: sorted, duplicate-free.
	slices.SortFunc(sorted, slices.Compare)
	sorted = slices.CompactFunc(sorted, func(a, b []V) bool { return slices.Equal(a, b) })

	var matrix *gf2.Matrix
	var err error
	if p == 0 {
		// One row for the empty simplex, a 1 under every vertex.
		if matrix, err = gf2.New(1, len(sorted)); err != nil {
			return fmt.Errorf("Store.AddSimplices: %w", err)
		}
		for j := range sorted {
			if err = matrix.Set(0, j, 1); err != nil {
				return fmt.Errorf("Store.AddSimplices: %w", err)
			}
		}
	} else {
		if matrix, err = s.buildBoundary(p, sorted); err != nil {
			return err
		}
	}

	s.matrices[p] = matrix
	s.indexMaps[p] = sorted
	if p > s.dim {
		s.dim = p
	}

	return nil
}

// buildBoundary assembles the (p−1)×p incidence matrix for p ≥ 1 by
// expanding every p-simplex into its p+1 facets.
func (s *Store[V]) buildBoundary(p int, sorted [][]V) (*gf2.Matrix, error) {
	lower := s.indexMaps[p-1]
	rowOf := make(map[string]int, len(lower))
	for i, face := range lower {
		rowOf[stableKey(face)] = i
	}

	matrix, err := gf2.New(len(lower), len(sorted))
	if err != nil {
		return nil, fmt.Errorf("Store.AddSimplices: %w", err)
	}

	// Facets of a sorted (p+1)-vertex simplex are its p-subsets.
	facet := make([]V, p)
	for j, sim := range sorted {
		for _, pick := range combin.Combinations(p+1, p) {
			for i, idx := range pick {
				facet[i] = sim[idx]
			}
			row, ok := rowOf[stableKey(facet)]
			if !ok {
				return nil, fmt.Errorf("Store.AddSimplices: facet %v of %v absent in dimension %d: %w",
					facet, sim, p-1, ErrDimensionMismatch)
			}
			if err = matrix.Set(row, j, 1); err != nil {
				return nil, fmt.Errorf("Store.AddSimplices: %w", err)
			}
		}
	}

	return matrix, nil
}

// stableKey flattens a sorted vertex list to its canonical string form
// for row lookups.
func stableKey[V cmp.Ordered](simplex []V) string {
	key := ""
	for i, v := range simplex {
		if i > 0 {
			key += ","
		}
		key += fmt.Sprint(v)
	}

	return key
}

// AddBoundaryMatrix ingests a ready-made boundary matrix for dimension
// p — the dense path for callers that already hold the incidence
// relations. No index map is recorded. The store takes ownership of m.
//
// Errors: ErrNilMatrix, ErrMissingLowerDimension when dimension p−1 is
// absent, ErrDimensionMismatch when rows(m) differs from the column
// count below.
func (s *Store[V]) AddBoundaryMatrix(p int, m *gf2.Matrix) error {
	if m == nil {
		return fmt.Errorf("Store.AddBoundaryMatrix(p=%d): %w", p, ErrNilMatrix)
	}
	if p > 0 {
		lower, ok := s.matrices[p-1]
		if !ok {
			return fmt.Errorf("Store.AddBoundaryMatrix(p=%d): %w", p, ErrMissingLowerDimension)
		}
		if lower.Cols() != m.Rows() {
			return fmt.Errorf("Store.AddBoundaryMatrix(p=%d): %d rows, want %d: %w",
				p, m.Rows(), lower.Cols(), ErrDimensionMismatch)
		}
	}

	s.matrices[p] = m
	if p > s.dim {
		s.dim = p
	}

	return nil
}

// Get returns the boundary matrix of dimension p.
// Returns ErrNotPresent when the dimension was never added.
func (s *Store[V]) Get(p int) (*gf2.Matrix, error) {
	m, ok := s.matrices[p]
	if !ok {
		return nil, fmt.Errorf("Store.Get(%d): %w", p, ErrNotPresent)
	}

	return m, nil
}

// IndexMap returns the sorted simplex list giving the column order of
// dimension p. Only the sparse path records index maps.
// Returns ErrNotPresent when absent.
func (s *Store[V]) IndexMap(p int) ([][]V, error) {
	im, ok := s.indexMaps[p]
	if !ok {
		return nil, fmt.Errorf("Store.IndexMap(%d): %w", p, ErrNotPresent)
	}

	return im, nil
}

// Dimension returns the highest dimension present, −1 when empty.
func (s *Store[V]) Dimension() int { return s.dim }
