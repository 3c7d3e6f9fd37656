// Package boundary: rank bookkeeping — from Smith normal forms to
// Betti numbers and the Euler characteristic.
package boundary

import "fmt"

// BettiNumbers reduces every boundary matrix to Smith normal form and
// assembles the ordinary Betti numbers [β₀, …, β_D].
//
// For each dimension p the normal form yields rank Z_p (zero columns)
// and rank B_{p-1} (non-zero rows). The boundary ranks shift one
// dimension down — rank B_p is read off matrix p+1, zero at the top —
// and β_p = rank Z_p − rank B_p. β₀ gains one: the 0-th matrix counts
// against the implicit empty simplex, which undercounts components by
// exactly one (the reduced-to-ordinary promotion).
//
// An empty store yields an empty vector. Stored matrices are left
// untouched; reduction clones.
//
// Complexity: one SNF reduction per dimension.
func (s *Store[V]) BettiNumbers() ([]int, error) {
	if s.dim < 0 {
		return []int{}, nil
	}

	ranksZ := make([]int, s.dim+1)     // rank Z_p per dimension
	ranksBprev := make([]int, s.dim+1) // rank B_{p-1}, read off matrix p
	for p := 0; p <= s.dim; p++ {
		m, ok := s.matrices[p]
		if !ok {
			return nil, fmt.Errorf("Store.BettiNumbers: dimension %d: %w", p, ErrNotPresent)
		}
		snf := m.SmithNormalForm()
		ranksZ[p] = snf.ZeroColumns()
		ranksBprev[p] = snf.Rank()
	}

	betti := make([]int, s.dim+1)
	for p := 0; p <= s.dim; p++ {
		rankB := 0 // rank B_D = 0: nothing bounds from above the top
		if p+1 <= s.dim {
			rankB = ranksBprev[p+1]
		}
		betti[p] = ranksZ[p] - rankB
		if betti[p] < 0 {
			betti[p] = 0
		}
	}
	betti[0]++

	return betti, nil
}

// ReducedBettiNumbers returns the Betti numbers with β₀ lowered by
// one: the reduced 0-th number counts gaps between components rather
// than components.
func (s *Store[V]) ReducedBettiNumbers() ([]int, error) {
	betti, err := s.BettiNumbers()
	if err != nil || len(betti) == 0 {
		return betti, err
	}
	betti[0]--

	return betti, nil
}

// EulerCharacteristic returns the alternating sum of the Betti
// numbers, χ = Σ (−1)^p β_p.
func (s *Store[V]) EulerCharacteristic() (int, error) {
	betti, err := s.BettiNumbers()
	if err != nil {
		return 0, err
	}

	chi := 0
	for p, b := range betti {
		if p%2 == 0 {
			chi += b
		} else {
			chi -= b
		}
	}

	return chi, nil
}
