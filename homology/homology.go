// Package homology: the tree → matrices → ranks pipeline.
package homology

import (
	"cmp"
	"fmt"

	"github.com/kc-howe/betti/boundary"
	"github.com/kc-howe/betti/simplex"
)

// BoundaryStore builds the boundary-matrix snapshot of the complex:
// for every dimension p up to the tree's, the p-simplices are
// enumerated in trie order and fed to the store, which derives the
// facet relations and index maps. An empty tree yields an empty store.
//
// The snapshot is independent of the tree; mutating the tree afterwards
// does not affect it.
// Complexity: O(Σ_p n_p · p) tree work plus the store's matrix builds.
func BoundaryStore[V cmp.Ordered](t *simplex.Tree[V]) (*boundary.Store[V], error) {
	store := boundary.NewStore[V]()
	for p := 0; p <= t.Dimension(); p++ {
		nodes := t.KSimplices(p)
		simplices := make([][]V, len(nodes))
		for i, n := range nodes {
			simplices[i] = n.VertexList()
		}
		if err := store.AddSimplices(simplices); err != nil {
			return nil, fmt.Errorf("homology.BoundaryStore(p=%d): %w", p, err)
		}
	}

	return store, nil
}

// BettiNumbers computes the ordinary Betti numbers [β₀, …, β_D] of the
// complex. An empty complex yields an empty vector.
func BettiNumbers[V cmp.Ordered](t *simplex.Tree[V]) ([]int, error) {
	store, err := BoundaryStore(t)
	if err != nil {
		return nil, err
	}

	return store.BettiNumbers()
}

// ReducedBettiNumbers computes the Betti numbers with β₀ lowered by
// one, counting gaps between components instead of components.
func ReducedBettiNumbers[V cmp.Ordered](t *simplex.Tree[V]) ([]int, error) {
	store, err := BoundaryStore(t)
	if err != nil {
		return nil, err
	}

	return store.ReducedBettiNumbers()
}

// EulerCharacteristic computes χ = Σ (−1)^p β_p from the Betti numbers.
func EulerCharacteristic[V cmp.Ordered](t *simplex.Tree[V]) (int, error) {
	store, err := BoundaryStore(t)
	if err != nil {
		return 0, err
	}

	return store.EulerCharacteristic()
}

// EulerCharacteristicByCount computes χ = Σ (−1)^p (# p-simplices)
// straight off the tree, without building a single matrix. Must agree
// with EulerCharacteristic on every complex; tests use it as an
// independent oracle.
func EulerCharacteristicByCount[V cmp.Ordered](t *simplex.Tree[V]) int {
	chi := 0
	for p := 0; p <= t.Dimension(); p++ {
		count := len(t.KSimplices(p))
		if p%2 == 0 {
			chi += count
		} else {
			chi -= count
		}
	}

	return chi
}
