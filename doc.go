// Package betti is an in-memory toolkit for abstract simplicial
// complexes and their Z/2 homology.
//
// What is betti?
//
//	A small, deterministic library that represents a simplicial complex
//	two ways and connects them:
//
//	  • simplex/   — the simplex tree: a trie over sorted vertex labels
//	    with parent and circular sibling links; insert, remove, search,
//	    facet and coface location, k-simplex enumeration, elementary
//	    collapse
//	  • gf2/       — {0,1} matrices over the two-element field and a
//	    Smith-normal-form reducer (row/column swaps + XOR additions)
//	  • boundary/  — per-dimension boundary matrices with index maps
//	    relating matrix positions to simplices
//	  • homology/  — the facade: simplex tree → boundary matrices →
//	    SNF ranks → Betti numbers and Euler characteristic
//	  • builder/   — canonical complexes (ball, sphere, cylinder,
//	    Möbius strip, torus, Klein bottle) for tests and exploration
//
// Why choose betti?
//
//   - Deterministic — every enumeration and every reduction is
//     reproducible bit-for-bit across runs
//   - Exact         — all arithmetic is XOR over Z/2; no tolerances
//   - Pure Go       — no cgo; a handful of small, well-known deps
//
// Quick ASCII example (the hollow triangle, β = [1, 1]):
//
//	    0───1
//	     ╲ ╱
//	      2
//
// Start with simplex.NewTree and homology.BettiNumbers; see the
// example tests in each package for usage patterns.
package betti
