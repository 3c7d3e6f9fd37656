// Package builder constructs canonical simplicial complexes with known
// homology — the standard shapes used in tests, examples and
// exploration.
//
// What:
//
//   - Ball          — solid tetrahedron, β = [1,0,0,0], χ = 1
//   - Sphere        — hollow tetrahedron, β = [1,0,1], χ = 2
//   - Cylinder      — six-triangle tube, β = [1,1,0], χ = 0
//   - MobiusStrip   — six-triangle one-sided band, β = [1,1,0], χ = 0
//   - Torus         — minimal 9-vertex triangulation, β = [1,2,1], χ = 0
//   - KleinBottle   — minimal 9-vertex triangulation; over Z/2 it
//     matches the torus, β = [1,2,1], χ = 0
//
// Every constructor inserts a fixed, pre-sorted simplex list with its
// closure (a single tetrahedron for Ball and Sphere, Sphere then
// removing the top cell; triangle lists for the surfaces), so the
// resulting trees are deterministic: equal calls give equal dumps,
// enumerations and Betti vectors.
//
// Why:
//
//	Handwritten triangulations are error-prone and the interesting ones
//	(torus, Klein bottle) are large enough to get wrong silently. Keeping
//	the canonical datasets in one place gives every consumer the same
//	ground truth.
package builder
