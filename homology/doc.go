// Package homology derives Betti numbers and the Euler characteristic
// of a simplex tree by translating it into boundary matrices and
// reducing them over Z/2.
//
// What:
//
//   - BoundaryStore: snapshot a simplex.Tree into a boundary.Store —
//     one k-simplex sweep per dimension, in trie order, so equal
//     complexes always produce equal matrices.
//   - BettiNumbers / ReducedBettiNumbers: the rank bookkeeping of the
//     store applied to that snapshot; an empty complex yields an empty
//     vector.
//   - EulerCharacteristic: alternating sum of the Betti numbers.
//   - EulerCharacteristicByCount: the same invariant computed the
//     other way, as the alternating count of simplices per dimension —
//     an independent cross-check that never touches a matrix.
//
// Why:
//
//	The simplex tree is the editable representation; the boundary
//	matrices are the computable one. This package is the seam between
//	them, in the style of an algorithm package operating on a core
//	container. The store it builds is a short-lived derived object:
//	later tree mutations do not affect it, and it is released with the
//	query.
//
// Errors: translation reuses the boundary package's sentinels; a
// well-formed tree cannot trip them, but they propagate unchanged if
// a caller hands the store malformed extra data.
package homology
