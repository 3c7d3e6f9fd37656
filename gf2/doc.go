// Package gf2 implements {0,1} matrices over the two-element field
// GF(2) and their reduction to Smith normal form.
//
// What:
//
//   - Matrix: a rows×cols binary matrix whose rows are bit vectors
//     (github.com/bits-and-blooms/bitset). Row swaps are O(1) pointer
//     exchanges and row additions are word-wide XORs, which is what the
//     reduction spends almost all of its time doing.
//   - SmithNormalForm: reduce a matrix to the canonical block form with
//     an identity in the upper-left corner and zeros elsewhere, using
//     only row/column swaps and XOR additions (Edelsbrunner & Harer,
//     "Computational Topology: An Introduction").
//   - Rank / ZeroColumns: read the two ranks a boundary matrix carries
//     off its normal form — rank(B_p) is the number of non-zero rows,
//     rank(Z_p) the number of zero columns.
//
// Why:
//
//	Over Z/2 every homology computation bottoms out in these matrices:
//	the p-th boundary matrix of a simplicial complex is binary, and its
//	Smith normal form hands over the ranks that Betti numbers are made
//	of. Keeping the field fixed at GF(2) keeps the arithmetic exact —
//	addition is XOR, there is no pivot growth and no overflow.
//
// Determinism:
//
//	The pivot rule is pinned: the lexicographically smallest (row-major)
//	1-entry of the lower-right submatrix is chosen at every step, so
//	equal inputs reduce to equal outputs bit-for-bit.
//
// Complexity:
//
//   - SmithNormalForm: O(r · m · n) time for rank r (row additions are
//     word-wide, column operations are not); O(m · n / w) memory for the
//     working copy, w the machine word width.
//   - Rank: O(m · n / w). ZeroColumns: O(m · n).
//
// Errors:
//
//   - ErrBadShape    — non-positive or ragged dimensions
//   - ErrNotBinary   — an entry outside {0,1}
//   - ErrOutOfRange  — row/column index outside the matrix
//
// The reducer never mutates its receiver; it works on a clone.
package gf2
