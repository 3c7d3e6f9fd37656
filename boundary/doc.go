// Package boundary accumulates the boundary matrices of a simplicial
// complex, one per dimension, together with the index maps relating
// matrix rows and columns back to simplices.
//
// What:
//
//	The p-th boundary matrix of a complex has entry (i, j) = 1 iff the
//	i-th (p−1)-simplex is a face of the j-th p-simplex; the 0-th matrix
//	is the single all-ones row over the vertices (every vertex has the
//	empty simplex as its boundary). A Store collects these matrices
//	dimension by dimension:
//
//	  • AddSimplices      — sparse path: hand over the p-simplices as
//	    sorted vertex lists; the store derives the facet relations and
//	    the index map
//	  • AddBoundaryMatrix — dense path: hand over a ready-made gf2
//	    matrix, cross-checked against the dimension below
//	  • BettiNumbers / ReducedBettiNumbers / EulerCharacteristic —
//	    reduce every matrix to Smith normal form and assemble the rank
//	    bookkeeping
//
// Why:
//
//	The rank of Z_p (cycles) is the number of zero columns of the p-th
//	matrix's normal form; the rank of B_{p-1} (boundaries) is its
//	number of non-zero rows. Shifting the latter one dimension down and
//	subtracting gives the reduced Betti numbers; promoting β₀ by one
//	yields the ordinary ones. The store is the single place where
//	matrix positions and simplex identities meet, so determinism of the
//	index maps (sorted, duplicate-free) is what makes Betti queries
//	reproducible.
//
// Lifecycle:
//
//	A Store is a short-lived snapshot derived from a complex; it does
//	not alias tree state. Stored matrices are never mutated by the
//	reduction — the reducer clones.
//
// Errors:
//
//   - ErrNoSimplices          — AddSimplices with an empty list
//   - ErrMissingLowerDimension — adding p-simplices with no (p−1) data
//   - ErrDimensionMismatch    — mixed input dimensions, a facet missing
//     from the lower index map, or a dense shape cross-check failure
//   - ErrNotPresent           — Get/IndexMap on an absent dimension
//   - ErrNilMatrix            — AddBoundaryMatrix(nil)
package boundary
