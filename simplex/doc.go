// Package simplex implements the simplex tree: a combinatorial index
// for abstract simplicial complexes, after Boissonnat & Maria.
//
// What:
//
//	A complex is stored as a trie over sorted vertex labels. The root is
//	the empty simplex; a child edge carries a vertex label strictly
//	greater than its parent's edge label, so the path from the root to a
//	node spells the node's simplex in canonical (sorted) order. Every
//	node additionally sits in a circular singly-linked list of all nodes
//	at the same depth with the same label — the structure that makes
//	coface location sub-quadratic without materializing higher
//	simplices.
//
//	Supported operations:
//
//	  • Search, InsertOne, InsertClosed, Remove
//	  • KSimplices(k): all k-dimensional simplices in trie order
//	  • Facets, Cofaces: codimension-1 faces and all strict cofaces
//	  • ElementaryCollapse: remove a free facet pair, preserving
//	    homotopy type
//	  • Dump: deterministic nested textual form for golden tests
//
// Why:
//
//	Simplex trees carry exactly the structure homology computation
//	needs — fast membership, ordered k-simplex enumeration, and coface
//	location for sound removal — in memory linear in the number of
//	simplices.
//
// Vertex labels:
//
//	Tree is generic over V (cmp.Ordered): ints, strings and floats work
//	directly. Composite labels such as pixel coordinates flatten to
//	strings ("x:y") on the caller's side. Inputs to every public
//	operation are canonicalized — sorted and de-duplicated — before use.
//
// Determinism:
//
//	Children are kept in a label-ordered treemap, so every enumeration
//	(KSimplices, Facets, Cofaces after sorting, Dump) is lexicographic,
//	shallowest-first, and stable across runs.
//
// Concurrency:
//
//	A Tree is single-threaded: operations complete on the caller's
//	goroutine and callers must not mutate a tree while enumerating it.
//
// Errors:
//
//   - ErrEmptySimplex   — empty simplex passed to an insert, Remove,
//     Facets, Cofaces or ElementaryCollapse
//   - ErrMissingFace    — InsertOne without all facets present
//   - ErrNotPresent     — operation on a simplex outside the complex
//   - ErrNotCollapsible — ElementaryCollapse with no free facet
//
// Failed operations leave the tree exactly as it was.
package simplex
