package simplex

import "errors"

var (
	// ErrEmptySimplex indicates an empty simplex was passed to an
	// operation that needs a non-empty one (insert, remove, facets,
	// cofaces, collapse). The empty simplex is the root and cannot be
	// inserted or removed.
	ErrEmptySimplex = errors.New("simplex: empty simplex")

	// ErrMissingFace indicates InsertOne was called on a simplex whose
	// facets are not all present in the complex.
	ErrMissingFace = errors.New("simplex: missing face")

	// ErrNotPresent indicates the referenced simplex is not in the complex.
	ErrNotPresent = errors.New("simplex: simplex not in complex")

	// ErrNotCollapsible indicates ElementaryCollapse found no facet whose
	// only coface is the given simplex.
	ErrNotCollapsible = errors.New("simplex: simplex not collapsible")
)
