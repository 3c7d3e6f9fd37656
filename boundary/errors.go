package boundary

import "errors"

var (
	// ErrNoSimplices indicates AddSimplices was called with an empty list.
	ErrNoSimplices = errors.New("boundary: no simplices given")

	// ErrMissingLowerDimension indicates p-simplices were added before any
	// (p−1)-simplices exist; boundary matrices build bottom-up.
	ErrMissingLowerDimension = errors.New("boundary: no lower-dimensional precedent")

	// ErrDimensionMismatch indicates inconsistent dimensions: mixed sizes
	// in one AddSimplices call, a facet absent from the lower index map,
	// or a dense matrix whose rows do not match the columns below.
	ErrDimensionMismatch = errors.New("boundary: dimension mismatch")

	// ErrNotPresent indicates the requested dimension has no matrix.
	ErrNotPresent = errors.New("boundary: dimension not present")

	// ErrNilMatrix indicates a nil matrix was handed to AddBoundaryMatrix.
	ErrNilMatrix = errors.New("boundary: nil matrix")
)
