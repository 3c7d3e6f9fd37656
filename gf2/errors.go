package gf2

import "errors"

var (
	// ErrBadShape indicates a requested or supplied shape is invalid
	// (rows <= 0, cols <= 0, or ragged input rows).
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	// Public indexers (At/Set) return this; they never panic.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrNotBinary indicates an entry outside {0,1} was supplied.
	ErrNotBinary = errors.New("gf2: entry not in {0,1}")
)
