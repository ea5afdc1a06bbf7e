package sfhandle

import "errors"

var (
	// ErrShapeMismatch is returned when the three series handed to New do not
	// share a single length.
	ErrShapeMismatch = errors.New("series length mismatch")
)
