package interpolate

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when the sample and value series handed to
	// New1D have different lengths.
	ErrShapeMismatch = errors.New("sample and value series length mismatch")

	// ErrInsufficientData is returned when too few sample points remain to
	// fit the requested interpolation kind.
	ErrInsufficientData = errors.New("not enough sample points")

	// ErrUnknownKind is returned for interpolation kind names outside the
	// supported set.
	ErrUnknownKind = errors.New("unknown interpolation kind")
)

// DomainError reports grid points that fall outside the sampled domain while
// bounds checking is requested. Values holds every offending grid point.
type DomainError struct {
	Values   []float64
	Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%d grid points outside the sampled domain [%g, %g]: %v",
		len(e.Values), e.Min, e.Max, e.Values)
}
