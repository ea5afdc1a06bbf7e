package sfhandle

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced look-back times from start to stop
// inclusive. It needs at least two points.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, errors.New("grid needs at least two points")
	}
	return floats.Span(make([]float64, n), start, stop), nil
}

// Geomspace returns n logarithmically spaced look-back times from start to
// stop inclusive. Both bounds must be positive and at least two points are
// needed.
func Geomspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, errors.New("grid needs at least two points")
	}
	if start <= 0 || stop <= 0 {
		return nil, errors.New("geometric grid bounds must be positive")
	}
	return floats.LogSpan(make([]float64, n), start, stop), nil
}
