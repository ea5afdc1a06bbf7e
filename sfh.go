// Package sfhandle models galaxy star-formation histories as piecewise time
// series in look-back time. A record holds three parallel series (look-back
// time in Myr, star-formation rate in Msun/yr, and the one-sigma error on the
// rate) and supports resampling onto arbitrary time grids as well as
// closed-form integration of the formed stellar mass.
package sfhandle

import (
	"fmt"

	"github.com/WilfriedMercier/SFHandle/interpolate"
)

// SFH is a single star-formation history. The time convention is look-back
// time: entry zero is the most recent edge, and each time value marks the
// trailing edge of a constant-rate bin. Time values are expected to be
// non-decreasing.
//
// A record owns its series; inputs are copied on construction and accessors
// hand out copies, so records can be read from several goroutines once
// resampling has finished. Resample itself mutates the cached resampled
// series and is not safe for concurrent use.
type SFH struct {
	lbTime  []float64
	rate    []float64
	rateErr []float64

	// set together by the first successful Resample call, nil before that
	resampledTime []float64
	resampledRate []float64
	resampledErr  []float64
}

// New builds a record from the look-back time, rate and rate-error series.
// The inputs are value-copied and must have equal lengths.
func New(lbTime, rate, rateErr []float64) (*SFH, error) {
	if len(rate) != len(lbTime) {
		return nil, fmt.Errorf("time series has length %d, but rate series has length %d: %w",
			len(lbTime), len(rate), ErrShapeMismatch)
	}
	if len(rateErr) != len(lbTime) {
		return nil, fmt.Errorf("time series has length %d, but rate error series has length %d: %w",
			len(lbTime), len(rateErr), ErrShapeMismatch)
	}

	return &SFH{
		lbTime:  append([]float64(nil), lbTime...),
		rate:    append([]float64(nil), rate...),
		rateErr: append([]float64(nil), rateErr...),
	}, nil
}

// Len returns the number of recorded bin edges.
func (s *SFH) Len() int {
	return len(s.lbTime)
}

// Domain returns the youngest and oldest recorded look-back times, or zeros
// for an empty record. Resampling grid points outside this range take the
// fill value (or fail, with bounds checking on).
func (s *SFH) Domain() (min, max float64) {
	if len(s.lbTime) == 0 {
		return 0, 0
	}
	min, max = s.lbTime[0], s.lbTime[0]
	for _, t := range s.lbTime[1:] {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}
	return min, max
}

// LookbackTime returns a copy of the look-back time series in Myr.
func (s *SFH) LookbackTime() []float64 {
	return append([]float64(nil), s.lbTime...)
}

// Rate returns a copy of the star-formation rate series in Msun/yr.
func (s *SFH) Rate() []float64 {
	return append([]float64(nil), s.rate...)
}

// RateError returns a copy of the one-sigma rate error series in Msun/yr.
func (s *SFH) RateError() []float64 {
	return append([]float64(nil), s.rateErr...)
}

// ResampledTime returns a copy of the grid of the last successful Resample
// call, or nil if the record has never been resampled.
func (s *SFH) ResampledTime() []float64 {
	if s.resampledTime == nil {
		return nil
	}
	return append([]float64(nil), s.resampledTime...)
}

// ResampledRate returns a copy of the resampled rate series, or nil if the
// record has never been resampled.
func (s *SFH) ResampledRate() []float64 {
	if s.resampledRate == nil {
		return nil
	}
	return append([]float64(nil), s.resampledRate...)
}

// ResampledRateError returns a copy of the resampled rate error series, or
// nil if the record has never been resampled.
func (s *SFH) ResampledRateError() []float64 {
	if s.resampledErr == nil {
		return nil
	}
	return append([]float64(nil), s.resampledErr...)
}

// Options configures a Resample call. The zero value selects next-value step
// interpolation with bounds checking off and out-of-domain points filled with
// zero, which suits the trailing-edge bin convention of the records.
type Options struct {
	Kind        interpolate.Kind `yaml:"Kind" mapstructure:"Kind"`               // interpolation kind, empty defaults to next
	BoundsError bool             `yaml:"BoundsError" mapstructure:"BoundsError"` // true: out-of-domain grid points are an error
	FillValue   float64          `yaml:"FillValue" mapstructure:"FillValue"`     // value for out-of-domain grid points when BoundsError is false
}

// Resample interpolates the rate and rate error series onto the given grid
// and returns the two resampled series. The grid may be unordered. On
// success the grid and both outputs are also cached on the record, replacing
// any earlier resampled state; on failure the cached state is left untouched
// and no partial output is returned.
func (s *SFH) Resample(grid []float64, opts Options) ([]float64, []float64, error) {
	rateInterp, err := interpolate.New1D(s.lbTime, s.rate, opts.Kind)
	if err != nil {
		return nil, nil, err
	}
	errInterp, err := interpolate.New1D(s.lbTime, s.rateErr, opts.Kind)
	if err != nil {
		return nil, nil, err
	}

	rate, err := rateInterp.Evaluate(grid, opts.BoundsError, opts.FillValue)
	if err != nil {
		return nil, nil, err
	}
	rateErr, err := errInterp.Evaluate(grid, opts.BoundsError, opts.FillValue)
	if err != nil {
		return nil, nil, err
	}

	s.resampledTime = append([]float64(nil), grid...)
	s.resampledRate = append([]float64(nil), rate...)
	s.resampledErr = append([]float64(nil), rateErr...)

	return rate, rateErr, nil
}
