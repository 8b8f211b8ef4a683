package measurement

import (
	"errors"
	"fmt"
)

// ErrCorrelationLengthMismatch indicates that two series whose entries are
// supposed to correspond positionally (same object at the same index) have
// different lengths. Proceeding would silently mis-pair observations, so
// every operation that combines correlated series checks this first.
var ErrCorrelationLengthMismatch = errors.New("correlated series have mismatched lengths")

// Series is an ordered sequence of Values. Two Series of equal length are
// positionally correlated: index i refers to the same object or epoch in
// both.
type Series []Value

// FromNominals builds a Series of exact values.
func FromNominals(nominals []float64) Series {
	s := make(Series, 0, len(nominals))
	for _, n := range nominals {
		s = append(s, Exact(n))
	}
	return s
}

// FromPairs builds a Series from parallel nominal and standard-deviation
// slices.
func FromPairs(nominals, sds []float64) (Series, error) {
	if len(nominals) != len(sds) {
		return nil, fmt.Errorf("%w: %d nominal values but %d uncertainties", ErrCorrelationLengthMismatch, len(nominals), len(sds))
	}

	s := make(Series, 0, len(nominals))
	for i, n := range nominals {
		s = append(s, New(n, sds[i]))
	}
	return s, nil
}

// Sub returns the elementwise difference a[i] - b[i] with propagated
// uncertainty. The output has the same length as the inputs.
func Sub(a, b Series) (Series, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d entries", ErrCorrelationLengthMismatch, len(a), len(b))
	}

	out := make(Series, 0, len(a))
	for i := range a {
		out = append(out, a[i].Sub(b[i]))
	}
	return out, nil
}

// Nominals returns the nominal values as a plain float64 slice, suitable for
// fitting and plotting.
func (s Series) Nominals() []float64 {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		out = append(out, v.Nominal)
	}
	return out
}

// SDs returns the standard deviations as a plain float64 slice.
func (s Series) SDs() []float64 {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		out = append(out, v.SD)
	}
	return out
}
