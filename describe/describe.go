// Package describe computes robust summary statistics for derived numeric
// series: linear-interpolation quantiles, a median-with-IQR summary used as
// a value-with-uncertainty estimate, and streaming mean/SD.
package describe

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/runningvariance"

	"github.com/carbocation/astromisc/measurement"
)

// Quantile returns the p-th quantile (0 <= p <= 1) of xs under the linear
// interpolation definition: with the sample sorted, the quantile sits at
// fractional index h = p*(n-1), interpolated between the neighboring order
// statistics. For [1..8] this gives Q1=2.75, median=4.5, Q3=6.25, matching
// the reference output the reductions are checked against.
func Quantile(p float64, xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("quantile of an empty sample")
	}
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("quantile fraction %v out of [0, 1]", p)
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	return quantileSorted(p, sorted), nil
}

func quantileSorted(p float64, sorted []float64) float64 {
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))

	if lo == hi {
		return sorted[lo]
	}

	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// MedianIQR summarizes xs as its median with the interquartile range
// (Q3 - Q1) standing in as a robust uncertainty.
func MedianIQR(xs []float64) (measurement.Value, error) {
	if len(xs) == 0 {
		return measurement.Value{}, fmt.Errorf("summary of an empty sample")
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	median := quantileSorted(0.5, sorted)
	iqr := quantileSorted(0.75, sorted) - quantileSorted(0.25, sorted)

	return measurement.New(median, iqr), nil
}

// MeanSD returns the running mean and standard deviation of xs.
func MeanSD(xs []float64) (mean, sd float64) {
	rs := runningvariance.NewRunningStat()
	for _, x := range xs {
		rs.Push(x)
	}

	return rs.Mean(), rs.StandardDeviation()
}

// FprintHistogram writes a console histogram of xs to w, for a quick look
// at the distribution of a derived series.
func FprintHistogram(w io.Writer, xs []float64, bins int) error {
	hist := histogram.Hist(bins, xs)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}
