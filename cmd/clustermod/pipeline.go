package main

import (
	"fmt"

	"github.com/carbocation/astromisc/astro"
	"github.com/carbocation/astromisc/describe"
	"github.com/carbocation/astromisc/measurement"
	"github.com/carbocation/astromisc/polyfit"
)

type config struct {
	OutputPath   string
	Diagram1Path string
	Diagram2Path string
	FitDegree    int
	GridPoints   int
}

type result struct {
	// Color holds B-V for every star, aligned with clusterV.
	Color measurement.Series

	ClusterFit     polyfit.Poly
	CalibrationFit polyfit.Poly

	// Grid and DiffCurve are the dense evaluation of
	// ClusterFit - CalibrationFit over the shared color domain.
	Grid      []float64
	DiffCurve []float64

	// DeltaM is m - M summarized as median ± IQR of the difference curve;
	// Distance is the distance modulus applied to it, in parsecs.
	DeltaM   measurement.Value
	Distance measurement.Value
}

// reduce runs the whole reduction: color indices, main-sequence fits for
// the cluster and the calibration sequence, the dense difference curve, and
// the distance from its median offset.
func reduce(cfg config) (result, error) {
	if cfg.GridPoints < 2 {
		return result{}, fmt.Errorf("need at least 2 evaluation points for the difference curve, have %d", cfg.GridPoints)
	}

	b := measurement.FromNominals(clusterB)
	v := measurement.FromNominals(clusterV)

	color, err := measurement.Sub(b, v)
	if err != nil {
		return result{}, fmt.Errorf("computing color indices: %w", err)
	}

	// Fit only the main-sequence stars; flagged stars stay on the diagram
	// but not in the fit.
	fitColor, fitV, err := measurement.ExcludingPaired(color, v, excludedFromFit)
	if err != nil {
		return result{}, err
	}

	clusterFit, err := polyfit.Fit(fitColor.Nominals(), fitV.Nominals(), cfg.FitDegree)
	if err != nil {
		return result{}, fmt.Errorf("fitting cluster sequence: %w", err)
	}

	calibrationFit, err := polyfit.Fit(calibrationColor, calibrationAbsMag, cfg.FitDegree)
	if err != nil {
		return result{}, fmt.Errorf("fitting calibration sequence: %w", err)
	}

	lo, hi := overlap(fitColor.Nominals(), calibrationColor)
	if lo >= hi {
		return result{}, fmt.Errorf("cluster and calibration color ranges do not overlap")
	}

	grid := polyfit.Grid(lo, hi, cfg.GridPoints)
	diff := clusterFit.Sub(calibrationFit)
	diffCurve := diff.EvalAll(grid)

	deltaM, err := describe.MedianIQR(diffCurve)
	if err != nil {
		return result{}, err
	}

	return result{
		Color:          color,
		ClusterFit:     clusterFit,
		CalibrationFit: calibrationFit,
		Grid:           grid,
		DiffCurve:      diffCurve,
		DeltaM:         deltaM,
		Distance:       astro.DistanceModulusParsecs(deltaM),
	}, nil
}

// overlap returns the intersection of the ranges spanned by a and b.
func overlap(a, b []float64) (lo, hi float64) {
	aLo, aHi := minMax(a)
	bLo, bHi := minMax(b)

	lo = aLo
	if bLo > lo {
		lo = bLo
	}

	hi = aHi
	if bHi < hi {
		hi = bHi
	}

	return lo, hi
}

func minMax(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}
