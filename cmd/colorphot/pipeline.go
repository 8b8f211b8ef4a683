package main

import (
	"fmt"

	"github.com/carbocation/astromisc/datfile"
	"github.com/carbocation/astromisc/measurement"
)

// Fixed schema of the observation table. One row per exposure:
// Julian date, the variable's instrumental R and I magnitudes, then the
// comparison standard's R magnitude with its error and I magnitude with its
// error.
const (
	colJulianDate  datfile.Column = 1
	colVariableR   datfile.Column = 2
	colVariableI   datfile.Column = 3
	colStandardR   datfile.Column = 4
	colStandardRSD datfile.Column = 5
	colStandardI   datfile.Column = 6
	colStandardISD datfile.Column = 7
)

type config struct {
	InputPath     string
	OutputPath    string
	RPlotPath     string
	ColorPlotPath string
}

type result struct {
	JD []float64

	// DiffR and DiffI are differential magnitudes (variable minus
	// comparison standard), carrying the standard's uncertainty.
	DiffR measurement.Series
	DiffI measurement.Series

	// Color is the R-I color index with both bands' uncertainties
	// propagated.
	Color measurement.Series
}

func reduce(cfg config) (result, error) {
	cols, err := datfile.ReadColumns(cfg.InputPath,
		colJulianDate,
		colVariableR, colVariableI,
		colStandardR, colStandardRSD,
		colStandardI, colStandardISD,
	)
	if err != nil {
		return result{}, err
	}

	jd := cols[0]

	standardR, err := measurement.FromPairs(cols[3], cols[4])
	if err != nil {
		return result{}, fmt.Errorf("R standard: %w", err)
	}

	standardI, err := measurement.FromPairs(cols[5], cols[6])
	if err != nil {
		return result{}, fmt.Errorf("I standard: %w", err)
	}

	diffR, err := measurement.Sub(measurement.FromNominals(cols[1]), standardR)
	if err != nil {
		return result{}, fmt.Errorf("differential R: %w", err)
	}

	diffI, err := measurement.Sub(measurement.FromNominals(cols[2]), standardI)
	if err != nil {
		return result{}, fmt.Errorf("differential I: %w", err)
	}

	color, err := measurement.Sub(diffR, diffI)
	if err != nil {
		return result{}, fmt.Errorf("color index: %w", err)
	}

	return result{
		JD:    jd,
		DiffR: diffR,
		DiffI: diffI,
		Color: color,
	}, nil
}

// errorEnvelope returns the nominal±SD bounds of a series, drawn around a
// light curve as its error context.
func errorEnvelope(s measurement.Series) (upper, lower []float64) {
	upper = make([]float64, 0, len(s))
	lower = make([]float64, 0, len(s))
	for _, v := range s {
		upper = append(upper, v.Nominal+v.SD)
		lower = append(lower, v.Nominal-v.SD)
	}
	return upper, lower
}
