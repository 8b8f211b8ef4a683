package main

import (
	"fmt"
	"math"

	"github.com/carbocation/astromisc/astro"
	"github.com/carbocation/astromisc/describe"
	"github.com/carbocation/astromisc/measurement"
	"github.com/carbocation/astromisc/polyfit"
)

type config struct {
	OutputPath string
	PlotPath   string
}

type result struct {
	// DistancesMpc[i], Velocities[i] and the galaxy table are index-aligned.
	DistancesMpc []float64
	Velocities   measurement.Series

	// VelocitySpread is the sample mean and standard deviation of the
	// object velocities, reported in the console summary.
	VelocitySpread measurement.Value

	// HubbleSlope is the zero-intercept slope of velocity against distance,
	// in km/s/Mpc, with its standard error.
	HubbleSlope measurement.Value
}

// reduce derives per-galaxy recession velocities from the Ca II line
// shifts, distances from apparent magnitudes under the shared assumed
// absolute magnitude, and the Hubble constant as the origin-constrained
// slope of the velocity-distance relation.
func reduce(cfg config) (result, error) {
	distances := make([]float64, 0, len(galaxies))
	velocities := make(measurement.Series, 0, len(galaxies))

	for _, g := range galaxies {
		if g.LambdaK == 0 {
			return result{}, fmt.Errorf("%s: no measured K line", g.Name)
		}

		lines := []float64{astro.RedshiftVelocity(g.LambdaK, astro.RestWavelengthCaK)}
		if g.LambdaH != 0 {
			lines = append(lines, astro.RedshiftVelocity(g.LambdaH, astro.RestWavelengthCaH))
		}

		v, err := astro.ObjectVelocity(lines...)
		if err != nil {
			return result{}, fmt.Errorf("%s: %w", g.Name, err)
		}

		// With both lines measured, the half-spread between them serves as
		// the velocity uncertainty; a single line carries none.
		sd := 0.0
		if len(lines) == 2 {
			sd = math.Abs(lines[0]-lines[1]) / 2
		}

		distances = append(distances, astro.DistanceMpc(g.Apparent, assumedAbsoluteMagnitude))
		velocities = append(velocities, measurement.New(v, sd))
	}

	slope, stderr, err := polyfit.OriginSlope(distances, velocities.Nominals())
	if err != nil {
		return result{}, fmt.Errorf("fitting velocity-distance relation: %w", err)
	}

	mean, sd := describe.MeanSD(velocities.Nominals())

	return result{
		DistancesMpc:   distances,
		Velocities:     velocities,
		VelocitySpread: measurement.New(mean, sd),
		HubbleSlope:    measurement.New(slope, stderr),
	}, nil
}
