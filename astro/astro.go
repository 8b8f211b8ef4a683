// Package astro holds the closed-form astrophysical transforms shared by
// the reduction tools: distance modulus, redshift velocity, and
// magnitude-based distance.
package astro

import (
	"fmt"
	"math"

	"github.com/carbocation/astromisc/measurement"
)

const (
	// SpeedOfLightKMS is c in km/s.
	SpeedOfLightKMS = 299792.458

	// Rest wavelengths of the Ca II doublet, in Angstroms.
	RestWavelengthCaK = 3933.664
	RestWavelengthCaH = 3968.470
)

// DistanceModulusParsecs converts a distance modulus dm = m - M into a
// distance in parsecs: d = 10^((dm+5)/5). The uncertainty propagates
// through the exponential by its derivative, so dm = 0±0 maps to exactly
// 10 pc ± 0.
func DistanceModulusParsecs(dm measurement.Value) measurement.Value {
	return dm.AddExact(5).Scale(1.0 / 5.0).Exp10()
}

// RedshiftVelocity returns the recession velocity in km/s implied by an
// observed spectral-line wavelength relative to its rest wavelength:
// v = c * (observed - rest) / rest. Both wavelengths share a unit
// (Angstroms here, but any common unit works).
func RedshiftVelocity(observed, rest float64) float64 {
	return SpeedOfLightKMS * (observed - rest) / rest
}

// ObjectVelocity combines per-line velocities for one object into a single
// velocity: the arithmetic mean. With one measured line that line's value
// is used directly.
func ObjectVelocity(lineVelocities ...float64) (float64, error) {
	if len(lineVelocities) == 0 {
		return 0, fmt.Errorf("no line velocities for object")
	}

	sum := 0.0
	for _, v := range lineVelocities {
		sum += v
	}
	return sum / float64(len(lineVelocities)), nil
}

// DistanceMpc returns the distance in megaparsecs of an object with the
// given apparent magnitude, assuming the fixed absolute magnitude shared by
// the whole sample: d = 10^((m - M + 5)/5) / 1e6.
func DistanceMpc(apparent, absolute float64) float64 {
	return math.Pow(10, (apparent-absolute+5)/5) / 1e6
}
