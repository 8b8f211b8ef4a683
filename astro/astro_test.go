package astro

import (
	"math"
	"testing"

	"github.com/carbocation/astromisc/measurement"
)

func TestDistanceModulusRoundTrip(t *testing.T) {
	// dm = 0 ± 0 must give exactly 10 parsecs.
	d := DistanceModulusParsecs(measurement.Exact(0))
	if d.Nominal != 10 || d.SD != 0 {
		t.Fatalf("got %v, expected exactly 10 ± 0", d)
	}
}

func TestDistanceModulusPropagation(t *testing.T) {
	d := DistanceModulusParsecs(measurement.New(5, 0.5))

	if math.Abs(d.Nominal-100) > 1e-9 {
		t.Errorf("nominal: got %v, expected 100", d.Nominal)
	}
	// sigma_d = d * ln(10) * sigma_dm / 5
	if want := 100 * math.Ln10 * 0.1; math.Abs(d.SD-want) > 1e-9 {
		t.Errorf("SD: got %v, expected %v", d.SD, want)
	}
}

func TestRedshiftVelocityZeroAtRest(t *testing.T) {
	for _, rest := range []float64{RestWavelengthCaK, RestWavelengthCaH} {
		if v := RedshiftVelocity(rest, rest); v != 0 {
			t.Errorf("rest wavelength %v: got %v, expected exactly 0", rest, v)
		}
	}
}

func TestRedshiftVelocityScale(t *testing.T) {
	// A 1% wavelength shift is 1% of c.
	v := RedshiftVelocity(1.01*RestWavelengthCaK, RestWavelengthCaK)
	if want := 0.01 * SpeedOfLightKMS; math.Abs(v-want) > 1e-6 {
		t.Errorf("got %v, expected %v", v, want)
	}
}

func TestObjectVelocity(t *testing.T) {
	v, err := ObjectVelocity(1000, 1200)
	if err != nil {
		t.Fatal(err)
	}
	if v != 1100 {
		t.Errorf("two-line mean: got %v, expected 1100", v)
	}

	v, err = ObjectVelocity(950)
	if err != nil {
		t.Fatal(err)
	}
	if v != 950 {
		t.Errorf("single line: got %v, expected 950", v)
	}

	if _, err := ObjectVelocity(); err == nil {
		t.Error("expected error with no lines")
	}
}

func TestDistanceMpc(t *testing.T) {
	// m = M puts the object at 10 pc = 1e-5 Mpc.
	if d := DistanceMpc(-22, -22); math.Abs(d-1e-5) > 1e-18 {
		t.Errorf("got %v, expected 1e-5", d)
	}

	// m - M = 35 puts the object at 100 Mpc.
	if d := DistanceMpc(13, -22); math.Abs(d-100) > 1e-9 {
		t.Errorf("got %v, expected 100", d)
	}
}
