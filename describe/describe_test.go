package describe

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

const tolerance = 1e-12

// Truth values from the linear-interpolation quantile definition.
func TestQuantile(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	for _, v := range []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 2.75},
		{0.5, 4.5},
		{0.75, 6.25},
		{1, 8},
	} {
		got, err := Quantile(v.p, sample)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-v.want) > tolerance {
			t.Errorf("Quantile(%v): got %v, expected %v", v.p, got, v.want)
		}
	}
}

func TestQuantileUnsortedInput(t *testing.T) {
	got, err := Quantile(0.5, []float64{8, 1, 5, 4, 2, 7, 3, 6})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-4.5) > tolerance {
		t.Errorf("got %v, expected 4.5", got)
	}
}

func TestQuantileErrors(t *testing.T) {
	if _, err := Quantile(0.5, nil); err == nil {
		t.Error("expected error on empty sample")
	}
	if _, err := Quantile(1.5, []float64{1}); err == nil {
		t.Error("expected error on out-of-range fraction")
	}
}

func TestMedianIQR(t *testing.T) {
	v, err := MedianIQR([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(v.Nominal-4.5) > tolerance {
		t.Errorf("median: got %v, expected 4.5", v.Nominal)
	}
	if math.Abs(v.SD-3.5) > tolerance {
		t.Errorf("IQR: got %v, expected 3.5", v.SD)
	}
}

func TestMeanSD(t *testing.T) {
	mean, sd := MeanSD([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(mean-5) > tolerance {
		t.Errorf("mean: got %v, expected 5", mean)
	}
	// Sample standard deviation (n-1 denominator).
	if want := math.Sqrt(32.0 / 7.0); math.Abs(sd-want) > 1e-9 {
		t.Errorf("sd: got %v, expected %v", sd, want)
	}
}

func TestFprintHistogram(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintHistogram(&buf, []float64{1, 1, 2, 2, 2, 3}, 3); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n") {
		t.Error("expected multi-line histogram output")
	}
}
