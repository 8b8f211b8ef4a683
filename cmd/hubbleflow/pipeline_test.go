package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carbocation/astromisc/astro"
	"github.com/carbocation/astromisc/datfile"
)

func testConfig(t *testing.T) config {
	t.Helper()

	dir := t.TempDir()
	return config{
		OutputPath: filepath.Join(dir, "calculated.dat"),
		PlotPath:   filepath.Join(dir, "result.png"),
	}
}

func TestReduceAlignment(t *testing.T) {
	res, err := reduce(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}

	if len(res.DistancesMpc) != len(galaxies) || len(res.Velocities) != len(galaxies) {
		t.Fatalf("expected %d aligned entries, got %d distances and %d velocities",
			len(galaxies), len(res.DistancesMpc), len(res.Velocities))
	}
}

func TestTwoLineAveraging(t *testing.T) {
	res, err := reduce(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}

	for i, g := range galaxies {
		vK := astro.RedshiftVelocity(g.LambdaK, astro.RestWavelengthCaK)

		if g.LambdaH == 0 {
			if math.Abs(res.Velocities[i].Nominal-vK) > 1e-9 {
				t.Errorf("%s: single-line velocity %v, expected %v", g.Name, res.Velocities[i].Nominal, vK)
			}
			if res.Velocities[i].SD != 0 {
				t.Errorf("%s: single-line velocity should carry no spread, got %v", g.Name, res.Velocities[i].SD)
			}
			continue
		}

		vH := astro.RedshiftVelocity(g.LambdaH, astro.RestWavelengthCaH)
		if want := (vK + vH) / 2; math.Abs(res.Velocities[i].Nominal-want) > 1e-9 {
			t.Errorf("%s: velocity %v, expected mean of lines %v", g.Name, res.Velocities[i].Nominal, want)
		}
		if want := math.Abs(vK-vH) / 2; math.Abs(res.Velocities[i].SD-want) > 1e-9 {
			t.Errorf("%s: velocity spread %v, expected %v", g.Name, res.Velocities[i].SD, want)
		}
	}
}

func TestHubbleSlope(t *testing.T) {
	res, err := reduce(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}

	// The sample was observed to be consistent with an expansion rate in
	// the conventional range.
	if res.HubbleSlope.Nominal < 60 || res.HubbleSlope.Nominal > 80 {
		t.Errorf("H0 = %v km/s/Mpc outside the expected range", res.HubbleSlope.Nominal)
	}
	if res.HubbleSlope.SD <= 0 {
		t.Errorf("expected a positive slope standard error, got %v", res.HubbleSlope.SD)
	}
}

func TestVelocitySpread(t *testing.T) {
	res, err := reduce(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}

	mean := 0.0
	for _, v := range res.Velocities {
		mean += v.Nominal
	}
	mean /= float64(len(res.Velocities))

	variance := 0.0
	for _, v := range res.Velocities {
		variance += (v.Nominal - mean) * (v.Nominal - mean)
	}
	sd := math.Sqrt(variance / float64(len(res.Velocities)-1))

	if math.Abs(res.VelocitySpread.Nominal-mean) > 1e-6 {
		t.Errorf("spread mean: got %v, expected %v", res.VelocitySpread.Nominal, mean)
	}
	if math.Abs(res.VelocitySpread.SD-sd) > 1e-6 {
		t.Errorf("spread SD: got %v, expected %v", res.VelocitySpread.SD, sd)
	}
}

func TestOutputBlocks(t *testing.T) {
	cfg := testConfig(t)

	res, err := reduce(cfg)
	if err != nil {
		t.Fatal(err)
	}

	blocks := [][]float64{res.DistancesMpc, res.Velocities.Nominals(), res.Velocities.SDs()}
	if err := datfile.WriteBlocks(cfg.OutputPath, blocks, 3); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatal(err)
	}

	got := strings.Split(strings.TrimRight(string(raw), "\n"), "\n\n")
	if len(got) != 3 {
		t.Fatalf("expected 3 newline-separated blocks, got %d", len(got))
	}
	for i, block := range got {
		if n := len(strings.Split(block, "\n")); n != len(galaxies) {
			t.Errorf("block %d has %d lines, expected %d", i+1, n, len(galaxies))
		}
	}
}

func TestRenderFigure(t *testing.T) {
	cfg := testConfig(t)

	res, err := reduce(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if err := renderFigure(cfg, res); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(cfg.PlotPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("figure file is empty")
	}
}
