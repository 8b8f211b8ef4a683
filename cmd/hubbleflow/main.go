// hubbleflow derives the Hubble constant from a small galaxy sample:
// recession velocities from the observed Ca II K and H line shifts,
// distances from apparent magnitudes under a shared assumed absolute
// magnitude, and a zero-intercept fit of velocity against distance.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/carbocation/pfx"

	"github.com/carbocation/astromisc/compileinfo"
	"github.com/carbocation/astromisc/datfile"
	"github.com/carbocation/astromisc/figure"
	"github.com/carbocation/astromisc/polyfit"
)

func main() {
	compileinfo.PrintToStdErr()

	var cfg config

	flag.StringVar(&cfg.OutputPath, "output", "calculated.dat", "Path for the derived distances and velocities")
	flag.StringVar(&cfg.PlotPath, "plot", "result.png", "Path for the velocity-distance figure")
	flag.Parse()

	if cfg.OutputPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	res, err := reduce(cfg)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	// Three blocks: distances, velocity nominal values, velocity
	// uncertainties.
	blocks := [][]float64{
		res.DistancesMpc,
		res.Velocities.Nominals(),
		res.Velocities.SDs(),
	}
	if err := datfile.WriteBlocks(cfg.OutputPath, blocks, 3); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if err := renderFigure(cfg, res); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	for i, g := range galaxies {
		fmt.Printf("%-10s d = %8.1f Mpc  v = %8.1f ± %.1f km/s\n",
			g.Name, res.DistancesMpc[i], res.Velocities[i].Nominal, res.Velocities[i].SD)
	}
	fmt.Printf("Sample velocity spread: %.1f ± %.1f km/s\n", res.VelocitySpread.Nominal, res.VelocitySpread.SD)
	fmt.Printf("H0 = %.1f ± %.1f km/s/Mpc\n", res.HubbleSlope.Nominal, res.HubbleSlope.SD)
}

func renderFigure(cfg config, res result) error {
	maxDistance := 0.0
	for _, d := range res.DistancesMpc {
		if d > maxDistance {
			maxDistance = d
		}
	}

	fitX := polyfit.Grid(0, maxDistance, 50)
	fitY := make([]float64, 0, len(fitX))
	for _, x := range fitX {
		fitY = append(fitY, res.HubbleSlope.Nominal*x)
	}

	labels := make([]figure.Label, 0, len(galaxies))
	for i, g := range galaxies {
		labels = append(labels, figure.Label{
			X:    res.DistancesMpc[i],
			Y:    res.Velocities[i].Nominal,
			Text: g.Name,
		})
	}

	return figure.Render(cfg.PlotPath,
		"Velocity-distance relation", "Distance (Mpc)", "Velocity (km/s)",
		labels,
		figure.Series{Name: "Galaxies", X: res.DistancesMpc, Y: res.Velocities.Nominals(), Scatter: true},
		figure.Series{Name: "Origin-constrained fit", X: fitX, Y: fitY},
	)
}
