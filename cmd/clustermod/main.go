// clustermod derives the distance to an open cluster by main-sequence
// fitting: B-V color indices, cubic fits to the cluster and calibration
// sequences, and the median offset between them as the distance modulus.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/carbocation/pfx"

	"github.com/carbocation/astromisc/compileinfo"
	"github.com/carbocation/astromisc/datfile"
	"github.com/carbocation/astromisc/describe"
	"github.com/carbocation/astromisc/figure"
	"github.com/carbocation/astromisc/measurement"
)

func main() {
	compileinfo.PrintToStdErr()

	var cfg config

	flag.StringVar(&cfg.OutputPath, "output", "calculated.dat", "Path for the derived color-index listing")
	flag.StringVar(&cfg.Diagram1Path, "diagram1", "diagram1.png", "Path for the color-magnitude diagram")
	flag.StringVar(&cfg.Diagram2Path, "diagram2", "diagram2.png", "Path for the difference-curve figure")
	flag.IntVar(&cfg.FitDegree, "degree", 3, "Polynomial degree for the main-sequence fits")
	flag.IntVar(&cfg.GridPoints, "gridpoints", 200, "Number of evaluation points for the difference curve")
	flag.Parse()

	if cfg.FitDegree < 1 || cfg.GridPoints < 2 {
		flag.PrintDefaults()
		os.Exit(1)
	}

	res, err := reduce(cfg)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if err := datfile.WriteValues(cfg.OutputPath, res.Color.Nominals(), 3); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if err := renderDiagrams(cfg, res); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	fmt.Printf("Distance modulus m - M = %.3f ± %.3f mag (median ± IQR of the difference curve)\n", res.DeltaM.Nominal, res.DeltaM.SD)
	fmt.Printf("Cluster distance = %.1f ± %.1f pc\n", res.Distance.Nominal, res.Distance.SD)

	fmt.Println("Difference-curve distribution:")
	if err := describe.FprintHistogram(os.Stdout, res.DiffCurve, 10); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func renderDiagrams(cfg config, res result) error {
	mainSequence := res.Color.Excluding(excludedFromFit)
	mainSequenceV := measurement.FromNominals(clusterV).Excluding(excludedFromFit)

	labels := make([]figure.Label, 0, excludedFromFit.Len())
	for i := range res.Color {
		if excludedFromFit.Has(i + 1) {
			labels = append(labels, figure.Label{
				X:    res.Color[i].Nominal,
				Y:    clusterV[i],
				Text: strconv.Itoa(i + 1),
			})
		}
	}

	if err := figure.Render(cfg.Diagram1Path,
		"Cluster color-magnitude diagram", "B - V", "V",
		labels,
		figure.Series{Name: "Main sequence", X: mainSequence.Nominals(), Y: mainSequenceV.Nominals(), Scatter: true},
		figure.Series{Name: "Flagged stars", X: res.Color.Only(excludedFromFit).Nominals(), Y: measurement.FromNominals(clusterV).Only(excludedFromFit).Nominals(), Scatter: true},
		figure.Series{Name: "Cluster fit", X: res.Grid, Y: res.ClusterFit.EvalAll(res.Grid)},
		figure.Series{Name: "Calibration fit", X: res.Grid, Y: res.CalibrationFit.EvalAll(res.Grid)},
	); err != nil {
		return err
	}

	return figure.Render(cfg.Diagram2Path,
		"Fitted-sequence difference", "B - V", "m - M",
		nil,
		figure.Series{Name: "Difference curve", X: res.Grid, Y: res.DiffCurve},
	)
}
