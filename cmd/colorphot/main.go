// colorphot reduces differential R/I photometry of a variable star: each
// exposure's instrumental magnitudes are referenced to a comparison
// standard, and the R-I color index is derived with the standard's errors
// propagated.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"

	"github.com/carbocation/astromisc/compileinfo"
	"github.com/carbocation/astromisc/datfile"
	"github.com/carbocation/astromisc/figure"
)

func main() {
	compileinfo.PrintToStdErr()

	var cfg config

	flag.StringVar(&cfg.InputPath, "input", "observations.dat", "Path to the whitespace-delimited observation table")
	flag.StringVar(&cfg.OutputPath, "output", "calculated.dat", "Path for the derived color-index listing")
	flag.StringVar(&cfg.RPlotPath, "rplot", "R.png", "Path for the differential R light curve")
	flag.StringVar(&cfg.ColorPlotPath, "colorplot", "RI.png", "Path for the color-index curve")
	flag.Parse()

	if cfg.InputPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	res, err := reduce(cfg)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if err := datfile.WriteValues(cfg.OutputPath, res.Color.Nominals(), 4); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if err := renderFigures(cfg, res); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	data := stats.LoadRawData(res.Color.Nominals())

	mean, err := data.Mean()
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	sd, err := data.StandardDeviation()
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	fmt.Printf("%d exposures reduced\n", len(res.JD))
	fmt.Printf("Mean R - I color index = %.4f ± %.4f mag\n", mean, sd)
}

func renderFigures(cfg config, res result) error {
	upper, lower := errorEnvelope(res.DiffR)

	if err := figure.Render(cfg.RPlotPath,
		"Differential R light curve", "Julian date", "ΔR",
		nil,
		figure.Series{Name: "ΔR", X: res.JD, Y: res.DiffR.Nominals(), Scatter: true},
		figure.Series{Name: "ΔR + σ", X: res.JD, Y: upper},
		figure.Series{Name: "ΔR − σ", X: res.JD, Y: lower},
	); err != nil {
		return err
	}

	return figure.Render(cfg.ColorPlotPath,
		"R - I color index", "Julian date", "R - I",
		nil,
		figure.Series{Name: "R - I", X: res.JD, Y: res.Color.Nominals(), Scatter: true},
	)
}
