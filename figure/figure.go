// Package figure renders the reduction tools' scatter and fitted-curve
// figures to PNG files. Rendering is a pure side effect; nothing here feeds
// back into the numeric pipeline.
package figure

import (
	"bytes"
	"os"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
)

// Series is one plotted series. Scatter series draw dots only; otherwise a
// connected line is drawn.
type Series struct {
	Name    string
	X, Y    []float64
	Scatter bool
}

// Label annotates a single (x, y) point, e.g. with its observation index.
type Label struct {
	X, Y float64
	Text string
}

// Render draws the given series and annotations into filename as a PNG,
// overwriting any existing file.
func Render(filename, title, xName, yName string, labels []Label, series ...Series) error {
	chartSeries := make([]chart.Series, 0, len(series)+1)

	for _, s := range series {
		cs := chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
		}
		if s.Scatter {
			cs.Style = chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    4,
			}
		}
		chartSeries = append(chartSeries, cs)
	}

	if len(labels) > 0 {
		annotations := make([]chart.Value2, 0, len(labels))
		for _, l := range labels {
			annotations = append(annotations, chart.Value2{
				XValue: l.X,
				YValue: l.Y,
				Label:  l.Text,
			})
		}
		chartSeries = append(chartSeries, chart.AnnotationSeries{Annotations: annotations})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1024,
		Height: 768,
		XAxis: chart.XAxis{
			Name: xName,
		},
		YAxis: chart.YAxis{
			Name: yName,
		},
		Series: chartSeries,
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return pfx.Err(err)
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return pfx.Err(err)
	}
	if _, err := buffer.WriteTo(outFile); err != nil {
		outFile.Close()
		return pfx.Err(err)
	}

	return outFile.Close()
}
