// Package visualize renders the four analysis panels (line, grouped bar,
// histogram, scatter) into a single composite PNG.
package visualize

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"irislab/pkg/analyze"
	"irislab/pkg/dataprep"
	"irislab/pkg/dataset"
)

// ErrRenderFailure signals that the output image could not be written. The
// pipeline aborts when it sees this error.
var ErrRenderFailure = errors.New("render failure")

const (
	histAttr = 0 // sepal length
	histBins = 20
	scatterX = 0 // sepal length
	scatterY = 1 // sepal width
	canvasW  = 12 * vg.Inch
	canvasH  = 9 * vg.Inch
	tilePad  = 5 * vg.Millimeter
)

var (
	barWidth  = vg.Points(10)
	glyphSize = vg.Points(2.5)
)

// Render draws the 2x2 panel grid and writes it to path as PNG, replacing any
// existing file. The image is encoded in memory and moved into place in one
// step, so a failure never leaves a partial file behind.
func Render(path string, ds *dataset.Dataset, gm *analyze.GroupMeans) error {
	linePanel, err := meansLine(gm)
	if err != nil {
		return fmt.Errorf("building line panel: %w", err)
	}
	barPanel, err := meansBars(gm)
	if err != nil {
		return fmt.Errorf("building bar panel: %w", err)
	}
	histPanel, err := attributeHistogram(ds)
	if err != nil {
		return fmt.Errorf("building histogram panel: %w", err)
	}
	scatterPanel, err := speciesScatter(ds)
	if err != nil {
		return fmt.Errorf("building scatter panel: %w", err)
	}

	img := vgimg.New(canvasW, canvasH)
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: tilePad, PadY: tilePad,
		PadTop: tilePad, PadBottom: tilePad,
		PadLeft: tilePad, PadRight: tilePad,
	}
	plots := [][]*plot.Plot{
		{linePanel, barPanel},
		{histPanel, scatterPanel},
	}
	canvases := plot.Align(plots, tiles, draw.New(img))
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrRenderFailure, path, err)
	}
	return writeAtomic(path, buf.Bytes())
}

// writeAtomic stores the encoded image under a temporary name in the target
// directory and renames it over path.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	return nil
}

// meansLine plots one line per attribute across the species, with markers at
// each species mean.
func meansLine(gm *analyze.GroupMeans) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Mean measurements by species"
	p.X.Label.Text = "species"
	p.Y.Label.Text = "mean (cm)"
	p.NominalX(gm.Species...)

	for j, attr := range gm.Attributes {
		pts := make(plotter.XYs, len(gm.Species))
		for s := range gm.Species {
			pts[s].X = float64(s)
			pts[s].Y = gm.Means[s][j]
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(j)
		line.Width = vg.Points(1.5)
		points.Color = plotutil.Color(j)
		points.Radius = glyphSize
		p.Add(line, points)
		p.Legend.Add(attr, line, points)
	}
	p.Legend.Top = true
	return p, nil
}

// meansBars draws one bar cluster per species with one bar per attribute.
func meansBars(gm *analyze.GroupMeans) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Species comparison"
	p.X.Label.Text = "species"
	p.Y.Label.Text = "mean (cm)"
	p.NominalX(gm.Species...)

	half := float64(len(gm.Attributes)-1) / 2
	for j, attr := range gm.Attributes {
		vals := make(plotter.Values, len(gm.Species))
		for s := range gm.Species {
			vals[s] = gm.Means[s][j]
		}
		bars, err := plotter.NewBarChart(vals, barWidth)
		if err != nil {
			return nil, err
		}
		bars.Color = plotutil.Color(j)
		bars.LineStyle.Width = 0
		bars.Offset = vg.Length(float64(j)-half) * (barWidth + vg.Points(1))
		p.Add(bars)
		p.Legend.Add(attr, bars)
	}
	p.Legend.Top = true
	return p, nil
}

// attributeHistogram bins the distribution of a single numeric attribute.
func attributeHistogram(ds *dataset.Dataset) (*plot.Plot, error) {
	p := plot.New()
	name := ds.FeatureNames[histAttr]
	p.Title.Text = fmt.Sprintf("Distribution of %s", name)
	p.X.Label.Text = name + " (cm)"
	p.Y.Label.Text = "frequency"

	hist, err := plotter.NewHist(plotter.Values(ds.Column(histAttr)), histBins)
	if err != nil {
		return nil, err
	}
	hist.FillColor = plotutil.Color(0)
	p.Add(hist)
	return p, nil
}

// speciesScatter plots two attributes against each other, one colored series
// per species.
func speciesScatter(ds *dataset.Dataset) (*plot.Plot, error) {
	p := plot.New()
	xName, yName := ds.FeatureNames[scatterX], ds.FeatureNames[scatterY]
	p.Title.Text = fmt.Sprintf("%s vs %s", xName, yName)
	p.X.Label.Text = xName + " (cm)"
	p.Y.Label.Text = yName + " (cm)"

	codes, mapping := dataprep.LabelEncode(ds.Species)
	for _, species := range ds.SpeciesSet() {
		code := mapping[species]
		var pts plotter.XYs
		for i, c := range codes {
			if c != code {
				continue
			}
			pts = append(pts, plotter.XY{
				X: ds.Features[i][scatterX],
				Y: ds.Features[i][scatterY],
			})
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Color = plotutil.Color(code)
		scatter.GlyphStyle.Radius = glyphSize
		p.Add(scatter)
		p.Legend.Add(species, scatter)
	}
	p.Legend.Top = true
	return p, nil
}
