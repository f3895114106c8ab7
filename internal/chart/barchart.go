// Derived from https://github.com/gonum/plot/blob/v0.16.0/plotter/barchart.go:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BarChart draws one vertical bar per value at nominal X positions 0, 1, 2,
// ..., each optionally colored individually and labeled above its top.
type BarChart struct {
	// Values are the bar heights; bar i is centered at X = i.
	Values []float64

	// Labels, when non-empty, holds one label per bar.
	Labels []string

	// Width is the width of the bars.
	Width vg.Length

	// Colors are the bar fills, cycled when shorter than Values.
	Colors []color.Color

	// LineStyle is the style of the outline of the bars.
	draw.LineStyle

	// LabelStyle is the style of the label text.
	LabelStyle text.Style

	// LabelGap separates a label from the top of its bar.
	LabelGap vg.Length

	// Offset is added to the X location of each bar. When the Offset is
	// zero, the bars are drawn centered at their X location.
	Offset vg.Length
}

// NewBarChart returns a bar chart drawn in the given style with palette
// colors assigned by position.
func NewBarChart(s Style, values []float64, labels []string, width vg.Length) (*BarChart, error) {
	if width <= 0 {
		return nil, errors.New("chart: width parameter was not positive")
	}
	if len(labels) > 0 && len(labels) != len(values) {
		return nil, errors.New("chart: label count does not match value count")
	}
	labelStyle := s.Text(s.AnnotationSize, true)
	labelStyle.YAlign = text.YBottom
	return &BarChart{
		Values:     append([]float64(nil), values...),
		Labels:     append([]string(nil), labels...),
		Width:      width,
		Colors:     s.BarColors(len(values)),
		LineStyle:  s.OutlineStyle(s.OutlineWidth),
		LabelStyle: labelStyle,
		LabelGap:   vg.Points(3),
	}, nil
}

func (b *BarChart) color(i int) color.Color {
	if len(b.Colors) == 0 {
		return color.Black
	}
	return b.Colors[i%len(b.Colors)]
}

// Plot implements the plot.Plotter interface.
func (b *BarChart) Plot(c draw.Canvas, plt *plot.Plot) {
	trCat, trVal := plt.Transforms(&c)

	for i, v := range b.Values {
		cat := trCat(float64(i))
		if !c.ContainsX(cat) {
			continue
		}
		cat += b.Offset
		catMin := cat - b.Width/2
		catMax := catMin + b.Width
		valMin := trVal(0)
		valMax := trVal(v)

		pts := []vg.Point{
			{X: catMin, Y: valMin},
			{X: catMin, Y: valMax},
			{X: catMax, Y: valMax},
			{X: catMax, Y: valMin},
		}
		c.FillPolygon(b.color(i), c.ClipPolygonY(pts))

		pts = append(pts, vg.Point{X: catMin, Y: valMin})
		c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)

		if len(b.Labels) > 0 {
			pt := vg.Point{X: cat, Y: valMax + b.LabelGap}
			c.FillText(b.LabelStyle, pt, b.Labels[i])
		}
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *BarChart) DataRange() (xmin, xmax, ymin, ymax float64) {
	ymin = math.Inf(1)
	ymax = math.Inf(-1)
	for _, v := range b.Values {
		ymin = math.Min(ymin, math.Min(0, v))
		ymax = math.Max(ymax, math.Max(0, v))
	}
	return 0, float64(len(b.Values) - 1), ymin, ymax
}

// GlyphBoxes implements the GlyphBoxer interface.
func (b *BarChart) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	boxes := make([]plot.GlyphBox, len(b.Values)+len(b.Labels))
	for i := range b.Values {
		boxes[i].X = plt.X.Norm(float64(i))
		boxes[i].Rectangle = vg.Rectangle{
			Min: vg.Point{X: b.Offset - b.Width/2},
			Max: vg.Point{X: b.Offset + b.Width/2},
		}
	}

	for i, label := range b.Labels {
		box := &boxes[len(b.Values)+i]
		labelRect := b.LabelStyle.Rectangle(label)
		box.X = plt.X.Norm(float64(i))
		box.Y = plt.Y.Norm(b.Values[i])
		box.Rectangle = labelRect.Add(vg.Point{X: b.Offset, Y: b.LabelGap})
	}
	return boxes
}

// Thumbnail fulfills the plot.Thumbnailer interface.
func (b *BarChart) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.color(0), c.ClipPolygonY(pts))

	pts = append(pts, vg.Point{X: c.Min.X, Y: c.Min.Y})
	c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)
}
