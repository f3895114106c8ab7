// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Callout is boxed text centered on a point in data coordinates.
type Callout struct {
	X, Y float64

	Text      string
	TextStyle text.Style

	Fill    color.Color
	Border  draw.LineStyle
	Padding vg.Length
}

var _ plot.Plotter = (*Callout)(nil)

// NewCallout returns a bold callout with a black border over the given fill.
func NewCallout(s Style, x, y float64, txt string, fill color.Color) *Callout {
	return &Callout{
		X:         x,
		Y:         y,
		Text:      txt,
		TextStyle: s.Text(s.AnnotationSize, true),
		Fill:      fill,
		Border:    s.OutlineStyle(vg.Points(2)),
		Padding:   vg.Points(5),
	}
}

// Plot implements the plot.Plotter interface.
func (co *Callout) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	pt := vg.Point{X: trX(co.X), Y: trY(co.Y)}
	drawBoxedText(c, pt, co.Text, co.TextStyle, co.Fill, co.Border, co.Padding)
}

// TextPanel fills a whole figure cell with boxed text at its center.
type TextPanel struct {
	Text      string
	TextStyle text.Style

	Fill    color.Color
	Border  draw.LineStyle
	Padding vg.Length
}

// Draw draws the panel on c.
func (tp *TextPanel) Draw(c draw.Canvas) {
	pt := vg.Point{
		X: (c.Min.X + c.Max.X) / 2,
		Y: (c.Min.Y + c.Max.Y) / 2,
	}
	drawBoxedText(c, pt, tp.Text, tp.TextStyle, tp.Fill, tp.Border, tp.Padding)
}

func drawBoxedText(c draw.Canvas, pt vg.Point, txt string, sty text.Style, fill color.Color, border draw.LineStyle, pad vg.Length) {
	r := sty.Rectangle(txt).Add(pt)
	r.Min.X -= pad
	r.Min.Y -= pad
	r.Max.X += pad
	r.Max.Y += pad

	box := []vg.Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Min.Y},
	}
	if fill != nil {
		c.FillPolygon(fill, box)
	}
	if border.Color != nil && border.Width > 0 {
		c.StrokeLines(border, append(box, box[0]))
	}
	c.FillText(sty, pt, txt)
}
