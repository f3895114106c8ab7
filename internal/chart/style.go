// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package chart holds the gonum/plot building blocks used to draw benchmark
// reports: a labeled bar chart, boxed callouts, tick formatters, a grid
// layout for multi-panel figures and PNG output at a fixed resolution.
package chart

import (
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Style is the look shared by every figure of a report. It is built once and
// passed by value, so nothing can change it once drawing has started.
type Style struct {
	// Palette is assigned to bars by position and repeats when there are
	// more bars than colors.
	Palette []color.Color

	// Before and During color the two bars of a rehash spike group.
	Before color.Color
	During color.Color

	Outline      color.Color
	OutlineWidth vg.Length
	GridColor    color.Color

	// Callout fills.
	Highlight color.Color
	Positive  color.Color
	Neutral   color.Color
	Panel     color.Color

	TitleSize      vg.Length
	LabelSize      vg.Length
	TickSize       vg.Length
	AnnotationSize vg.Length
}

// DefaultStyle returns the report style: green, red and blue bars with black
// outlines on a white background.
func DefaultStyle() Style {
	return Style{
		Palette: []color.Color{
			rgb(0x2e, 0xcc, 0x71),
			rgb(0xe7, 0x4c, 0x3c),
			rgb(0x34, 0x98, 0xdb),
		},
		Before:         rgb(0x34, 0x98, 0xdb),
		During:         rgb(0xe7, 0x4c, 0x3c),
		Outline:        color.Black,
		OutlineWidth:   vg.Points(1.5),
		GridColor:      color.NRGBA{A: 0x4c},
		Highlight:      color.NRGBA{R: 0xff, G: 0xff, A: 0xb3},
		Positive:       color.NRGBA{R: 0x90, G: 0xee, B: 0x90, A: 0xb3},
		Neutral:        color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc},
		Panel:          color.NRGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0x4c},
		TitleSize:      vg.Points(14),
		LabelSize:      vg.Points(12),
		TickSize:       vg.Points(11),
		AnnotationSize: vg.Points(11),
	}
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// BarColor returns the palette color for the i'th bar.
func (s Style) BarColor(i int) color.Color {
	return s.Palette[i%len(s.Palette)]
}

// BarColors returns palette colors for n bars.
func (s Style) BarColors(n int) []color.Color {
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = s.BarColor(i)
	}
	return colors
}

// Text returns a centered sans-serif text style.
func (s Style) Text(size vg.Length, bold bool) text.Style {
	f := font.From(plotter.DefaultFont, size)
	f.Variant = "Sans"
	if bold {
		f.Weight = xfont.WeightBold
	}
	return text.Style{
		Color:   color.Black,
		Font:    f,
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}

// Mono returns a centered monospace text style.
func (s Style) Mono(size vg.Length) text.Style {
	sty := s.Text(size, false)
	sty.Font.Variant = "Mono"
	return sty
}

// OutlineStyle is the stroke drawn around bars and boxes.
func (s Style) OutlineStyle(width vg.Length) draw.LineStyle {
	return draw.LineStyle{Color: s.Outline, Width: width}
}

// NewPlot returns a bar plot with one nominal X position per category and
// horizontal grid lines.
func (s Style) NewPlot(title, yLabel string, categories []string) *plot.Plot {
	p := plot.New()

	p.Title.Text = title
	p.Title.TextStyle.Font = s.Text(s.TitleSize, true).Font
	p.Title.Padding = vg.Points(10)
	p.Y.Label.Text = yLabel
	p.Y.Label.TextStyle.Font = s.Text(s.LabelSize, true).Font
	p.X.Tick.Label.Font = s.Text(s.TickSize, false).Font
	p.Y.Tick.Label.Font = s.Text(s.TickSize, false).Font
	p.Legend.TextStyle.Font = s.Text(s.TickSize, false).Font
	p.BackgroundColor = color.White

	ticks := make([]plot.Tick, len(categories))
	for i, c := range categories {
		ticks[i] = plot.Tick{Value: float64(i), Label: c}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min = -0.5
	p.X.Max = float64(len(categories)) - 0.5
	p.Y.Min = 0

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = s.GridColor
	p.Add(grid)

	return p
}

// RotateCategories tilts the X tick labels by degrees, anchoring them at
// their right end so they stay under their bar.
func RotateCategories(p *plot.Plot, degrees float64) {
	p.X.Tick.Label.Rotation = degrees * math.Pi / 180
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YTop
}

// Headroom raises the Y axis maximum to factor times top so that labels and
// callouts above the tallest bar stay inside the data area.
func Headroom(p *plot.Plot, top, factor float64) {
	if top <= 0 {
		return
	}
	p.Y.Max = math.Max(p.Y.Max, top*factor)
}
