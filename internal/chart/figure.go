// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Drawer is anything that can draw itself into a canvas area. *plot.Plot,
// *Figure and *TextPanel all qualify.
type Drawer interface {
	Draw(draw.Canvas)
}

// Grid divides a canvas into Rows x Cols equally sized cells. HSpace and
// WSpace are the gaps between cells as a fraction of the cell height and
// width respectively. Rows are counted from the top.
type Grid struct {
	Rows, Cols     int
	HSpace, WSpace float64
}

// Span returns the area covering rows row0 through row1 and columns col0
// through col1, inclusive.
func (g Grid) Span(c draw.Canvas, row0, row1, col0, col1 int) draw.Canvas {
	rows, cols := max(g.Rows, 1), max(g.Cols, 1)

	cellH := c.Size().Y / vg.Length(float64(rows)+g.HSpace*float64(rows-1))
	gapH := cellH * vg.Length(g.HSpace)
	cellW := c.Size().X / vg.Length(float64(cols)+g.WSpace*float64(cols-1))
	gapW := cellW * vg.Length(g.WSpace)

	top := c.Max.Y - vg.Length(row0)*(cellH+gapH)
	bottom := top - vg.Length(row1-row0+1)*cellH - vg.Length(row1-row0)*gapH
	left := c.Min.X + vg.Length(col0)*(cellW+gapW)
	right := left + vg.Length(col1-col0+1)*cellW + vg.Length(col1-col0)*gapW

	return draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: left, Y: bottom},
			Max: vg.Point{X: right, Y: top},
		},
	}
}

type panel struct {
	drawer     Drawer
	row0, row1 int
	col0, col1 int
}

// Figure lays out several drawers on a grid under an optional title.
type Figure struct {
	Title      string
	TitleStyle text.Style
	Grid       Grid
	Padding    vg.Length

	panels []panel
}

// NewFigure returns an untitled figure with the given grid.
func NewFigure(s Style, grid Grid) *Figure {
	return &Figure{
		TitleStyle: s.Text(s.TitleSize+2, true),
		Grid:       grid,
		Padding:    vg.Points(8),
	}
}

// Add places d over rows row0..row1 and columns col0..col1, inclusive.
func (f *Figure) Add(d Drawer, row0, row1, col0, col1 int) {
	f.panels = append(f.panels, panel{drawer: d, row0: row0, row1: row1, col0: col0, col1: col1})
}

// Draw implements Drawer.
func (f *Figure) Draw(c draw.Canvas) {
	c = draw.Crop(c, f.Padding, -f.Padding, f.Padding, -f.Padding)
	if f.Title != "" {
		h := f.TitleStyle.Rectangle(f.Title).Size().Y
		c.FillText(f.TitleStyle, vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: c.Max.Y - h/2}, f.Title)
		c = draw.Crop(c, 0, 0, 0, -(h + f.Padding))
	}
	for _, p := range f.panels {
		p.drawer.Draw(f.Grid.Span(c, p.row0, p.row1, p.col0, p.col1))
	}
}

// SavePNG renders d onto a width x height image at dpi dots per inch and
// writes it to path, creating the parent directory if needed. An existing
// file is overwritten.
func SavePNG(d Drawer, width, height vg.Length, dpi int, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	d.Draw(draw.New(img))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WithStack(err)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.WithStack(f.Close())
}
