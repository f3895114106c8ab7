// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rehashviz

import (
	"image/color"
	"slices"

	"gonum.org/v1/plot/vg"

	"github.com/petenewcomb/rehashviz/internal/chart"
	"github.com/petenewcomb/rehashviz/internal/results"
)

// spikeStats are the numbers drawn on the rehash spike chart. Rows are used
// in file order and the ratio is taken from the table as is.
type spikeStats struct {
	Implementations []string
	Before          []float64
	During          []float64

	BeforeLabels []string
	DuringLabels []string
	RatioLabels  []string
}

func newSpikeStats(rows []results.Spike) *spikeStats {
	before := results.Column(rows, func(r results.Spike) float64 { return r.BeforeMax })
	during := results.Column(rows, func(r results.Spike) float64 { return r.DuringMax })
	ratios := results.Column(rows, func(r results.Spike) float64 { return r.SpikeRatio })
	return &spikeStats{
		Implementations: results.Labels(rows),
		Before:          before,
		During:          during,
		BeforeLabels:    mapValues(before, sprintfer("%.1fμs")),
		DuringLabels:    mapValues(during, sprintfer("%.1fμs")),
		RatioLabels:     mapValues(ratios, sprintfer("%.1fx spike")),
	}
}

func (ss *spikeStats) annotations() []string {
	var a []string
	for i := range ss.Implementations {
		a = append(a, ss.BeforeLabels[i], ss.DuringLabels[i])
	}
	return append(a, ss.RatioLabels...)
}

// SpikeChart draws the worst-case latency before and during a rehash for
// each implementation in spikes.csv as grouped bars, annotated with the
// spike ratio the benchmark recorded.
func (g *Generator) SpikeChart() (ChartResult, error) {
	rows, err := g.loadSpikes()
	if err != nil {
		return ChartResult{}, err
	}
	if len(rows) == 0 {
		return ChartResult{}, ErrNoRows
	}
	ss := newSpikeStats(rows)

	s := g.style
	p := s.NewPlot("Rehashing Spike Comparison - Lower Spike is Better", "Max Latency (μs)", ss.Implementations)

	barWidth := vg.Points(50)
	before, err := chart.NewBarChart(s, ss.Before, ss.BeforeLabels, barWidth)
	if err != nil {
		return ChartResult{}, err
	}
	before.Colors = []color.Color{s.Before}
	before.Offset = -barWidth / 2
	before.LabelStyle.Font.Size = s.AnnotationSize - 1

	during, err := chart.NewBarChart(s, ss.During, ss.DuringLabels, barWidth)
	if err != nil {
		return ChartResult{}, err
	}
	during.Colors = []color.Color{s.During}
	during.Offset = barWidth / 2
	during.LabelStyle.Font.Size = s.AnnotationSize - 1

	p.Add(before, during)
	p.Legend.Add("Before Rehash", before)
	p.Legend.Add("During Rehash", during)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter

	top := slices.Max(ss.During)
	for i, label := range ss.RatioLabels {
		co := chart.NewCallout(s, float64(i), top*0.7, label, s.Neutral)
		co.TextStyle.Font.Size = s.AnnotationSize - 1
		co.Border.Width = vg.Points(1)
		co.Padding = vg.Points(3)
		p.Add(co)
	}
	chart.Headroom(p, slices.Max(append(slices.Clone(ss.Before), top)), 1.15)

	path, err := g.save(p, 10, 6, SpikePNG)
	if err != nil {
		return ChartResult{}, err
	}
	return ChartResult{
		Name:        "spikes",
		Path:        path,
		Annotations: ss.annotations(),
	}, nil
}
