// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rehashviz

import (
	"fmt"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/petenewcomb/rehashviz/internal/chart"
	"github.com/petenewcomb/rehashviz/internal/results"
)

// throughputStats are the numbers drawn on a throughput chart.
type throughputStats struct {
	Implementations []string
	OpsPerSecond    []float64
	BarLabels       []string

	Incremental float64
	Naive       float64
	Improvement float64
}

func newThroughputStats(rows []results.Throughput) (*throughputStats, error) {
	inc, err := results.Lookup(rows, Incremental)
	if err != nil {
		return nil, err
	}
	naive, err := results.Lookup(rows, Naive)
	if err != nil {
		return nil, err
	}
	improvement, err := Improvement(inc.OpsPerSecond, naive.OpsPerSecond)
	if err != nil {
		return nil, err
	}
	ops := results.Column(rows, func(r results.Throughput) float64 { return r.OpsPerSecond })
	return &throughputStats{
		Implementations: results.Labels(rows),
		OpsPerSecond:    ops,
		BarLabels:       mapValues(ops, FormatOps),
		Incremental:     inc.OpsPerSecond,
		Naive:           naive.OpsPerSecond,
		Improvement:     improvement,
	}, nil
}

func (ts *throughputStats) callout() string {
	return fmt.Sprintf("Incremental is %.1fx faster!", ts.Improvement)
}

func (ts *throughputStats) dashboardCallout() string {
	return fmt.Sprintf("%.1fx FASTER", ts.Improvement)
}

type throughputPanel struct {
	title, yLabel  string
	callout        string
	calloutY       float64
	calloutSize    vg.Length
	outlineWidth   vg.Length
	annotationSize vg.Length
}

func (g *Generator) throughputPlot(ts *throughputStats, tp throughputPanel) (*plot.Plot, error) {
	s := g.style
	p := s.NewPlot(tp.title, tp.yLabel, ts.Implementations)
	p.Y.Tick.Marker = chart.CommaTicks{}

	bars, err := chart.NewBarChart(s, ts.OpsPerSecond, ts.BarLabels, vg.Points(60))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = tp.outlineWidth
	bars.LabelStyle.Font.Size = tp.annotationSize
	p.Add(bars)

	top := slices.Max(ts.OpsPerSecond)
	co := chart.NewCallout(s, 0.5, top*tp.calloutY, tp.callout, s.Highlight)
	co.TextStyle.Font.Size = tp.calloutSize
	p.Add(co)

	chart.Headroom(p, top, 1.15)
	return p, nil
}

// ThroughputChart draws one bar per implementation from throughput.csv and
// calls out how many times faster Incremental is than Naive.
func (g *Generator) ThroughputChart() (ChartResult, error) {
	rows, err := g.loadThroughput()
	if err != nil {
		return ChartResult{}, err
	}
	ts, err := newThroughputStats(rows)
	if err != nil {
		return ChartResult{}, err
	}

	p, err := g.throughputPlot(ts, throughputPanel{
		title:          "Throughput Comparison - Higher is Better",
		yLabel:         "Operations per Second",
		callout:        ts.callout(),
		calloutY:       0.85,
		calloutSize:    g.style.AnnotationSize + 2,
		outlineWidth:   g.style.OutlineWidth,
		annotationSize: g.style.AnnotationSize + 1,
	})
	if err != nil {
		return ChartResult{}, err
	}

	path, err := g.save(p, 10, 6, ThroughputPNG)
	if err != nil {
		return ChartResult{}, err
	}
	return ChartResult{
		Name:        "throughput",
		Path:        path,
		Annotations: append(slices.Clone(ts.BarLabels), ts.callout()),
	}, nil
}
