// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rehashviz

import (
	"fmt"
	"image/color"
	"slices"

	"golang.org/x/perf/benchunit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/petenewcomb/rehashviz/internal/chart"
	"github.com/petenewcomb/rehashviz/internal/results"
)

// latencyStats are the numbers drawn on a latency chart.
type latencyStats struct {
	Implementations []string
	P99             []float64
	Max             []float64

	IncrementalP99 float64
	NaiveP99       float64
	IncrementalMax float64
	NaiveMax       float64

	// P99Improvement and MaxImprovement are the percentages by which
	// Incremental is lower than Naive.
	P99Improvement float64
	MaxImprovement float64
}

func newLatencyStats(rows []results.Latency) (*latencyStats, error) {
	inc, err := results.Lookup(rows, Incremental)
	if err != nil {
		return nil, err
	}
	naive, err := results.Lookup(rows, Naive)
	if err != nil {
		return nil, err
	}
	p99Improvement, err := PercentImprovement(naive.P99, inc.P99)
	if err != nil {
		return nil, err
	}
	maxImprovement, err := PercentImprovement(naive.Max, inc.Max)
	if err != nil {
		return nil, err
	}
	return &latencyStats{
		Implementations: results.Labels(rows),
		P99:             results.Column(rows, func(r results.Latency) float64 { return r.P99 }),
		Max:             results.Column(rows, func(r results.Latency) float64 { return r.Max }),
		IncrementalP99:  inc.P99,
		NaiveP99:        naive.P99,
		IncrementalMax:  inc.Max,
		NaiveMax:        naive.Max,
		P99Improvement:  p99Improvement,
		MaxImprovement:  maxImprovement,
	}, nil
}

// p99Callout returns the P99 callout text, or false when Incremental's P99
// is not lower than Naive's.
func (ls *latencyStats) p99Callout() (string, bool) {
	if ls.P99Improvement <= 0 {
		return "", false
	}
	return fmt.Sprintf("%.1f%% better", ls.P99Improvement), true
}

func (ls *latencyStats) maxCallout() string {
	return fmt.Sprintf("Incremental: %.1fms\nNaive: %.1fms\n(%.0f%% better)",
		ls.IncrementalMax/1000, ls.NaiveMax/1000, ls.MaxImprovement)
}

func (ls *latencyStats) annotations() []string {
	var a []string
	a = append(a, mapValues(ls.P99, FormatMicros)...)
	if c, ok := ls.p99Callout(); ok {
		a = append(a, c)
	}
	a = append(a, mapValues(ls.Max, FormatMaxLatency)...)
	return append(a, ls.maxCallout())
}

// latencyPlot draws values as labeled bars with an optional callout at 80% of
// the tallest bar.
func (g *Generator) latencyPlot(title, yLabel string, implementations []string, values []float64, labels []string, callout string, fill color.Color) (*plot.Plot, error) {
	s := g.style
	p := s.NewPlot(title, yLabel, implementations)

	bars, err := chart.NewBarChart(s, values, labels, vg.Points(50))
	if err != nil {
		return nil, err
	}
	p.Add(bars)

	top := slices.Max(values)
	if callout != "" {
		p.Add(chart.NewCallout(s, 0.5, top*0.8, callout, fill))
	}
	chart.Headroom(p, top, 1.15)
	return p, nil
}

// LatencyChart draws P99 and worst-case latency per implementation from
// latency.csv side by side. The P99 panel calls out Incremental's percentage
// improvement only when it is positive; the worst-case panel always calls
// out both values.
func (g *Generator) LatencyChart() (ChartResult, error) {
	rows, err := g.loadLatency()
	if err != nil {
		return ChartResult{}, err
	}
	ls, err := newLatencyStats(rows)
	if err != nil {
		return ChartResult{}, err
	}

	p99Callout, _ := ls.p99Callout()
	p99, err := g.latencyPlot("P99 Latency - Lower is Better", "Latency (μs)",
		ls.Implementations, ls.P99, mapValues(ls.P99, FormatMicros), p99Callout, g.style.Positive)
	if err != nil {
		return ChartResult{}, err
	}
	chart.RotateCategories(p99, 15)

	worst, err := g.latencyPlot("Worst-Case Latency - Lower is Better", "Max Latency (μs)",
		ls.Implementations, ls.Max, mapValues(ls.Max, FormatMaxLatency), ls.maxCallout(), g.style.Highlight)
	if err != nil {
		return ChartResult{}, err
	}
	worst.Y.Tick.Marker = chart.ScaledTicks{Class: benchunit.Decimal}
	chart.RotateCategories(worst, 15)

	fig := chart.NewFigure(g.style, chart.Grid{Rows: 1, Cols: 2, WSpace: 0.15})
	fig.Add(p99, 0, 0, 0, 0)
	fig.Add(worst, 0, 0, 1, 1)

	path, err := g.save(fig, 14, 6, LatencyPNG)
	if err != nil {
		return ChartResult{}, err
	}
	return ChartResult{
		Name:        "latency",
		Path:        path,
		Annotations: ls.annotations(),
	}, nil
}
