// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rehashviz

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/petenewcomb/rehashviz/internal/chart"
)

const dashboardTitle = "Hash Table Performance Benchmark - Incremental vs Full Rehashing"

// dashboardSummary builds the free text shown under the dashboard charts.
func dashboardSummary(ts *throughputStats, ls *latencyStats, hardware string) string {
	var b strings.Builder
	fmt.Fprintln(&b, "BENCHMARK RESULTS SUMMARY")
	fmt.Fprintf(&b, "Test System: %s\n", hardware)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "KEY FINDINGS:")
	fmt.Fprintf(&b, "• Throughput: Incremental achieves %.1fx better throughput (%d vs %d ops/sec)\n",
		ts.Improvement, int64(ts.Incremental), int64(ts.Naive))
	fmt.Fprintf(&b, "• Max Latency: %.0f%% lower worst-case latency\n", ls.MaxImprovement)
	fmt.Fprintf(&b, "• Consistency: No %.0fms pauses during rehashing\n", ls.NaiveMax/1000)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "CONCLUSION: Even on flagship hardware, incremental rehashing provides significant throughput")
	fmt.Fprintln(&b, "improvement by eliminating long rehashing pauses. This advantage would be even more")
	fmt.Fprint(&b, "pronounced on slower hardware or under high load conditions.")
	return b.String()
}

// Dashboard re-reads throughput.csv and latency.csv and draws a single
// overview: a large throughput panel, P99 and worst-case latency panels, and
// a text summary of the key findings.
func (g *Generator) Dashboard() (ChartResult, error) {
	throughputRows, err := g.loadThroughput()
	if err != nil {
		return ChartResult{}, err
	}
	latencyRows, err := g.loadLatency()
	if err != nil {
		return ChartResult{}, err
	}
	ts, err := newThroughputStats(throughputRows)
	if err != nil {
		return ChartResult{}, err
	}
	ls, err := newLatencyStats(latencyRows)
	if err != nil {
		return ChartResult{}, err
	}

	s := g.style
	throughput, err := g.throughputPlot(ts, throughputPanel{
		title:          "Throughput - THE KEY METRIC",
		yLabel:         "Operations / Second",
		callout:        ts.dashboardCallout(),
		calloutY:       0.7,
		calloutSize:    s.AnnotationSize + 5,
		outlineWidth:   vg.Points(2),
		annotationSize: s.AnnotationSize,
	})
	if err != nil {
		return ChartResult{}, err
	}

	p99Labels := mapValues(ls.P99, sprintfer("%.1f"))
	p99, err := g.latencyPlot("P99 Latency", "P99 Latency (μs)", ls.Implementations, ls.P99, p99Labels, "", nil)
	if err != nil {
		return ChartResult{}, err
	}
	chart.RotateCategories(p99, 20)
	p99.X.Tick.Label.Font.Size = vg.Points(9)

	maxLabels := mapValues(ls.Max, func(us float64) string { return fmt.Sprintf("%.1fms", us/1000) })
	worst, err := g.latencyPlot("Worst-Case Latency", "Max Latency (μs)", ls.Implementations, ls.Max, maxLabels, "", nil)
	if err != nil {
		return ChartResult{}, err
	}
	chart.RotateCategories(worst, 20)
	worst.X.Tick.Label.Font.Size = vg.Points(9)

	summary := dashboardSummary(ts, ls, g.cfg.Hardware)
	panel := &chart.TextPanel{
		Text:      summary,
		TextStyle: s.Mono(s.AnnotationSize),
		Fill:      s.Panel,
		Border:    s.OutlineStyle(vg.Points(2)),
		Padding:   vg.Points(12),
	}

	fig := chart.NewFigure(s, chart.Grid{Rows: 3, Cols: 2, HSpace: 0.3, WSpace: 0.3})
	fig.Title = dashboardTitle
	fig.Add(throughput, 0, 1, 0, 0)
	fig.Add(p99, 0, 0, 1, 1)
	fig.Add(worst, 1, 1, 1, 1)
	fig.Add(panel, 2, 2, 0, 1)

	path, err := g.save(fig, 16, 10, DashboardPNG)
	if err != nil {
		return ChartResult{}, err
	}

	var annotations []string
	annotations = append(annotations, ts.BarLabels...)
	annotations = append(annotations, ts.dashboardCallout())
	annotations = append(annotations, p99Labels...)
	annotations = append(annotations, maxLabels...)
	annotations = append(annotations, summary)
	return ChartResult{
		Name:        "dashboard",
		Path:        path,
		Annotations: annotations,
	}, nil
}
