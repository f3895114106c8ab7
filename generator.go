// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rehashviz

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/petenewcomb/rehashviz/internal/chart"
	"github.com/petenewcomb/rehashviz/internal/results"
)

// ChartResult describes one written image.
type ChartResult struct {
	// Name identifies the chart: "throughput", "latency", "spikes" or
	// "dashboard".
	Name string

	// Path is where the image was written.
	Path string

	// Annotations are the computed texts drawn on the chart, in drawing
	// order. They depend only on the input tables.
	Annotations []string
}

// Report lists the charts written by Generate, in the order they were
// written.
type Report struct {
	Charts []ChartResult
}

// Chart returns the result for the named chart, if it was written.
func (r *Report) Chart(name string) (ChartResult, bool) {
	for _, c := range r.Charts {
		if c.Name == name {
			return c, true
		}
	}
	return ChartResult{}, false
}

// Generator draws the benchmark report. Its configuration and style are fixed
// at construction.
type Generator struct {
	cfg    Config
	style  chart.Style
	logger *zap.Logger
	out    io.Writer
}

// NewGenerator returns a Generator for cfg. A nil logger discards log output
// and a nil out discards progress messages.
func NewGenerator(cfg Config, logger *zap.Logger, out io.Writer) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Generator{
		cfg:    cfg.withDefaults(),
		style:  chart.DefaultStyle(),
		logger: logger,
		out:    out,
	}
}

// Config returns the effective configuration, defaults included.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate writes the throughput, latency, spike and dashboard charts in that
// order. It stops at the first failure; charts written before it stay on
// disk and are listed in the returned report.
func (g *Generator) Generate() (*Report, error) {
	report := &Report{}
	for _, step := range []struct {
		name string
		run  func() (ChartResult, error)
	}{
		{"throughput", g.ThroughputChart},
		{"latency", g.LatencyChart},
		{"spikes", g.SpikeChart},
		{"dashboard", g.Dashboard},
	} {
		startTime := time.Now()
		res, err := step.run()
		duration := time.Since(startTime)
		if err != nil {
			g.logger.Debug("Chart failed",
				zap.String("chart", step.name),
				zap.Duration("duration", duration),
				zap.Error(err))
			return report, err
		}
		g.logger.Debug("Chart written",
			zap.String("chart", step.name),
			zap.String("path", res.Path),
			zap.Duration("duration", duration))
		fmt.Fprintf(g.out, "✓ Created: %s\n", res.Path)
		report.Charts = append(report.Charts, res)
	}
	return report, nil
}

func inches(n float64) vg.Length {
	return vg.Length(n) * vg.Inch
}

func (g *Generator) save(d chart.Drawer, width, height float64, name string) (string, error) {
	path := g.cfg.path(name)
	if err := chart.SavePNG(d, inches(width), inches(height), g.cfg.DPI, path); err != nil {
		return "", err
	}
	return path, nil
}

func (g *Generator) loadThroughput() ([]results.Throughput, error) {
	path := g.cfg.path(ThroughputCSV)
	rows, err := results.LoadThroughput(path)
	g.logLoad(path, len(rows), err)
	return rows, err
}

func (g *Generator) loadLatency() ([]results.Latency, error) {
	path := g.cfg.path(LatencyCSV)
	rows, err := results.LoadLatency(path)
	g.logLoad(path, len(rows), err)
	return rows, err
}

func (g *Generator) loadSpikes() ([]results.Spike, error) {
	path := g.cfg.path(SpikesCSV)
	rows, err := results.LoadSpikes(path)
	g.logLoad(path, len(rows), err)
	return rows, err
}

func (g *Generator) logLoad(path string, rows int, err error) {
	if err != nil {
		return
	}
	g.logger.Debug("Loaded table",
		zap.String("path", path),
		zap.Int("rows", rows))
}
