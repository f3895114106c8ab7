// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rehashviz

import "path/filepath"

const (
	DefaultResultsDir = "results"
	DefaultDPI        = 300
	DefaultHardware   = "Intel i7-13700K (16 cores, 5.4GHz) + RTX 4070 Ti Super"
)

// Input and output file names, relative to the results directory.
const (
	ThroughputCSV = "throughput.csv"
	LatencyCSV    = "latency.csv"
	SpikesCSV     = "spikes.csv"

	ThroughputPNG = "throughput_comparison.png"
	LatencyPNG    = "latency_comparison.png"
	SpikePNG      = "spike_comparison.png"
	DashboardPNG  = "benchmark_dashboard.png"
)

// The two implementations every comparison is made between.
const (
	Incremental = "Incremental"
	Naive       = "Naive"
)

// Config controls where a report is read from and written to. The zero value
// reads and writes the "results" directory at 300 DPI.
type Config struct {
	// ResultsDir holds both the input CSV files and the output images.
	ResultsDir string

	// DPI is the output image resolution.
	DPI int

	// Hardware describes the machine the benchmark ran on. It is quoted
	// verbatim in the dashboard summary.
	Hardware string
}

func (c Config) withDefaults() Config {
	if c.ResultsDir == "" {
		c.ResultsDir = DefaultResultsDir
	}
	if c.DPI <= 0 {
		c.DPI = DefaultDPI
	}
	if c.Hardware == "" {
		c.Hardware = DefaultHardware
	}
	return c
}

func (c Config) path(name string) string {
	return filepath.Join(c.ResultsDir, name)
}
