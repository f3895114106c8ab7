// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rehashviz_test

import (
	"bytes"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petenewcomb/rehashviz"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	throughputCSV = "Implementation,OpsPerSecond\n" +
		"Incremental,40000\n" +
		"Naive,10000\n" +
		"std_unordered_map,25000\n"
	latencyCSV = "Implementation,Operations,Average,P50,P95,P99,Max\n" +
		"Incremental,10000,1.1,0.9,2.0,4.0,5000\n" +
		"Naive,10000,1.5,0.9,2.1,8.0,50000\n" +
		"std_unordered_map,10000,1.0,0.8,1.9,3.0,50\n"
	spikesCSV = "Implementation,BeforeMax,DuringMax,SpikeRatio\n" +
		"Incremental,3.0,6.0,2.0\n" +
		"Naive,3.0,3000.0,1000.0\n"
)

// resultsDir writes the given files into a fresh directory.
func resultsDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func allInputs() map[string]string {
	return map[string]string{
		rehashviz.ThroughputCSV: throughputCSV,
		rehashviz.LatencyCSV:    latencyCSV,
		rehashviz.SpikesCSV:     spikesCSV,
	}
}

// Low resolution keeps rendering fast.
func newGenerator(dir string) *rehashviz.Generator {
	return rehashviz.NewGenerator(rehashviz.Config{ResultsDir: dir, DPI: 20}, nil, nil)
}

func pngSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestGenerateWritesAllCharts(t *testing.T) {
	chk := require.New(t)
	dir := resultsDir(t, allInputs())
	var out bytes.Buffer

	gen := rehashviz.NewGenerator(rehashviz.Config{ResultsDir: dir, DPI: 20}, nil, &out)
	report, err := gen.Generate()
	chk.NoError(err)

	chk.Len(report.Charts, 4)
	for i, want := range []struct {
		name          string
		file          string
		width, height int
	}{
		{"throughput", rehashviz.ThroughputPNG, 200, 120},
		{"latency", rehashviz.LatencyPNG, 280, 120},
		{"spikes", rehashviz.SpikePNG, 200, 120},
		{"dashboard", rehashviz.DashboardPNG, 320, 200},
	} {
		c := report.Charts[i]
		chk.Equal(want.name, c.Name)
		chk.Equal(filepath.Join(dir, want.file), c.Path)
		w, h := pngSize(t, c.Path)
		chk.Equal(want.width, w, want.name)
		chk.Equal(want.height, h, want.name)
		chk.Contains(out.String(), "✓ Created: "+c.Path)
	}
}

func TestThroughputChartDefaultResolution(t *testing.T) {
	chk := require.New(t)
	dir := resultsDir(t, allInputs())

	res, err := rehashviz.NewGenerator(rehashviz.Config{ResultsDir: dir}, nil, nil).ThroughputChart()
	chk.NoError(err)
	w, h := pngSize(t, res.Path)
	chk.Equal(3000, w)
	chk.Equal(1800, h)
}

func TestThroughputImprovementCallout(t *testing.T) {
	chk := require.New(t)
	dir := resultsDir(t, map[string]string{
		rehashviz.ThroughputCSV: "Implementation,OpsPerSecond\nNaive,10000\nIncremental,40000\n",
	})

	res, err := newGenerator(dir).ThroughputChart()
	chk.NoError(err)
	chk.Equal([]string{"10,000", "40,000", "Incremental is 4.0x faster!"}, res.Annotations)

	entries, err := os.ReadDir(dir)
	chk.NoError(err)
	var images []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".png") {
			images = append(images, e.Name())
		}
	}
	chk.Equal([]string{rehashviz.ThroughputPNG}, images)
}

func TestThroughputMissingLabel(t *testing.T) {
	for _, missing := range []string{rehashviz.Naive, rehashviz.Incremental} {
		t.Run(missing, func(t *testing.T) {
			chk := require.New(t)
			var rows []string
			for _, line := range strings.Split(strings.TrimSpace(throughputCSV), "\n") {
				if !strings.HasPrefix(line, missing+",") {
					rows = append(rows, line)
				}
			}
			files := allInputs()
			files[rehashviz.ThroughputCSV] = strings.Join(rows, "\n") + "\n"
			dir := resultsDir(t, files)

			report, err := newGenerator(dir).Generate()
			chk.ErrorIs(err, rehashviz.ErrLabelNotFound)
			chk.NotErrorIs(err, rehashviz.ErrInputNotFound)
			chk.Empty(report.Charts)
			chk.NoFileExists(filepath.Join(dir, rehashviz.ThroughputPNG))
		})
	}
}

func TestEarlierChartsSurviveLaterFailure(t *testing.T) {
	chk := require.New(t)
	files := allInputs()
	files[rehashviz.LatencyCSV] = "Implementation,P99,Max\nIncremental,4.0,5000\n"
	dir := resultsDir(t, files)

	report, err := newGenerator(dir).Generate()
	chk.ErrorIs(err, rehashviz.ErrLabelNotFound)
	chk.Len(report.Charts, 1)
	chk.FileExists(filepath.Join(dir, rehashviz.ThroughputPNG))
	chk.NoFileExists(filepath.Join(dir, rehashviz.LatencyPNG))
	chk.NoFileExists(filepath.Join(dir, rehashviz.SpikePNG))
	chk.NoFileExists(filepath.Join(dir, rehashviz.DashboardPNG))
}

func TestGenerateMissingInput(t *testing.T) {
	chk := require.New(t)
	files := allInputs()
	delete(files, rehashviz.SpikesCSV)
	dir := resultsDir(t, files)

	report, err := newGenerator(dir).Generate()
	chk.ErrorIs(err, rehashviz.ErrInputNotFound)
	chk.ErrorIs(err, fs.ErrNotExist)
	chk.Len(report.Charts, 2)
	_, ok := report.Chart("latency")
	chk.True(ok)
	_, ok = report.Chart("spikes")
	chk.False(ok)
}

func TestGenerateZeroBaseline(t *testing.T) {
	chk := require.New(t)
	files := allInputs()
	files[rehashviz.ThroughputCSV] = "Implementation,OpsPerSecond\nIncremental,40000\nNaive,0\n"
	dir := resultsDir(t, files)

	_, err := newGenerator(dir).Generate()
	chk.ErrorIs(err, rehashviz.ErrZeroBaseline)
}

func TestSpikesWithoutRows(t *testing.T) {
	chk := require.New(t)
	files := allInputs()
	files[rehashviz.SpikesCSV] = "Implementation,BeforeMax,DuringMax,SpikeRatio\n"
	dir := resultsDir(t, files)

	_, err := newGenerator(dir).SpikeChart()
	chk.ErrorIs(err, rehashviz.ErrNoRows)
}

func TestLatencyAnnotations(t *testing.T) {
	chk := require.New(t)
	dir := resultsDir(t, allInputs())

	res, err := newGenerator(dir).LatencyChart()
	chk.NoError(err)
	chk.Equal([]string{
		"4.0 μs", "8.0 μs", "3.0 μs",
		"50.0% better",
		"5.0 ms", "50.0 ms", "50.0 μs",
		"Incremental: 5.0ms\nNaive: 50.0ms\n(90% better)",
	}, res.Annotations)
}

func TestLatencyP99CalloutOmittedWhenWorse(t *testing.T) {
	chk := require.New(t)
	dir := resultsDir(t, map[string]string{
		rehashviz.LatencyCSV: "Implementation,P99,Max\nIncremental,9.0,5000\nNaive,8.0,50000\n",
	})

	res, err := newGenerator(dir).LatencyChart()
	chk.NoError(err)
	chk.Equal([]string{
		"9.0 μs", "8.0 μs",
		"5.0 ms", "50.0 ms",
		"Incremental: 5.0ms\nNaive: 50.0ms\n(90% better)",
	}, res.Annotations)
}

func TestSpikeAnnotations(t *testing.T) {
	chk := require.New(t)
	dir := resultsDir(t, allInputs())

	res, err := newGenerator(dir).SpikeChart()
	chk.NoError(err)
	chk.Equal([]string{
		"3.0μs", "6.0μs",
		"3.0μs", "3000.0μs",
		"2.0x spike", "1000.0x spike",
	}, res.Annotations)
}

func TestDashboardSummaryUsesLabels(t *testing.T) {
	chk := require.New(t)
	files := allInputs()
	// Naive first, so a positional comparison would report a negative
	// reduction.
	files[rehashviz.LatencyCSV] = "Implementation,P99,Max\nNaive,8.0,50000\nIncremental,4.0,5000\n"
	dir := resultsDir(t, files)

	gen := rehashviz.NewGenerator(rehashviz.Config{ResultsDir: dir, DPI: 20, Hardware: "test rig"}, nil, nil)
	res, err := gen.Dashboard()
	chk.NoError(err)

	summary := res.Annotations[len(res.Annotations)-1]
	chk.Contains(summary, "Test System: test rig")
	chk.Contains(summary, "Incremental achieves 4.0x better throughput (40000 vs 10000 ops/sec)")
	chk.Contains(summary, "Max Latency: 90% lower worst-case latency")
	chk.Contains(summary, "No 50ms pauses during rehashing")
	chk.Contains(res.Annotations, "4.0x FASTER")
	chk.Contains(res.Annotations, "50.0ms")
	chk.Contains(res.Annotations, "8.0")
}

func TestGenerateIsDeterministic(t *testing.T) {
	chk := require.New(t)
	dir := resultsDir(t, allInputs())

	first, err := newGenerator(dir).Generate()
	chk.NoError(err)
	second, err := newGenerator(dir).Generate()
	chk.NoError(err)

	chk.Equal(len(first.Charts), len(second.Charts))
	for i := range first.Charts {
		chk.Equal(first.Charts[i].Annotations, second.Charts[i].Annotations)
	}
}

func TestGenerateLogs(t *testing.T) {
	chk := require.New(t)
	dir := resultsDir(t, allInputs())
	core, logs := observer.New(zap.DebugLevel)

	_, err := rehashviz.NewGenerator(rehashviz.Config{ResultsDir: dir, DPI: 20}, zap.New(core), nil).Generate()
	chk.NoError(err)
	chk.Equal(4, logs.FilterMessage("Chart written").Len())
	// The dashboard reads throughput and latency again.
	chk.Equal(5, logs.FilterMessage("Loaded table").Len())
}

func TestGenerateFailureLoggedAtDebug(t *testing.T) {
	chk := require.New(t)
	files := allInputs()
	delete(files, rehashviz.ThroughputCSV)
	dir := resultsDir(t, files)
	core, logs := observer.New(zap.DebugLevel)

	_, err := rehashviz.NewGenerator(rehashviz.Config{ResultsDir: dir, DPI: 20}, zap.New(core), nil).Generate()
	chk.ErrorIs(err, rehashviz.ErrInputNotFound)
	failed := logs.FilterMessage("Chart failed").All()
	chk.Len(failed, 1)
	chk.Equal(zap.DebugLevel, failed[0].Level)
	chk.Equal("throughput", failed[0].ContextMap()["chart"])
	chk.Zero(logs.FilterLevelExact(zap.ErrorLevel).Len())
}

func TestLatencyZeroBaseline(t *testing.T) {
	for name, latency := range map[string]string{
		"P99": "Implementation,P99,Max\nIncremental,4.0,5000\nNaive,0,50000\n",
		"Max": "Implementation,P99,Max\nIncremental,4.0,5000\nNaive,8.0,0\n",
	} {
		t.Run(name, func(t *testing.T) {
			chk := require.New(t)
			files := allInputs()
			files[rehashviz.LatencyCSV] = latency
			dir := resultsDir(t, files)

			report, err := newGenerator(dir).Generate()
			chk.ErrorIs(err, rehashviz.ErrZeroBaseline)
			chk.NotErrorIs(err, rehashviz.ErrInputNotFound)
			chk.Len(report.Charts, 1)
			chk.FileExists(filepath.Join(dir, rehashviz.ThroughputPNG))
			chk.NoFileExists(filepath.Join(dir, rehashviz.LatencyPNG))
		})
	}
}

func TestGeneratorDefaults(t *testing.T) {
	chk := require.New(t)
	cfg := rehashviz.NewGenerator(rehashviz.Config{}, nil, nil).Config()
	chk.Equal(rehashviz.DefaultResultsDir, cfg.ResultsDir)
	chk.Equal(rehashviz.DefaultDPI, cfg.DPI)
	chk.Equal(rehashviz.DefaultHardware, cfg.Hardware)
}
