// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package results_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/petenewcomb/rehashviz/internal/results"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadThroughput(t *testing.T) {
	chk := require.New(t)
	path := writeFile(t, "throughput.csv",
		"Implementation,OpsPerSecond\nIncremental,40000\nNaive,10000\nstd_unordered_map,25000.5\n")

	rows, err := results.LoadThroughput(path)
	chk.NoError(err)
	chk.Equal([]results.Throughput{
		{Implementation: "Incremental", OpsPerSecond: 40000},
		{Implementation: "Naive", OpsPerSecond: 10000},
		{Implementation: "std_unordered_map", OpsPerSecond: 25000.5},
	}, rows)
	chk.Equal([]string{"Incremental", "Naive", "std_unordered_map"}, results.Labels(rows))
}

func TestLoadLatencyFullBenchmarkHeader(t *testing.T) {
	chk := require.New(t)
	path := writeFile(t, "latency.csv",
		"Implementation,Operations,Average,P50,P95,P99,Max\n"+
			"Incremental,10000,1.5,1.2,2.8,4.1,5000\n"+
			"Naive,10000,2.5,1.1,3.0,9.9,50000\n")

	rows, err := results.LoadLatency(path)
	chk.NoError(err)
	chk.Len(rows, 2)
	chk.Equal(results.Latency{
		Implementation: "Incremental",
		Operations:     10000,
		Average:        1.5,
		P50:            1.2,
		P95:            2.8,
		P99:            4.1,
		Max:            5000,
	}, rows[0])
	chk.Equal(50000.0, rows[1].Max)
}

func TestLoadLatencyOptionalColumnsAbsent(t *testing.T) {
	chk := require.New(t)
	path := writeFile(t, "latency.csv", "Max,Implementation,P99\n50,Naive,3.5\n")

	rows, err := results.LoadLatency(path)
	chk.NoError(err)
	chk.Equal([]results.Latency{{Implementation: "Naive", P99: 3.5, Max: 50}}, rows)
}

func TestLoadSpikes(t *testing.T) {
	chk := require.New(t)
	path := writeFile(t, "spikes.csv",
		"Implementation,BeforeMax,DuringMax,SpikeRatio\nIncremental,3.2,6.4,2\nNaive, 3.0, 3000, 1000\n")

	rows, err := results.LoadSpikes(path)
	chk.NoError(err)
	chk.Equal([]results.Spike{
		{Implementation: "Incremental", BeforeMax: 3.2, DuringMax: 6.4, SpikeRatio: 2},
		{Implementation: "Naive", BeforeMax: 3.0, DuringMax: 3000, SpikeRatio: 1000},
	}, rows)
}

func TestLoadMissingFile(t *testing.T) {
	chk := require.New(t)
	_, err := results.LoadThroughput(filepath.Join(t.TempDir(), "throughput.csv"))
	chk.ErrorIs(err, results.ErrInputNotFound)
	chk.ErrorIs(err, fs.ErrNotExist)
}

func TestLoadMissingColumn(t *testing.T) {
	chk := require.New(t)
	path := writeFile(t, "spikes.csv", "Implementation,BeforeMax,DuringMax\nNaive,1,2\n")
	_, err := results.LoadSpikes(path)
	chk.ErrorIs(err, results.ErrMissingColumn)
	chk.Contains(err.Error(), "SpikeRatio")
}

func TestLoadEmptyFile(t *testing.T) {
	chk := require.New(t)
	path := writeFile(t, "throughput.csv", "")
	_, err := results.LoadThroughput(path)
	chk.ErrorIs(err, results.ErrMissingColumn)
}

func TestLoadMalformedValue(t *testing.T) {
	chk := require.New(t)
	path := writeFile(t, "throughput.csv", "Implementation,OpsPerSecond\nIncremental,lots\n")
	_, err := results.LoadThroughput(path)
	chk.ErrorIs(err, results.ErrMalformed)
	chk.Contains(err.Error(), ":2:")
	chk.NotErrorIs(err, results.ErrInputNotFound)
}

func TestLoadRaggedRow(t *testing.T) {
	chk := require.New(t)
	path := writeFile(t, "throughput.csv", "Implementation,OpsPerSecond\nIncremental\n")
	_, err := results.LoadThroughput(path)
	chk.Error(err)
	chk.NotErrorIs(err, results.ErrInputNotFound)
}

func TestLookup(t *testing.T) {
	chk := require.New(t)
	rows := []results.Throughput{
		{Implementation: "Naive", OpsPerSecond: 1},
		{Implementation: "Incremental", OpsPerSecond: 2},
	}

	row, err := results.Lookup(rows, "Incremental")
	chk.NoError(err)
	chk.Equal(2.0, row.OpsPerSecond)

	_, err = results.Lookup(rows, "Chained")
	chk.True(errors.Is(err, results.ErrLabelNotFound))
	chk.Contains(err.Error(), `"Chained"`)
}

func TestColumn(t *testing.T) {
	rows := []results.Latency{{P99: 1}, {P99: 2}, {P99: 3}}
	require.Equal(t, []float64{1, 2, 3}, results.Column(rows, func(l results.Latency) float64 { return l.P99 }))
}
