// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package results

// Throughput is one row of throughput.csv.
type Throughput struct {
	Implementation string
	OpsPerSecond   float64
}

func (t Throughput) Label() string { return t.Implementation }

// Latency is one row of latency.csv. All values are in microseconds. The
// benchmark also writes Operations, Average, P50 and P95; those are parsed
// when present and left zero otherwise.
type Latency struct {
	Implementation string
	Operations     float64
	Average        float64
	P50            float64
	P95            float64
	P99            float64
	Max            float64
}

func (l Latency) Label() string { return l.Implementation }

// Spike is one row of spikes.csv: the worst-case latency in microseconds
// just before and during a rehash, and the ratio the benchmark computed
// between them.
type Spike struct {
	Implementation string
	BeforeMax      float64
	DuringMax      float64
	SpikeRatio     float64
}

func (s Spike) Label() string { return s.Implementation }

// LoadThroughput reads a throughput table.
func LoadThroughput(path string) ([]Throughput, error) {
	records, err := readTable(path, "OpsPerSecond")
	if err != nil {
		return nil, err
	}
	rows := make([]Throughput, 0, len(records))
	for _, rec := range records {
		row := Throughput{Implementation: rec.str(ImplementationColumn)}
		if row.OpsPerSecond, err = rec.float("OpsPerSecond"); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadLatency reads a latency table.
func LoadLatency(path string) ([]Latency, error) {
	records, err := readTable(path, "P99", "Max")
	if err != nil {
		return nil, err
	}
	rows := make([]Latency, 0, len(records))
	for _, rec := range records {
		row := Latency{Implementation: rec.str(ImplementationColumn)}
		for _, f := range []struct {
			column string
			dst    *float64
		}{
			{"Operations", &row.Operations},
			{"Average", &row.Average},
			{"P50", &row.P50},
			{"P95", &row.P95},
			{"P99", &row.P99},
			{"Max", &row.Max},
		} {
			if *f.dst, err = rec.float(f.column); err != nil {
				return nil, err
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadSpikes reads a rehashing spike table.
func LoadSpikes(path string) ([]Spike, error) {
	records, err := readTable(path, "BeforeMax", "DuringMax", "SpikeRatio")
	if err != nil {
		return nil, err
	}
	rows := make([]Spike, 0, len(records))
	for _, rec := range records {
		row := Spike{Implementation: rec.str(ImplementationColumn)}
		if row.BeforeMax, err = rec.float("BeforeMax"); err != nil {
			return nil, err
		}
		if row.DuringMax, err = rec.float("DuringMax"); err != nil {
			return nil, err
		}
		if row.SpikeRatio, err = rec.float("SpikeRatio"); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
