// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rehashviz

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// MillisecondThreshold is the latency, in microseconds, from which worst-case
// latency labels switch from microseconds to milliseconds.
const MillisecondThreshold = 100

// Improvement returns how many times higher incremental is than naive.
func Improvement(incremental, naive float64) (float64, error) {
	if naive == 0 {
		return 0, errors.Wrapf(ErrZeroBaseline, "improvement of %v over %v", incremental, naive)
	}
	return incremental / naive, nil
}

// PercentImprovement returns by how many percent incremental is lower than
// naive. It is negative when incremental is higher.
func PercentImprovement(naive, incremental float64) (float64, error) {
	if naive == 0 {
		return 0, errors.Wrapf(ErrZeroBaseline, "percent improvement of %v over %v", incremental, naive)
	}
	return (naive - incremental) / naive * 100, nil
}

// FormatOps truncates ops to an integer and groups its digits by thousands.
func FormatOps(ops float64) string {
	return humanize.Comma(int64(ops))
}

// FormatMicros formats a latency in microseconds.
func FormatMicros(us float64) string {
	return fmt.Sprintf("%.1f μs", us)
}

// FormatMaxLatency formats a worst-case latency given in microseconds, in
// microseconds below MillisecondThreshold and in milliseconds from there on.
// The unit is chosen for each value on its own.
func FormatMaxLatency(us float64) string {
	if us < MillisecondThreshold {
		return FormatMicros(us)
	}
	return fmt.Sprintf("%.1f ms", us/1000)
}

func mapValues(values []float64, format func(float64) string) []string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = format(v)
	}
	return labels
}

func sprintfer(format string) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf(format, v)
	}
}
