// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"github.com/dustin/go-humanize"
	"golang.org/x/perf/benchunit"
	"gonum.org/v1/plot"
)

// CommaTicks labels the default major ticks as integers with thousands
// separators.
type CommaTicks struct{}

var _ plot.Ticker = CommaTicks{}

// Ticks implements plot.Ticker.
func (CommaTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = humanize.Comma(int64(ticks[i].Value))
		}
	}
	return ticks
}

// ScaledTicks labels the default major ticks with SI-style suffixes, so that
// 50000 reads as "50.0k".
type ScaledTicks struct {
	Class benchunit.Class
}

var _ plot.Ticker = ScaledTicks{}

// Ticks implements plot.Ticker.
func (st ScaledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		if ticks[i].Value == 0 {
			ticks[i].Label = "0"
			continue
		}
		ticks[i].Label = benchunit.Scale(ticks[i].Value, st.Class)
	}
	return ticks
}
