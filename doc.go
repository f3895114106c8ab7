// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package rehashviz turns the CSV files written by the hash table rehashing
// benchmark into PNG charts comparing an incrementally rehashing table
// ("Incremental") with one that rehashes all at once ("Naive").
//
// A [Generator] reads throughput.csv, latency.csv and spikes.csv from a
// results directory and writes four images next to them:
//
//   - throughput_comparison.png: operations per second per implementation,
//     with Incremental's speedup over Naive called out.
//   - latency_comparison.png: P99 and worst-case latency side by side.
//   - spike_comparison.png: worst-case latency before and during a rehash.
//   - benchmark_dashboard.png: an overview of the above with a text summary.
//
// Each chart is read, computed and written independently, in that order.
// Generation stops at the first error and leaves already written charts in
// place. A missing input file is reported as [ErrInputNotFound]; every other
// failure carries a stack trace for printing with %+v.
package rehashviz
