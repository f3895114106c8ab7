// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package rehashviz

import (
	"github.com/petenewcomb/rehashviz/internal/cerr"
	"github.com/petenewcomb/rehashviz/internal/results"
)

// ErrInputNotFound is returned when a results CSV file does not exist. The
// returned error also matches fs.ErrNotExist.
const ErrInputNotFound = results.ErrInputNotFound

// ErrLabelNotFound is returned when a table has no row for "Incremental" or
// "Naive".
const ErrLabelNotFound = results.ErrLabelNotFound

// ErrZeroBaseline is returned when a comparison would divide by a zero
// Naive value.
const ErrZeroBaseline = cerr.Error("baseline value is zero")

// ErrNoRows is returned when a table has a header but no data rows.
const ErrNoRows = cerr.Error("table has no rows")
