// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package results loads the CSV tables written by the hash table benchmark.
//
// Every table has a header row and an Implementation column identifying the
// hash table variant that produced the row. Columns are located by header
// name, so column order and unknown columns do not matter.
package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/petenewcomb/rehashviz/internal/cerr"
)

const (
	ErrInputNotFound = cerr.Error("input not found")
	ErrMissingColumn = cerr.Error("missing column")
	ErrLabelNotFound = cerr.Error("implementation not found")
	ErrMalformed     = cerr.Error("malformed value")
)

// ImplementationColumn is the header of the key column shared by all tables.
const ImplementationColumn = "Implementation"

// record is a single data row addressed by header name.
type record struct {
	path    string
	line    int
	columns map[string]int
	fields  []string
}

func (r *record) has(column string) bool {
	_, ok := r.columns[column]
	return ok
}

func (r *record) str(column string) string {
	return strings.TrimSpace(r.fields[r.columns[column]])
}

// float parses the named column. Absent optional columns read as zero.
func (r *record) float(column string) (float64, error) {
	if !r.has(column) {
		return 0, nil
	}
	s := r.str(column)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "%s:%d: column %s: %q", r.path, r.line, column, s)
	}
	return v, nil
}

// readTable opens path and returns its data rows. The required columns must
// all be present in the header.
func readTable(path string, required ...string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	return parseTable(f, path, required...)
}

func parseTable(r io.Reader, path string, required ...string) ([]record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Wrapf(ErrMissingColumn, "%s: empty file, no header row", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s: reading header", path)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range append([]string{ImplementationColumn}, required...) {
		if _, ok := columns[name]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%s: %s", path, name)
		}
	}

	var records []record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}
		line, _ := cr.FieldPos(0)
		records = append(records, record{
			path:    path,
			line:    line,
			columns: columns,
			fields:  fields,
		})
	}
	return records, nil
}

// Labeled is implemented by every row type.
type Labeled interface {
	Label() string
}

// Lookup returns the first row whose implementation label equals label.
func Lookup[R Labeled](rows []R, label string) (R, error) {
	for _, r := range rows {
		if r.Label() == label {
			return r, nil
		}
	}
	var zero R
	return zero, errors.Wrapf(ErrLabelNotFound, "%q", label)
}

// Labels returns the implementation labels of rows in file order.
func Labels[R Labeled](rows []R) []string {
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Label()
	}
	return labels
}

// Column extracts one numeric value per row in file order.
func Column[R any](rows []R, value func(R) float64) []float64 {
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = value(r)
	}
	return values
}
