// Package datasets defines the normalized tabular data model consumed by the
// reconciliation engine, and an in-memory store that resolves datasets by
// source file identity.
package datasets

import (
	"fmt"

	"github.com/tabwork/sheetrecon/pkg/errors"
)

// Row is a single worksheet row: a mapping from header name to the cell's
// string value. Keys must be a subset of the owning dataset's headers.
type Row map[string]string

// Dataset is one named table of rows under a fixed, ordered set of column
// headers. Header order is significant; a row's index is its logical identity
// for the lifetime of the dataset instance.
type Dataset struct {
	Name    string   `json:"name" yaml:"name"`
	Headers []string `json:"headers" yaml:"headers"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

// New creates a dataset with the given name and headers.
func New(name string, headers []string) *Dataset {
	return &Dataset{
		Name:    name,
		Headers: headers,
	}
}

// Append adds a row to the dataset.
func (d *Dataset) Append(row Row) {
	d.Rows = append(d.Rows, row)
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// HasHeader reports whether the dataset declares the given header.
func (d *Dataset) HasHeader(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Validate checks the dataset invariants: a non-empty name, unique headers,
// and every row's keys a subset of the declared headers.
func (d *Dataset) Validate() error {
	if d.Name == "" {
		return errors.NewValidationError("name", d.Name, "dataset name is required")
	}

	seen := make(map[string]struct{}, len(d.Headers))
	for _, h := range d.Headers {
		if _, dup := seen[h]; dup {
			return errors.NewValidationError("headers", h, fmt.Sprintf("duplicate header %q", h))
		}
		seen[h] = struct{}{}
	}

	for i, row := range d.Rows {
		for key := range row {
			if _, ok := seen[key]; !ok {
				return errors.NewValidationError("rows", key,
					fmt.Sprintf("row %d references undeclared header %q", i, key))
			}
		}
	}

	return nil
}
