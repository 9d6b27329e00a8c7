// Package loader reads spreadsheet and delimited-text files into normalized
// datasets. It is the normalization collaborator in front of the comparison
// engine: header cells and values are trimmed here so the engine never sees
// raw cells.
package loader

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tabwork/sheetrecon/pkg/datasets"
	"github.com/tabwork/sheetrecon/pkg/errors"
)

// Load reads a file into one dataset per worksheet, dispatching on the file
// extension. CSV files yield a single worksheet named after the file.
func Load(path string) ([]*datasets.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		ds, err := LoadCSV(path)
		if err != nil {
			return nil, err
		}
		return []*datasets.Dataset{ds}, nil
	case ".xlsx", ".xlsm":
		return LoadXLSX(path)
	default:
		return nil, errors.NewValidationError("path", path, "unsupported file type")
	}
}

// fromRows converts a raw [][]string table into a dataset. The first record
// is the header row; short data rows are padded with empty values and long
// ones are truncated to the header width.
func fromRows(name string, records [][]string) *datasets.Dataset {
	ds := datasets.New(name, nil)
	if len(records) == 0 {
		return ds
	}

	headers := make([]string, 0, len(records[0]))
	seen := make(map[string]bool, len(records[0]))
	for _, h := range records[0] {
		h = strings.TrimSpace(h)
		// Deduplicate repeated header names so row keys stay unique.
		base := h
		for i := 2; seen[h]; i++ {
			h = base + "_" + strconv.Itoa(i)
		}
		seen[h] = true
		headers = append(headers, h)
	}
	ds.Headers = headers

	for _, record := range records[1:] {
		row := make(datasets.Row, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			} else {
				row[h] = ""
			}
		}
		ds.Append(row)
	}
	return ds
}
