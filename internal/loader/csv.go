package loader

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/tabwork/sheetrecon/pkg/datasets"
	"github.com/tabwork/sheetrecon/pkg/errors"
)

// LoadCSV reads a delimited-text file into a single dataset named after the
// file (without extension).
func LoadCSV(path string) (*datasets.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows are padded/truncated during normalization
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return fromRows(name, records), nil
}
