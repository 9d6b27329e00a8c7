package loader

import (
	"github.com/xuri/excelize/v2"

	"github.com/tabwork/sheetrecon/pkg/datasets"
	"github.com/tabwork/sheetrecon/pkg/errors"
)

// LoadXLSX reads every worksheet of a workbook into its own dataset, keeping
// the workbook's sheet order.
func LoadXLSX(path string) ([]*datasets.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	defer f.Close()

	var out []*datasets.Dataset
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, errors.WrapParse("xlsx", path+"/"+sheet, err)
		}
		out = append(out, fromRows(sheet, rows))
	}
	return out, nil
}
