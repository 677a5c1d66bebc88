package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads a sheet of an Excel workbook. Cells are read without number formatting so
// date cells arrive as serial numbers and are decoded by Normalize.
func ReadXLSX(r io.Reader, opt *Options) (*Table, error) {
	opt = opt.withDefaults()

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("workbook, %v, %w", err, ErrReadTable)
	}
	defer f.Close()

	sheet := opt.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyTable
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("sheet %q, %v, %w", sheet, err, ErrReadTable)
	}
	return newTable(rows, true)
}
