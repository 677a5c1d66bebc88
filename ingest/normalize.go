package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aouyang1/go-exportcast/timedataset"
	"github.com/xuri/excelize/v2"
)

// Normalize parses the month and value columns of tbl and indexes the values by month.
// Rows are used in file order: nothing is sorted, deduplicated or filled, so an irregular
// series is reported as an error by timedataset.NewMonthlyDataset.
func Normalize(tbl *Table, opt *Options) (*timedataset.TimeDataset, error) {
	opt = opt.withDefaults()

	monthIdx, err := tbl.ColumnIndex(opt.MonthColumn)
	if err != nil {
		return nil, err
	}
	valueIdx, err := tbl.ColumnIndex(opt.ValueColumn)
	if err != nil {
		return nil, err
	}

	layouts := opt.layouts()
	t := make([]time.Time, 0, len(tbl.Rows))
	y := make([]float64, 0, len(tbl.Rows))
	for i, row := range tbl.Rows {
		// spreadsheet row number counting the header as row 1
		rowNum := i + 2

		month, err := parseDate(cell(row, monthIdx), tbl.serialDates, layouts)
		if err != nil {
			return nil, fmt.Errorf("row %d column %q, %w", rowNum, opt.MonthColumn, err)
		}

		raw := cell(row, valueIdx)
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d column %q value %q, %w", rowNum, opt.ValueColumn, raw, ErrParseValue)
		}

		t = append(t, month)
		y = append(y, val)
	}

	td, err := timedataset.NewMonthlyDataset(t, y)
	if err != nil {
		return nil, fmt.Errorf("unable to index %q by month, %w", opt.MonthColumn, err)
	}
	return td, nil
}

func parseDate(s string, serialDates bool, layouts []string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty month, %w", ErrParseDate)
	}

	if serialDates {
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			t, err := excelize.ExcelDateToTime(serial, false)
			if err != nil {
				return time.Time{}, fmt.Errorf("serial %q, %v, %w", s, err, ErrParseDate)
			}
			return t, nil
		}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q, %w", s, ErrParseDate)
}

// ParseMonth parses a single date using the layouts of opt. It is used for target dates and
// for records that do not come from a file.
func ParseMonth(s string, opt *Options) (time.Time, error) {
	return parseDate(strings.TrimSpace(s), false, opt.withDefaults().layouts())
}
