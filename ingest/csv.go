package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/aouyang1/go-exportcast/timedataset"
)

// ReadCSV reads a delimited file whose first non-blank record is the header
func ReadCSV(r io.Reader, opt *Options) (*Table, error) {
	opt = opt.withDefaults()

	reader := csv.NewReader(r)
	reader.Comma = opt.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv, %v, %w", err, ErrReadTable)
	}
	return newTable(records, false)
}

// WriteCSV writes a dataset using the configured column names, one row per month with the
// month rendered as its first day
func WriteCSV(w io.Writer, td *timedataset.TimeDataset, opt *Options) error {
	opt = opt.withDefaults()

	writer := csv.NewWriter(w)
	writer.Comma = opt.Delimiter
	if err := writer.Write([]string{opt.MonthColumn, opt.ValueColumn}); err != nil {
		return err
	}
	for i := 0; i < td.Len(); i++ {
		record := []string{
			td.T[i].Format("2006-01-02"),
			strconv.FormatFloat(td.Y[i], 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
