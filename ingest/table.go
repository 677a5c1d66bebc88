// Package ingest reads tabular uploads and normalizes them into a monthly time dataset
package ingest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrReadTable         = errors.New("unable to read table")
	ErrEmptyTable        = errors.New("table has no header row")
	ErrMissingColumn     = errors.New("required column not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrParseDate         = errors.New("unable to parse month as a date")
	ErrParseValue        = errors.New("unable to parse value as a number")
)

// Table is a header row and its data rows as read from a file. Rows may be shorter than
// the header when trailing cells are empty.
type Table struct {
	Header []string
	Rows   [][]string

	// serialDates is set when numeric month cells are Excel serial dates
	serialDates bool
}

// ColumnIndex returns the position of the named column ignoring surrounding whitespace
func (t *Table) ColumnIndex(name string) (int, error) {
	if t == nil || len(t.Header) == 0 {
		return -1, ErrEmptyTable
	}
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%q in header %q, %w", name, t.Header, ErrMissingColumn)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func newTable(records [][]string, serialDates bool) (*Table, error) {
	for len(records) > 0 && isBlank(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	rows := make([][]string, 0, len(records)-1)
	for _, r := range records[1:] {
		if isBlank(r) {
			continue
		}
		rows = append(rows, r)
	}
	return &Table{
		Header:      records[0],
		Rows:        rows,
		serialDates: serialDates,
	}, nil
}
