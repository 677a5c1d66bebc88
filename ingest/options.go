package ingest

import "time"

const (
	DefaultMonthColumn = "MES"
	DefaultValueColumn = "Total Exportaciones"
)

// DefaultDateLayouts are tried in order when a month cell is not an Excel serial date.
// Slashed dates are read month first.
var DefaultDateLayouts = []string{
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.DateOnly,
	"2006-01",
	"2006/01/02",
	"2006/01",
	"01/02/2006",
	"01/2006",
	"Jan 2006",
	"January 2006",
}

// Options describes where the month and value columns live in the input table
type Options struct {
	MonthColumn string `json:"month_column"`
	ValueColumn string `json:"value_column"`

	// Sheet selects the workbook sheet, the first sheet is used when empty
	Sheet string `json:"sheet"`

	// DateLayouts are tried before DefaultDateLayouts
	DateLayouts []string `json:"date_layouts"`

	// Delimiter separates csv fields, a comma is used when zero
	Delimiter rune `json:"delimiter"`
}

func NewDefaultOptions() *Options {
	return &Options{
		MonthColumn: DefaultMonthColumn,
		ValueColumn: DefaultValueColumn,
		Delimiter:   ',',
	}
}

func (o *Options) withDefaults() *Options {
	if o == nil {
		return NewDefaultOptions()
	}
	out := *o
	if out.MonthColumn == "" {
		out.MonthColumn = DefaultMonthColumn
	}
	if out.ValueColumn == "" {
		out.ValueColumn = DefaultValueColumn
	}
	if out.Delimiter == 0 {
		out.Delimiter = ','
	}
	return &out
}

func (o *Options) layouts() []string {
	layouts := make([]string, 0, len(o.DateLayouts)+len(DefaultDateLayouts))
	layouts = append(layouts, o.DateLayouts...)
	return append(layouts, DefaultDateLayouts...)
}
