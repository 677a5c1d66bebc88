package forecaster

import (
	"fmt"
	"io"
	"time"

	"github.com/aouyang1/go-exportcast/arima"
	"github.com/aouyang1/go-exportcast/timedataset"
	"github.com/aouyang1/go-exportcast/util"
)

// Model represents a serializeable view of a fitted forecaster
type Model struct {
	TrainStartMonth time.Time      `json:"train_start_month"`
	TrainEndMonth   time.Time      `json:"train_end_month"`
	Options         *Options       `json:"options"`
	Arima           *arima.Summary `json:"arima"`
}

func (m Model) TablePrint(w io.Writer) error {
	prefix := ""
	indent := "  "

	if _, err := fmt.Fprintf(w, "%s%sForecaster:\n", prefix, util.IndentExpand(indent, 0)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sTraining Months: %s to %s\n",
		prefix, util.IndentExpand(indent, 1),
		m.TrainStartMonth.Format(timedataset.MonthLayout),
		m.TrainEndMonth.Format(timedataset.MonthLayout),
	); err != nil {
		return err
	}
	if m.Arima == nil {
		return nil
	}
	return m.Arima.TablePrint(w, prefix+util.IndentExpand(indent, 1), indent)
}
