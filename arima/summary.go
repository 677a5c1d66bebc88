package arima

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aouyang1/go-exportcast/util"
)

// Summary represents a serializeable view of a fitted model's coefficients and fit statistics
type Summary struct {
	Order          Order     `json:"order"`
	ARCoefficients []float64 `json:"ar_coefficients"`
	MACoefficients []float64 `json:"ma_coefficients"`
	Intercept      float64   `json:"intercept"`
	Sigma2         float64   `json:"sigma2"`
	LogLikelihood  float64   `json:"log_likelihood"`
	AIC            float64   `json:"aic"`
	BIC            float64   `json:"bic"`
	NObs           int       `json:"num_observations"`
	Iterations     int       `json:"iterations"`
	Converged      bool      `json:"converged"`
}

func (s Summary) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sModel: %s\n", prefix, util.IndentExpand(indent, 0), s.Order); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sObservations: %d    Iterations: %d    Converged: %t\n",
		prefix, util.IndentExpand(indent, 1),
		s.NObs, s.Iterations, s.Converged,
	); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sLogLik: %.3f    AIC: %.3f    BIC: %.3f    Sigma2: %.3f\n",
		prefix, util.IndentExpand(indent, 1),
		s.LogLikelihood, s.AIC, s.BIC, s.Sigma2,
	); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s%sCoefficients:\n", prefix, util.IndentExpand(indent, 0)); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sTerm\tValue\t\n", prefix, util.IndentExpand(indent, 1)); err != nil {
		return err
	}
	if s.Order.D == 0 {
		if _, err := fmt.Fprintf(tbl, "%s%sintercept\t%.3f\t\n", prefix, util.IndentExpand(indent, 1), s.Intercept); err != nil {
			return err
		}
	}
	for i, c := range s.ARCoefficients {
		if _, err := fmt.Fprintf(tbl, "%s%sar.L%d\t%.3f\t\n", prefix, util.IndentExpand(indent, 1), i+1, c); err != nil {
			return err
		}
	}
	for i, c := range s.MACoefficients {
		if _, err := fmt.Fprintf(tbl, "%s%sma.L%d\t%.3f\t\n", prefix, util.IndentExpand(indent, 1), i+1, c); err != nil {
			return err
		}
	}
	return tbl.Flush()
}
