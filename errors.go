package forecaster

import (
	"errors"

	"github.com/aouyang1/go-exportcast/arima"
	"github.com/aouyang1/go-exportcast/horizon"
	"github.com/aouyang1/go-exportcast/ingest"
	"github.com/aouyang1/go-exportcast/timedataset"
)

var (
	ErrUntrainedForecaster = errors.New("forecaster has not been fit")
	ErrHorizonMismatch     = errors.New("forecast length does not match horizon")
)

// ErrorKind groups pipeline errors by how a caller should report them
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInput
	KindValidation
	KindFit
)

func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindValidation:
		return "validation"
	case KindFit:
		return "fit"
	default:
		return "unknown"
	}
}

var (
	inputErrors = []error{
		ingest.ErrReadTable,
		ingest.ErrEmptyTable,
		ingest.ErrMissingColumn,
		ingest.ErrUnsupportedFormat,
		ingest.ErrParseDate,
		ingest.ErrParseValue,
		timedataset.ErrNoTrainingData,
		timedataset.ErrNonMonotonic,
		timedataset.ErrDatasetLenMismatch,
		timedataset.ErrDuplicateMonth,
		timedataset.ErrMonthGap,
		timedataset.ErrNonFiniteValue,
	}
	fitErrors = []error{
		arima.ErrInvalidOrder,
		arima.ErrInsufficientData,
		arima.ErrConstantSeries,
		arima.ErrNonFiniteValue,
		arima.ErrFitFailed,
	}
)

// Kind classifies err. A target month already covered by the data is a validation failure
// rather than an error of the input file.
func Kind(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, horizon.ErrDateInData) {
		return KindValidation
	}
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return KindInput
		}
	}
	for _, target := range fitErrors {
		if errors.Is(err, target) {
			return KindFit
		}
	}
	return KindUnknown
}
