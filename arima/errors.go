package arima

import "errors"

var (
	ErrUninitializedModel = errors.New("uninitialized arima model")
	ErrUntrainedModel     = errors.New("arima model has not been fit yet")
	ErrInvalidOrder       = errors.New("arima order terms must be non-negative")
	ErrInsufficientData   = errors.New("insufficient observations for arima order")
	ErrConstantSeries     = errors.New("series is constant")
	ErrNonFiniteValue     = errors.New("series contains NaN or infinite values")
	ErrFitFailed          = errors.New("unable to maximise arima likelihood")
	ErrInvalidSteps       = errors.New("forecast steps must be at least 1")
)
