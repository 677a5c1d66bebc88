package web

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	forecaster "github.com/aouyang1/go-exportcast"
	"github.com/aouyang1/go-exportcast/horizon"
	"github.com/aouyang1/go-exportcast/ingest"
	"github.com/aouyang1/go-exportcast/internal/config"
	"github.com/aouyang1/go-exportcast/internal/log"
	"github.com/aouyang1/go-exportcast/internal/metrics"
	"github.com/aouyang1/go-exportcast/timedataset"
	"github.com/gofiber/fiber/v2"
)

// uploadedName names data resubmitted without its original file name
const uploadedName = "upload.csv"

var (
	ErrMissingFile = errors.New("a data file is required")
	ErrMissingDate = errors.New("a target date is required")
	ErrNoData      = errors.New("request has no observations")
)

// Handler contains all HTTP handlers
type Handler struct {
	logger  *log.Logger
	metrics *metrics.Metrics

	ingestOpt   *ingest.Options
	forecastOpt *forecaster.Options
}

// NewHandler creates a new handler using the column, sheet and model settings of cfg
func NewHandler(cfg *config.Config, logger *log.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:    logger.WithComponent(log.ComponentPipeline),
		metrics:   m,
		ingestOpt: cfg.IngestOptions(),
		forecastOpt: &forecaster.Options{
			ArimaOptions: cfg.ArimaOptions(),
		},
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": appName,
	})
}

// Index renders the upload form
func (h *Handler) Index(c *fiber.Ctx) error {
	return renderIndex(c, fiber.StatusOK, indexData{})
}

// Upload reads the data file and renders its first months with the date picker bounded by
// the last observed month
func (h *Handler) Upload(c *fiber.Ctx) error {
	date := c.FormValue("date")

	td, source, err := h.uploadedDataset(c)
	if err != nil {
		return formError(c, indexData{Date: date}, err)
	}
	page, err := previewData(td, source, h.ingestOpt)
	if err != nil {
		return err
	}
	page.Date = date

	h.logger.InfoContext(c.Context(), "data uploaded",
		log.FieldRequestID, requestID(c),
		log.FieldFile, source,
		log.FieldObservations, td.Len(),
		log.FieldLastMonth, page.LastMonth,
	)
	return renderIndex(c, fiber.StatusOK, page)
}

// ForecastForm reads the uploaded file, or the data carried over from Upload, and the target
// date of the form and responds with the forecast chart. Any failure re-renders the form
// with the message.
func (h *Handler) ForecastForm(c *fiber.Ctx) error {
	date := c.FormValue("date")

	td, source, err := h.uploadedDataset(c)
	if err != nil {
		return formError(c, indexData{Date: date}, err)
	}
	page, err := previewData(td, source, h.ingestOpt)
	if err != nil {
		return err
	}
	page.Date = date

	if date == "" {
		return formError(c, page, ErrMissingDate)
	}
	target, err := ingest.ParseMonth(date, h.ingestOpt)
	if err != nil {
		return formError(c, page, fmt.Errorf("target date, %w", err))
	}

	res, f, err := h.forecast(c.Context(), requestID(c), td, target, source)
	if err != nil {
		return formError(c, page, err)
	}

	c.Type("html", "utf-8")
	return f.PlotForecast(c, res)
}

func formError(c *fiber.Ctx, page indexData, err error) error {
	kind := classify(err)
	page.Message = userMessage(err, kind)
	page.Failed = true
	return renderIndex(c, formStatus(kind), page)
}

// uploadedDataset normalizes the file part of the form. Without a file the csv carried over
// from a previous upload is used.
func (h *Handler) uploadedDataset(c *fiber.Ctx) (*timedataset.TimeDataset, string, error) {
	if fh, err := c.FormFile("file"); err == nil && fh.Filename != "" {
		file, err := fh.Open()
		if err != nil {
			return nil, "", fmt.Errorf("%v, %w", err, ingest.ErrReadTable)
		}
		defer file.Close()

		tbl, err := ingest.Read(file, fh.Filename, h.ingestOpt)
		if err != nil {
			return nil, "", err
		}
		td, err := ingest.Normalize(tbl, h.ingestOpt)
		if err != nil {
			return nil, "", err
		}
		return td, fh.Filename, nil
	}

	data := c.FormValue("data")
	if data == "" {
		return nil, "", ErrMissingFile
	}
	source := c.FormValue("filename")
	if source == "" {
		source = uploadedName
	}
	tbl, err := ingest.ReadCSV(strings.NewReader(data), h.ingestOpt)
	if err != nil {
		return nil, "", err
	}
	td, err := ingest.Normalize(tbl, h.ingestOpt)
	if err != nil {
		return nil, "", err
	}
	return td, source, nil
}

// ForecastAPI forecasts the observations of a json request
func (h *Handler) ForecastAPI(c *fiber.Ctx) error {
	var req ForecastRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid request body, %v", err))
	}

	td, target, err := req.parse(h.ingestOpt)
	if err == nil {
		var res *forecaster.Results
		var f *forecaster.Forecaster
		res, f, err = h.forecast(c.Context(), requestID(c), td, target, "api")
		if err == nil {
			resp := ForecastResponse{
				Success: true,
				Message: res.Message(),
				Result:  res,
			}
			if m, err := f.Model(); err == nil {
				resp.Model = &m
			}
			return c.JSON(resp)
		}
	}

	kind := classify(err)
	return c.Status(apiStatus(kind)).JSON(ErrorResponse{
		Error:   true,
		Kind:    kind.String(),
		Message: userMessage(err, kind),
	})
}

// forecast runs the pipeline for one request and records its outcome
func (h *Handler) forecast(ctx context.Context, reqID string, td *timedataset.TimeDataset, target time.Time, source string) (*forecaster.Results, *forecaster.Forecaster, error) {
	start := time.Now()
	res, f, err := forecaster.Run(td, target, h.forecastOpt)
	elapsed := time.Since(start)

	fields := log.NewFields().WithRequestID(reqID)
	fields[log.FieldFile] = source
	fields[log.FieldObservations] = td.Len()
	fields[log.FieldTarget] = target.Format(time.DateOnly)
	fields[log.FieldLastMonth] = td.LastMonth().Format(timedataset.MonthLayout)
	logger := h.logger.WithFields(fields)

	if err != nil {
		kind := forecaster.Kind(err)
		h.metrics.ObserveForecast(kind.String(), td.Len(), 0, elapsed)
		if kind == forecaster.KindValidation {
			logger.InfoContext(ctx, "forecast rejected", log.FieldErrorKind, kind.String(), log.FieldError, err.Error())
		} else {
			logger.Err(ctx, "forecast failed", err, log.FieldErrorKind, kind.String())
		}
		return nil, nil, err
	}

	h.metrics.ObserveForecast(metrics.OutcomeSuccess, td.Len(), res.Horizon, elapsed)
	logger.InfoContext(ctx, "forecast",
		log.FieldHorizon, res.Horizon,
		log.FieldForecast, res.Forecast,
		log.FieldDuration, elapsed.Milliseconds(),
	)
	return res, f, nil
}

// userMessage is the text shown to the user. A target inside the data always reads the
// same regardless of the context the error was wrapped with.
func userMessage(err error, kind forecaster.ErrorKind) string {
	if kind == forecaster.KindValidation {
		return horizon.ErrDateInData.Error()
	}
	return err.Error()
}

// classify extends forecaster.Kind with the errors of incomplete requests
func classify(err error) forecaster.ErrorKind {
	if errors.Is(err, ErrMissingFile) || errors.Is(err, ErrMissingDate) || errors.Is(err, ErrNoData) {
		return forecaster.KindInput
	}
	return forecaster.Kind(err)
}

// formStatus keeps a rejected target on 200 since the form renders it as a normal message
func formStatus(kind forecaster.ErrorKind) int {
	if kind == forecaster.KindValidation {
		return fiber.StatusOK
	}
	return apiStatus(kind)
}

func apiStatus(kind forecaster.ErrorKind) int {
	switch kind {
	case forecaster.KindInput:
		return fiber.StatusBadRequest
	case forecaster.KindValidation, forecaster.KindFit:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
