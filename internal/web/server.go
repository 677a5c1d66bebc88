// Package web serves the forecast form, the JSON forecast api and the operational endpoints
// over fiber.
package web

import (
	"errors"
	"strconv"
	"time"

	"github.com/aouyang1/go-exportcast/internal/config"
	"github.com/aouyang1/go-exportcast/internal/log"
	"github.com/aouyang1/go-exportcast/internal/metrics"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const appName = "exportcast"

// Server owns the fiber app and the collaborators shared by every request
type Server struct {
	cfg     *config.Config
	logger  *log.Logger
	metrics *metrics.Metrics
	app     *fiber.App
}

// New builds the fiber app with its middleware and routes. A nil logger discards records
// and a nil metrics uses a fresh registry.
func New(cfg *config.Config, logger *log.Logger, m *metrics.Metrics) *Server {
	if logger == nil {
		logger = log.Discard()
	}
	if m == nil {
		m = metrics.New()
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger.WithComponent(log.ComponentHTTP),
		metrics: m,
	}
	s.app = fiber.New(fiber.Config{
		AppName:               appName,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		BodyLimit:             cfg.MaxUploadBytes,
		ErrorHandler:          s.errorHandler,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})

	s.app.Use(recover.New())
	s.app.Use(requestid.New())
	s.app.Use(s.observe)
	SetupRoutes(s.app, NewHandler(cfg, s.logger, m))
	return s
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured port until Shutdown is called
func (s *Server) Listen() error {
	s.logger.Info("server starting", "port", s.cfg.Port)
	return s.app.Listen(":" + s.cfg.Port)
}

// Shutdown stops accepting connections and waits up to timeout for in flight requests
func (s *Server) Shutdown(timeout time.Duration) error {
	s.logger.Info("shutting down server")
	return s.app.ShutdownWithTimeout(timeout)
}

// observe records latency and status of every request. Errors returned by handlers have
// not reached the error handler yet so their status is derived here.
func (s *Server) observe(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}
	}
	elapsed := time.Since(start)

	route := c.Route().Path
	s.metrics.ObserveRequest(route, strconv.Itoa(status), elapsed)
	s.logger.WithFields(
		log.NewFields().
			WithRequestID(requestID(c)).
			WithHTTPRequest(c.Method(), c.Path()).
			WithHTTPResponse(status, elapsed.Milliseconds()).
			WithError(err),
	).Debug("request")
	return err
}

// requestID returns the id the requestid middleware echoed on the response
func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		s.logger.Err(c.Context(), "unhandled error", err, log.FieldPath, c.Path())
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   true,
		Kind:    "http",
		Message: message,
	})
}
