// Package config loads the runtime configuration of the exportcast commands from the
// environment. A .env file in the working directory is read first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aouyang1/go-exportcast/arima"
	"github.com/aouyang1/go-exportcast/ingest"
	"github.com/aouyang1/go-exportcast/internal/log"
	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "8080"
	DefaultMaxUploadBytes = 10 << 20
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 60 * time.Second
)

type Config struct {
	// HTTP Server
	Port           string
	MaxUploadBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// Input
	MonthColumn string
	ValueColumn string
	SheetName   string

	// Model
	MaxIterations int

	// malformed environment values found by Load, reported by Validate
	envErrors []string
}

// Load reads the configuration from the environment after loading an optional .env file
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		Port: getEnv("PORT", DefaultPort),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		MonthColumn: getEnv("MONTH_COLUMN", ingest.DefaultMonthColumn),
		ValueColumn: getEnv("VALUE_COLUMN", ingest.DefaultValueColumn),
		SheetName:   getEnv("SHEET_NAME", ""),
	}
	c.MaxUploadBytes = c.getEnvInt("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)
	c.ReadTimeout = c.getEnvDuration("READ_TIMEOUT", DefaultReadTimeout)
	c.WriteTimeout = c.getEnvDuration("WRITE_TIMEOUT", DefaultWriteTimeout)
	c.MaxIterations = c.getEnvInt("MAX_ITERATIONS", arima.DefaultMaxIterations)
	return c
}

// Validate validates the configuration and returns an error listing every problem found
func (c *Config) Validate() error {
	errors := append([]string(nil), c.envErrors...)

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.MaxUploadBytes < 1 {
		errors = append(errors, fmt.Sprintf("invalid max upload bytes %d: must be positive", c.MaxUploadBytes))
	}
	if c.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid read timeout %v: must be positive", c.ReadTimeout))
	}
	if c.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid write timeout %v: must be positive", c.WriteTimeout))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of [text json]", c.LogFormat))
	}

	if strings.TrimSpace(c.MonthColumn) == "" {
		errors = append(errors, "month column cannot be empty")
	}
	if strings.TrimSpace(c.ValueColumn) == "" {
		errors = append(errors, "value column cannot be empty")
	}

	if c.MaxIterations < 1 {
		errors = append(errors, fmt.Sprintf("invalid max iterations %d: must be at least 1", c.MaxIterations))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// IngestOptions returns the reader options described by the configuration
func (c *Config) IngestOptions() *ingest.Options {
	opt := ingest.NewDefaultOptions()
	opt.MonthColumn = c.MonthColumn
	opt.ValueColumn = c.ValueColumn
	opt.Sheet = c.SheetName
	return opt
}

// ArimaOptions returns the ARIMA(1,1,1) options with the configured iteration limit
func (c *Config) ArimaOptions() *arima.Options {
	opt := arima.NewDefaultOptions()
	opt.MaxIterations = c.MaxIterations
	return opt
}

// Logger builds the application logger for the configured level and format
func (c *Config) Logger(component string) *log.Logger {
	level, _ := log.ParseLevel(c.LogLevel)
	return log.New(log.Config{
		Level:     level,
		Component: component,
		Output:    os.Stderr,
		JSON:      c.LogFormat == "json",
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt keeps the default for a malformed value and records it for Validate
func (c *Config) getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		c.envErrors = append(c.envErrors, fmt.Sprintf("invalid %s '%s': must be an integer", key, value))
		return defaultValue
	}
	return i
}

func (c *Config) getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		c.envErrors = append(c.envErrors, fmt.Sprintf("invalid %s '%s': must be a duration such as 30s", key, value))
		return defaultValue
	}
	return d
}
