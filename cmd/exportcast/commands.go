package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	forecaster "github.com/aouyang1/go-exportcast"
	"github.com/aouyang1/go-exportcast/horizon"
	"github.com/aouyang1/go-exportcast/ingest"
	"github.com/aouyang1/go-exportcast/internal/config"
	"github.com/aouyang1/go-exportcast/internal/log"
	"github.com/aouyang1/go-exportcast/internal/metrics"
	"github.com/aouyang1/go-exportcast/internal/web"
	"github.com/aouyang1/go-exportcast/timedataset"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// inputFlags are shared by every command that reads a data file
type inputFlags struct {
	file        string
	monthColumn string
	valueColumn string
	sheet       string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Spreadsheet (.xlsx, .xlsm) or csv file with the monthly series")
	cmd.Flags().StringVar(&f.monthColumn, "month-column", "", "Name of the month column (default from MONTH_COLUMN or "+ingest.DefaultMonthColumn+")")
	cmd.Flags().StringVar(&f.valueColumn, "value-column", "", "Name of the value column (default from VALUE_COLUMN or "+ingest.DefaultValueColumn+")")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Workbook sheet to read (default the first sheet)")
	_ = cmd.MarkFlagRequired("file")
}

// apply overrides the configuration with the flags that were set
func (f *inputFlags) apply(cfg *config.Config) {
	if f.monthColumn != "" {
		cfg.MonthColumn = f.monthColumn
	}
	if f.valueColumn != "" {
		cfg.ValueColumn = f.valueColumn
	}
	if f.sheet != "" {
		cfg.SheetName = f.sheet
	}
}

// read loads and normalizes the data file
func (f *inputFlags) read(cfg *config.Config) (*timedataset.TimeDataset, error) {
	opt := cfg.IngestOptions()
	tbl, err := ingest.ReadFile(f.file, opt)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s, %w", f.file, err)
	}
	td, err := ingest.Normalize(tbl, opt)
	if err != nil {
		return nil, fmt.Errorf("unable to normalize %s, %w", f.file, err)
	}
	return td, nil
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "exportcast",
		Short: "Forecast monthly coffee export totals with an ARIMA(1,1,1) model",
		Long: `Reads a monthly series of export totals from a spreadsheet or csv file, fits an
ARIMA(1,1,1) model and forecasts the total for a month after the last observation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides LOG_LEVEL")

	loadConfig := func() *config.Config {
		cfg := config.Load()
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		return cfg
	}

	rootCmd.AddCommand(predictCmd(loadConfig))
	rootCmd.AddCommand(normalizeCmd(loadConfig))
	rootCmd.AddCommand(serveCmd(loadConfig))
	return rootCmd
}

type configLoader func() *config.Config

// predictCmd forecasts a single month
func predictCmd(loadConfig configLoader) *cobra.Command {
	var (
		input         inputFlags
		date          string
		plotPath      string
		asJSON        bool
		summary       bool
		maxIterations int
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Forecast the total for a target month",
		Long: `Forecasts the total of the month containing --date. The date must fall after the
last month of the data, otherwise the message "the entered date is already present in the
data" is printed and the command fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			input.apply(cfg)
			if maxIterations > 0 {
				cfg.MaxIterations = maxIterations
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := cfg.Logger(log.ComponentCLI)

			target, err := ingest.ParseMonth(date, cfg.IngestOptions())
			if err != nil {
				return fmt.Errorf("invalid --date, %w", err)
			}
			td, err := input.read(cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			res, f, err := forecaster.Run(td, target, &forecaster.Options{ArimaOptions: cfg.ArimaOptions()})
			if err != nil {
				kind := forecaster.Kind(err)
				logger.Debug("forecast failed",
					log.FieldErrorKind, kind.String(),
					log.FieldError, err.Error(),
					log.FieldObservations, td.Len(),
				)
				if kind == forecaster.KindValidation {
					fmt.Fprintln(cmd.OutOrStdout(), horizon.ErrDateInData.Error())
				}
				return err
			}
			logger.Info("forecast",
				log.FieldFile, input.file,
				log.FieldObservations, td.Len(),
				log.FieldHorizon, res.Horizon,
				log.FieldDuration, time.Since(start).Milliseconds(),
			)

			out := cmd.OutOrStdout()
			if asJSON {
				resp := web.ForecastResponse{
					Success: true,
					Message: res.Message(),
					Result:  res,
				}
				if m, err := f.Model(); err == nil {
					resp.Model = &m
				}
				b, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out, string(b)); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintln(out, res.Message()); err != nil {
				return err
			}

			if summary {
				m, err := f.Model()
				if err != nil {
					return err
				}
				if err := m.TablePrint(cmd.ErrOrStderr()); err != nil {
					return err
				}
			}

			if plotPath != "" {
				file, err := os.Create(plotPath)
				if err != nil {
					return err
				}
				defer file.Close()
				if err := f.PlotForecast(file, res); err != nil {
					return fmt.Errorf("unable to plot forecast, %w", err)
				}
				logger.Info("wrote forecast chart", log.FieldFile, plotPath)
			}
			return nil
		},
	}

	input.register(cmd)
	cmd.Flags().StringVarP(&date, "date", "d", "", "Target date (YYYY-MM-DD or YYYY-MM)")
	cmd.Flags().StringVar(&plotPath, "plot", "", "Write an html chart of the forecast to this path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as json")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print the fitted model summary to stderr")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "Optimiser iteration limit, overrides MAX_ITERATIONS")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

// normalizeCmd prints the monthly series as read from the data file
func normalizeCmd(loadConfig configLoader) *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the monthly series of a data file as csv",
		Long: `Reads the data file, indexes it by month and prints the result as csv with the
month column first. Irregular series (gaps, duplicates, unordered months) fail.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			input.apply(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			td, err := input.read(cfg)
			if err != nil {
				return err
			}
			return ingest.WriteCSV(cmd.OutOrStdout(), td, cfg.IngestOptions())
		},
	}
	input.register(cmd)
	return cmd
}

// serveCmd runs the http server until interrupted
func serveCmd(loadConfig configLoader) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the forecast form and json api",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if port != "" {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := cfg.Logger(log.ComponentApp)
			log.SetDefault(logger)

			srv := web.New(cfg, logger, metrics.New())

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Listen()
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-errCh:
				return fmt.Errorf("server error, %w", err)
			case <-quit:
			}

			if err := srv.Shutdown(shutdownTimeout); err != nil {
				return fmt.Errorf("server forced to shutdown, %w", err)
			}
			logger.Info("server exited gracefully")
			return nil
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on, overrides PORT")
	return cmd
}
