package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/blindcube/detect"
	"github.com/katalvlaran/blindcube/internal/config"
	"github.com/katalvlaran/blindcube/metrics"
)

// app carries the state shared by every subcommand after the root
// PersistentPreRunE has run.
type app struct {
	out, errOut io.Writer

	configPath string
	logLevel   string
	noColor    bool

	cfg       config.Config
	log       *logrus.Logger
	registry  *prometheus.Registry
	collector *metrics.Collector
	server    *http.Server
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "blindcube",
		Short:         "Fixed-buffer blindfolded solving and mistake detection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "override log.level")
	pf.BoolVar(&a.noColor, "no-color", false, "disable terminal styling")

	root.AddCommand(
		newSolveCmd(a),
		newDetectCmd(a),
		newTranslateCmd(a),
		newExpandCmd(a),
	)

	return root
}

// setup loads config, builds the logger and the metrics collector, and
// starts the metrics endpoint when an address is configured.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	if a.noColor {
		cfg.Color = false
	}
	a.cfg = cfg

	if a.log, err = cfg.Log.NewLogger(a.errOut); err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	if a.collector, err = metrics.NewCollector(a.registry, cfg.Metrics.Namespace); err != nil {
		return err
	}

	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
		a.server = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.WithError(err).Warn("metrics: server stopped")
			}
		}()
		a.log.WithField("addr", cfg.Metrics.Addr).Info("metrics: serving /metrics")
	}

	return nil
}

func (a *app) teardown() error {
	if a.cfg.Metrics.Dump {
		if err := metrics.WriteText(a.errOut, a.registry); err != nil {
			return err
		}
	}
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("metrics: shutdown: %w", err)
		}
	}

	return nil
}

// detectOptions maps config onto detector options.
func (a *app) detectOptions() []detect.Option {
	opts := []detect.Option{
		detect.WithLogger(a.log),
		detect.WithObserver(a.collector),
		detect.WithWorkers(a.cfg.Search.Workers),
		detect.WithDistance2(a.cfg.Search.MaxDistance >= 2),
	}
	if a.cfg.Search.SwapInspection {
		opts = append(opts, detect.WithSwapInspection())
	}

	return opts
}
