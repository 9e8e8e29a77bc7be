// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/viper"
	"github.com/xmidt-org/petcare/clock"
	"github.com/xmidt-org/petcare/health"
	"github.com/xmidt-org/petcare/logging"
	"github.com/xmidt-org/petcare/server"
	"github.com/xmidt-org/petcare/xhttp"
	"github.com/xmidt-org/petcare/xmetrics"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const (
	MetricsRoute = "/metrics"

	startTimeout = 15 * time.Second
	stopTimeout  = 30 * time.Second
)

func provideLogger(cfg *Config) (*zap.Logger, zap.AtomicLevel) {
	return logging.New(&cfg.Log)
}

func provideRegistry(cfg *Config) (xmetrics.Registry, error) {
	return xmetrics.NewRegistry(&cfg.Metrics, health.Metrics)
}

func newService(cfg *Config, logger *zap.Logger, c clock.Interface, measures *health.Measures) *health.Service {
	return health.New(
		cfg.API.BaseURL,
		health.WithClient(xhttp.NewClient(cfg.API.ClientOptions())),
		health.WithHealthPath(cfg.API.HealthPath),
		health.WithTimeout(cfg.API.Timeout),
		health.WithLogger(logger),
		health.WithClock(c),
		health.WithMeasures(measures),
	)
}

func provideService(cfg *Config, logger *zap.Logger, c clock.Interface, r xmetrics.Registry) *health.Service {
	return newService(cfg, logger, c, health.NewMeasures(r))
}

func provideRouter(cfg *Config, logger *zap.Logger, s *health.Service, r xmetrics.Registry) *mux.Router {
	return server.NewRouter(
		logger,
		cfg.Server.RequestTimeout,
		health.NewHandler(s, nil),
		server.RegistrarFunc(func(router *mux.Router) {
			router.Handle(MetricsRoute, xmetrics.Handler(r)).Methods(http.MethodGet)
		}),
	)
}

func provideServer(cfg *Config, router *mux.Router, logger *zap.Logger) (*http.Server, server.Options) {
	return server.New(cfg.Server, router, logger), cfg.Server
}

// appOptions wires the long running application
func appOptions(v *viper.Viper, cfg *Config) fx.Option {
	return fx.Options(
		fx.Supply(v, cfg),
		fx.Provide(
			clock.System,
			provideLogger,
			provideRegistry,
			provideService,
			provideRouter,
			provideServer,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Invoke(
			server.Lifecycle,
			watchConfig,
		),
	)
}

// check runs one health check and writes the report.  The exit code is 0 only for a healthy report.
func check(cfg *Config, output io.Writer) int {
	logger, _ := logging.New(&cfg.Log)
	defer logger.Sync()

	report := newService(cfg, logger, clock.System(), nil).CheckHealth(context.Background())
	if err := report.Encode(output); err != nil {
		logger.Error("unable to write report", zap.Error(err))
		return 2
	}

	fmt.Fprintln(output)
	if !report.Healthy() {
		return 1
	}

	return 0
}

func run(arguments []string, output io.Writer) int {
	v, cfg, err := loadConfig(newFlagSet(), arguments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 2
	}

	if v.GetBool(CheckFlag) {
		return check(cfg, output)
	}

	var logger *zap.Logger
	app := fx.New(
		appOptions(v, cfg),
		fx.Populate(&logger),
	)

	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create application: %s\n", err)
		return 1
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		logger.Error("unable to start application", zap.Error(err))
		return 1
	}

	s := server.SignalWait(logger, app.Done(), os.Interrupt, syscall.SIGTERM)
	logger.Info("exiting", zap.Any("signal", s))

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Error("unable to stop application cleanly", zap.Error(err))
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
