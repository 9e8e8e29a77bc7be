// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewErrorLog creates a log.Logger appropriate for http.Server.ErrorLog.  Output goes to
// the zap logger at error level.
func NewErrorLog(serverName string, logger *zap.Logger) *log.Logger {
	logger = logger.With(zap.String("server", serverName))
	errorLog, err := zap.NewStdLogAt(logger, zapcore.ErrorLevel)
	if err != nil {
		return zap.NewStdLog(logger)
	}

	return errorLog
}

// NewConnectionStateLogger produces a function appropriate for http.Server.ConnState.
// The returned function logs each state change at debug level.
func NewConnectionStateLogger(serverName string, logger *zap.Logger) func(net.Conn, http.ConnState) {
	return func(connection net.Conn, connectionState http.ConnState) {
		logger.Debug(
			"connection state change",
			zap.String("server", serverName),
			zap.String("localAddress", connection.LocalAddr().String()),
			zap.Stringer("state", connectionState),
		)
	}
}

// New creates an *http.Server from options.  The server is not started.
func New(o Options, handler http.Handler, logger *zap.Logger) *http.Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &http.Server{
		Addr:              o.address(),
		Handler:           handler,
		ReadTimeout:       o.ReadTimeout,
		ReadHeaderTimeout: o.readHeaderTimeout(),
		WriteTimeout:      o.WriteTimeout,
		IdleTimeout:       o.IdleTimeout,
		MaxHeaderBytes:    o.MaxHeaderBytes,
		ErrorLog:          NewErrorLog(o.name(), logger),
		ConnState:         NewConnectionStateLogger(o.name(), logger),
	}
}

// LifecycleIn holds the dependencies for binding a server to an application lifecycle
type LifecycleIn struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner `optional:"true"`
	Logger     *zap.Logger
	Options    Options
	Server     *http.Server
}

// Lifecycle appends hooks that start and gracefully stop a server.  The listener is opened in the
// start hook, so a bad address fails application startup.  Once listening, the server's Addr is
// updated with the actual address.  If the server later fails, the application is shut down.
func Lifecycle(in LifecycleIn) {
	var (
		s      = in.Server
		logger = in.Logger.With(zap.String("server", in.Options.name()))
	)

	in.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var lc net.ListenConfig
			l, err := lc.Listen(ctx, "tcp", s.Addr)
			if err != nil {
				return err
			}

			s.Addr = l.Addr().String()
			logger.Info("starting server", zap.String("address", s.Addr), zap.Bool("secure", in.Options.Secure()))

			go func() {
				var err error
				if in.Options.Secure() {
					err = s.ServeTLS(l, in.Options.CertificateFile, in.Options.KeyFile)
				} else {
					err = s.Serve(l)
				}

				if errors.Is(err, http.ErrServerClosed) {
					return
				}

				logger.Error("server exited", zap.Error(err))
				if in.Shutdowner != nil {
					in.Shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return s.Shutdown(ctx)
		},
	})
}
