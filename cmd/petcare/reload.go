// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/xmidt-org/petcare/clock"
	"github.com/xmidt-org/petcare/debounce"
	"github.com/xmidt-org/petcare/logging"
	"github.com/xmidt-org/petcare/xviper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// reloader reapplies the log level when the config file changes.  Each file event bumps a
// sequence number, and the debouncer only emits once the sequence has been stable for the
// quiet period, so a burst of writes produces a single reload.
type reloader struct {
	v         *viper.Viper
	level     zap.AtomicLevel
	logger    *zap.Logger
	sequence  atomic.Uint64
	debouncer *debounce.Debouncer[uint64]
	done      chan struct{}
}

func newReloader(v *viper.Viper, cfg *Config, level zap.AtomicLevel, logger *zap.Logger, c clock.Interface) *reloader {
	return &reloader{
		v:      v,
		level:  level,
		logger: logger,
		debouncer: debounce.New[uint64](
			0,
			cfg.Reload.QuietPeriod,
			debounce.WithClock(c),
			debounce.WithLogger(logger),
		),
		done: make(chan struct{}),
	}
}

// onChange is the viper callback for file events
func (r *reloader) onChange(e fsnotify.Event) {
	r.logger.Debug("configuration file event", zap.String("file", e.Name), zap.Stringer("op", e.Op))
	r.debouncer.Set(r.sequence.Add(1))
}

// run applies each debounced change until the debouncer is closed
func (r *reloader) run() {
	defer close(r.done)
	for range r.debouncer.Updates() {
		r.apply()
	}
}

func (r *reloader) apply() {
	o, err := logging.FromViper(logging.Sub(r.v))
	if err != nil {
		r.logger.Error("unable to reload logging configuration", zap.Error(err))
		return
	}

	level := logging.ParseLevel(o.Level)
	if level != r.level.Level() {
		r.logger.Info("changing log level", zap.Stringer("from", r.level.Level()), zap.Stringer("to", level))
		r.level.SetLevel(level)
	}
}

func (r *reloader) stop() {
	r.debouncer.Close()
	<-r.done
}

type watchIn struct {
	fx.In

	Lifecycle fx.Lifecycle
	Viper     *viper.Viper
	Config    *Config
	Level     zap.AtomicLevel
	Logger    *zap.Logger
	Clock     clock.Interface
}

// watchConfig starts watching the config file, if there is one
func watchConfig(in watchIn) {
	if len(in.Viper.ConfigFileUsed()) == 0 {
		in.Logger.Info("no configuration file, reloading disabled")
		return
	}

	r := newReloader(in.Viper, in.Config, in.Level, in.Logger, in.Clock)
	in.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go r.run()
			xviper.Watch(in.Viper, r.onChange)
			return nil
		},
		OnStop: func(context.Context) error {
			r.stop()
			return nil
		},
	})
}
