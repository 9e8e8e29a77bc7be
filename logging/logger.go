// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"

	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap Logger from a set of options.  The options object can be nil, in which case
// a logger that writes errors to os.Stdout is returned.
//
// The returned AtomicLevel controls the logger's level and can be changed at runtime, e.g. when the
// configuration file is reloaded.
func New(o *Options) (*zap.Logger, zap.AtomicLevel) {
	level := zap.NewAtomicLevelAt(o.level())
	core := zapcore.NewCore(o.encoder(), o.output(), level)
	return zap.New(core, zap.AddCaller()), level
}

// WithLogger adds the given Logger to the context so that it can be retrieved with GetLogger
func WithLogger(parent context.Context, logger *zap.Logger) context.Context {
	return sallust.With(parent, logger)
}

// GetLogger retrieves the logger associated with the context.  If no logger is
// present in the context, the sallust default logger is returned instead.
func GetLogger(ctx context.Context) *zap.Logger {
	return sallust.Get(ctx)
}
