// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package debounce

import (
	"sync"
	"time"

	"github.com/xmidt-org/petcare/clock"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Option represents a configuration option for a Debouncer
type Option func(*options)

type options struct {
	clock  clock.Interface
	logger *zap.Logger
}

// WithClock sets the clock used to schedule emissions.  If nil, clock.System() is used.
func WithClock(c clock.Interface) Option {
	return func(o *options) {
		if c == nil {
			o.clock = clock.System()
		} else {
			o.clock = c
		}
	}
}

// WithLogger sets the zap logger used for debug output.  If nil, the default logger is used.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			o.logger = sallust.Default()
		} else {
			o.logger = l
		}
	}
}

// Debouncer holds a value that only changes once its input has been stable for a delay.
// Each call to Set with a new input cancels any pending emission and restarts the wait.
//
// A Debouncer owns at most one pending timer.  Close releases it.  All methods are safe
// for concurrent use.
type Debouncer[T comparable] struct {
	delay  time.Duration
	clock  clock.Interface
	logger *zap.Logger

	lock       sync.Mutex
	current    T
	emitted    T
	generation uint64
	timer      clock.Timer
	closed     bool
	updates    chan T
}

// New creates a Debouncer whose emitted value starts at initial.  A nonpositive delay
// causes Set to emit synchronously.
func New[T comparable](initial T, delay time.Duration, o ...Option) *Debouncer[T] {
	opts := options{
		clock:  clock.System(),
		logger: sallust.Default(),
	}

	for _, f := range o {
		f(&opts)
	}

	if delay < 0 {
		delay = 0
	}

	return &Debouncer[T]{
		delay:   delay,
		clock:   opts.clock,
		logger:  opts.logger,
		current: initial,
		emitted: initial,
		updates: make(chan T, 1),
	}
}

// Delay returns the quiet period this Debouncer waits for
func (d *Debouncer[T]) Delay() time.Duration {
	return d.delay
}

// Set supplies a new input.  Supplying the input that is already current has no effect:
// the pending emission, if any, keeps its original deadline.
func (d *Debouncer[T]) Set(v T) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed || v == d.current {
		return
	}

	d.current = v
	d.generation++
	d.stopTimer()

	if d.delay == 0 {
		d.emit(v)
		return
	}

	generation := d.generation
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.fire(generation)
	})
}

// fire is the timer callback.  A callback whose generation has been superseded by a later Set,
// or that raced with Close, is discarded.
func (d *Debouncer[T]) fire(generation uint64) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed || generation != d.generation {
		d.logger.Debug("discarding superseded debounce emission", zap.Uint64("generation", generation))
		return
	}

	d.timer = nil
	d.emit(d.current)
}

// emit must be called under the lock
func (d *Debouncer[T]) emit(v T) {
	d.emitted = v

	// the updates channel holds at most the newest value
	select {
	case <-d.updates:
	default:
	}

	d.updates <- v
}

// stopTimer must be called under the lock
func (d *Debouncer[T]) stopTimer() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Value returns the most recently emitted value
func (d *Debouncer[T]) Value() T {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.emitted
}

// Current returns the most recently supplied input, which may not have been emitted yet
func (d *Debouncer[T]) Current() T {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.current
}

// Pending tests if an emission is scheduled
func (d *Debouncer[T]) Pending() bool {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.timer != nil
}

// Updates returns a channel that receives each emitted value.  The channel buffers only the
// newest emission, so a slow reader skips values rather than blocking the Debouncer.
// The channel is closed by Close.
func (d *Debouncer[T]) Updates() <-chan T {
	return d.updates
}

// Close cancels any pending emission and closes the Updates channel.  Subsequent calls to Set
// are ignored.  This method is idempotent.
func (d *Debouncer[T]) Close() error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed {
		return nil
	}

	d.closed = true
	d.generation++
	d.stopTimer()
	close(d.updates)
	return nil
}
