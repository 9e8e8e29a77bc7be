// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Interface represents a clock with the same core functionality available as in the stdlib time package.
// Health checks use it to timestamp reports and measure round trips, and debouncers use it to
// schedule deferred emissions.
type Interface interface {
	Now() time.Time
	Since(time.Time) time.Duration
	Sleep(time.Duration)
	NewTicker(time.Duration) Ticker
	NewTimer(time.Duration) Timer

	// AfterFunc waits for the duration to elapse and then calls f in its own goroutine.
	// The returned Timer can be used to cancel the call using its Stop method.
	AfterFunc(time.Duration, func()) Timer
}

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

func (sc systemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (sc systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (sc systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

func (sc systemClock) NewTimer(d time.Duration) Timer {
	return systemTimer{time.NewTimer(d)}
}

func (sc systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return systemTimer{time.AfterFunc(d, f)}
}

// System returns a clock backed by the time package
func System() Interface {
	return systemClock{}
}
