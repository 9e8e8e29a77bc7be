// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clocktest

import (
	"sync"
	"time"

	"github.com/xmidt-org/petcare/clock"
)

// Fake is a clock.Interface whose time only moves when test code calls Add or Sleep.
// Timers, tickers, and AfterFunc callbacks fire synchronously from within Add, in deadline
// order, so tests observe their effects as soon as Add returns.
//
// A timer whose deadline is not after the current time fires on the next call to Add, including Add(0).
type Fake struct {
	lock    sync.Mutex
	now     time.Time
	nextID  uint64
	waiters []*fakeTimer
}

var _ clock.Interface = (*Fake)(nil)

// NewFake creates a Fake clock positioned at the given instant
func NewFake(start time.Time) *Fake {
	return &Fake{
		now: start,
	}
}

func (f *Fake) Now() time.Time {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.now
}

func (f *Fake) Since(t time.Time) time.Duration {
	return f.Now().Sub(t)
}

// Sleep advances this clock by d rather than blocking
func (f *Fake) Sleep(d time.Duration) {
	f.Add(d)
}

func (f *Fake) NewTimer(d time.Duration) clock.Timer {
	return f.schedule(d, 0, nil)
}

func (f *Fake) NewTicker(d time.Duration) clock.Ticker {
	if d <= 0 {
		panic("non-positive interval for NewTicker")
	}

	return fakeTicker{f.schedule(d, d, nil)}
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) clock.Timer {
	return f.schedule(d, 0, fn)
}

// Pending returns the number of timers, tickers, and AfterFunc callbacks that have yet to fire
func (f *Fake) Pending() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.waiters)
}

// Add moves this clock forward by d, firing everything that comes due along the way.
// The new current time is returned.
func (f *Fake) Add(d time.Duration) time.Time {
	f.lock.Lock()
	target := f.now.Add(d)
	f.lock.Unlock()

	for {
		f.lock.Lock()
		next := f.nextDue(target)
		if next == nil {
			f.now = target
			f.lock.Unlock()
			return target
		}

		if next.when.After(f.now) {
			f.now = next.when
		}

		if next.period > 0 {
			next.when = next.when.Add(next.period)
		} else {
			f.remove(next)
		}

		now := f.now
		f.lock.Unlock()

		if next.fn != nil {
			next.fn()
		} else {
			select {
			case next.c <- now:
			default:
			}
		}
	}
}

func (f *Fake) schedule(d, period time.Duration, fn func()) *fakeTimer {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.nextID++
	t := &fakeTimer{
		fake:   f,
		id:     f.nextID,
		when:   f.now.Add(d),
		period: period,
		fn:     fn,
	}

	if fn == nil {
		t.c = make(chan time.Time, 1)
	}

	f.waiters = append(f.waiters, t)
	return t
}

// nextDue returns the earliest waiter due at or before target.  Ties go to the waiter
// scheduled first.  Must be called under the lock.
func (f *Fake) nextDue(target time.Time) *fakeTimer {
	var next *fakeTimer
	for _, t := range f.waiters {
		if t.when.After(target) {
			continue
		}

		if next == nil || t.when.Before(next.when) || (t.when.Equal(next.when) && t.id < next.id) {
			next = t
		}
	}

	return next
}

// remove drops a waiter, returning true if it was active.  Must be called under the lock.
func (f *Fake) remove(t *fakeTimer) bool {
	for i, candidate := range f.waiters {
		if candidate == t {
			f.waiters = append(f.waiters[:i], f.waiters[i+1:]...)
			return true
		}
	}

	return false
}

type fakeTimer struct {
	fake   *Fake
	id     uint64
	when   time.Time
	period time.Duration
	c      chan time.Time
	fn     func()
}

func (t *fakeTimer) C() <-chan time.Time {
	return t.c
}

func (t *fakeTimer) Reset(d time.Duration) bool {
	t.fake.lock.Lock()
	defer t.fake.lock.Unlock()

	active := t.fake.remove(t)
	t.when = t.fake.now.Add(d)
	t.fake.waiters = append(t.fake.waiters, t)
	return active
}

func (t *fakeTimer) Stop() bool {
	t.fake.lock.Lock()
	defer t.fake.lock.Unlock()
	return t.fake.remove(t)
}

type fakeTicker struct {
	*fakeTimer
}

func (ft fakeTicker) Stop() {
	ft.fakeTimer.Stop()
}
