// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/petcare/clock/clocktest"
	"go.uber.org/zap/zaptest"
)

var epoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestDebouncer[T comparable](t *testing.T, initial T, delay time.Duration) (*Debouncer[T], *clocktest.Fake) {
	f := clocktest.NewFake(epoch)
	d := New(initial, delay, WithClock(f), WithLogger(zaptest.NewLogger(t)))
	t.Cleanup(func() { d.Close() })
	return d, f
}

func testSetWaitsForDelay(t *testing.T) {
	var (
		assert = assert.New(t)
		d, f   = newTestDebouncer(t, "a", 200*time.Millisecond)
	)

	assert.Equal("a", d.Value())
	assert.Equal(200*time.Millisecond, d.Delay())

	d.Set("b")
	assert.Equal("b", d.Current())
	assert.True(d.Pending())

	f.Add(199 * time.Millisecond)
	assert.Equal("a", d.Value())
	assert.True(d.Pending())

	f.Add(time.Millisecond)
	assert.Equal("b", d.Value())
	assert.False(d.Pending())
	assert.Equal("b", <-d.Updates())
}

func testIntermediateValuesDropped(t *testing.T) {
	var (
		assert = assert.New(t)
		d, f   = newTestDebouncer(t, 1, 100*time.Millisecond)
	)

	d.Set(2)
	d.Set(3)
	assert.Equal(1, f.Pending())

	f.Add(99 * time.Millisecond)
	assert.Equal(1, d.Value())

	f.Add(time.Millisecond)
	assert.Equal(3, d.Value())

	select {
	case v := <-d.Updates():
		assert.Equal(3, v)
	default:
		assert.Fail("no update was emitted")
	}

	select {
	case v := <-d.Updates():
		assert.Failf("unexpected update", "value: %v", v)
	default:
	}
}

func testChangeRestartsWait(t *testing.T) {
	var (
		assert = assert.New(t)
		d, f   = newTestDebouncer(t, "", 100*time.Millisecond)
	)

	for _, v := range []string{"c", "ca", "cat", "cats"} {
		d.Set(v)
		f.Add(90 * time.Millisecond)
		assert.Equal("", d.Value())
		assert.Equal(1, f.Pending())
	}

	f.Add(10 * time.Millisecond)
	assert.Equal("cats", d.Value())
	assert.Zero(f.Pending())
}

func testSameValueIsIdempotent(t *testing.T) {
	var (
		assert = assert.New(t)
		d, f   = newTestDebouncer(t, "a", 100*time.Millisecond)
	)

	d.Set("a")
	assert.False(d.Pending())
	assert.Zero(f.Pending())

	d.Set("b")
	f.Add(60 * time.Millisecond)

	// resupplying the pending value must not push its deadline back
	d.Set("b")
	f.Add(40 * time.Millisecond)
	assert.Equal("b", d.Value())
	assert.Len(d.Updates(), 1)
}

func testZeroDelay(t *testing.T) {
	var (
		assert = assert.New(t)
		d, f   = newTestDebouncer(t, 0, 0)
	)

	d.Set(1)
	assert.Equal(1, d.Value())
	assert.False(d.Pending())
	assert.Zero(f.Pending())
	assert.Equal(1, <-d.Updates())

	n := New(0, -time.Second)
	defer n.Close()
	assert.Zero(n.Delay())
	n.Set(5)
	assert.Equal(5, n.Value())
}

func testSlowReaderSeesNewest(t *testing.T) {
	var (
		assert = assert.New(t)
		d, f   = newTestDebouncer(t, "", 10*time.Millisecond)
	)

	d.Set("first")
	f.Add(10 * time.Millisecond)
	d.Set("second")
	f.Add(10 * time.Millisecond)

	assert.Len(d.Updates(), 1)
	assert.Equal("second", <-d.Updates())
}

func testClose(t *testing.T) {
	var (
		assert = assert.New(t)
		d, f   = newTestDebouncer(t, "a", 100*time.Millisecond)
	)

	d.Set("b")
	assert.NoError(d.Close())
	assert.Zero(f.Pending())

	f.Add(time.Second)
	assert.Equal("a", d.Value())

	_, ok := <-d.Updates()
	assert.False(ok)

	d.Set("c")
	assert.Equal("b", d.Current())
	assert.NoError(d.Close())
}

func testSupersededCallbackDiscarded(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		c         = new(clocktest.Mock)
		first     = new(clocktest.MockTimer)
		second    = new(clocktest.MockTimer)
		callbacks []func()
	)

	c.OnAfterFunc(time.Second, first).Once().Run(func(args mock.Arguments) {
		callbacks = append(callbacks, args.Get(1).(func()))
	})

	c.OnAfterFunc(time.Second, second).Once().Run(func(args mock.Arguments) {
		callbacks = append(callbacks, args.Get(1).(func()))
	})

	// the first timer has already fired, so Stop reports false
	first.OnStop(false).Once()
	second.OnStop(true).Once()

	d := New("a", time.Second, WithClock(c))
	d.Set("b")
	d.Set("c")
	require.Len(callbacks, 2)

	// simulate the first timer firing after it was superseded
	callbacks[0]()
	assert.Equal("a", d.Value())
	assert.True(d.Pending())

	assert.NoError(d.Close())

	// a callback racing with Close emits nothing
	callbacks[1]()
	assert.Equal("a", d.Value())

	c.AssertExpectations(t)
	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func testSystemClock(t *testing.T) {
	var (
		assert = assert.New(t)
		d      = New("", 20*time.Millisecond)
	)

	defer d.Close()

	for _, v := range []string{"p", "pu", "pup"} {
		d.Set(v)
	}

	select {
	case v := <-d.Updates():
		assert.Equal("pup", v)
	case <-time.After(5 * time.Second):
		assert.Fail("no emission with the system clock")
	}
}

func TestDebouncer(t *testing.T) {
	t.Run("SetWaitsForDelay", testSetWaitsForDelay)
	t.Run("IntermediateValuesDropped", testIntermediateValuesDropped)
	t.Run("ChangeRestartsWait", testChangeRestartsWait)
	t.Run("SameValueIsIdempotent", testSameValueIsIdempotent)
	t.Run("ZeroDelay", testZeroDelay)
	t.Run("SlowReaderSeesNewest", testSlowReaderSeesNewest)
	t.Run("Close", testClose)
	t.Run("SupersededCallbackDiscarded", testSupersededCallbackDiscarded)
	t.Run("SystemClock", testSystemClock)
}
