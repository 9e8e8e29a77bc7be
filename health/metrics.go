// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/petcare/xmetrics"
)

// Metric names
const (
	CheckCounter  = "health_check_count"
	CheckDuration = "health_check_duration_seconds"
)

// Metric label names
const (
	CheckLabel   = "check"
	OutcomeLabel = "outcome"
	ReasonLabel  = "reason"
)

// Label values
const (
	LivenessCheck  = "liveness"
	ReadinessCheck = "readiness"
	HealthCheck    = "health"

	SuccessOutcome = "success"
	FailureOutcome = "failure"

	NoReason        = "none"
	TimeoutReason   = "timeout"
	TransportReason = "transport"
	StatusReason    = "status"
	BodyReason      = "body"
	ProbeReason     = "probe"
	RequestReason   = "request"
)

// Metrics is the xmetrics module for this package
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       CheckCounter,
			Type:       xmetrics.CounterType,
			Help:       "The number of health checks performed, by check type and outcome",
			LabelNames: []string{CheckLabel, OutcomeLabel, ReasonLabel},
		},
		{
			Name:       CheckDuration,
			Type:       xmetrics.HistogramType,
			Help:       "The round trip time of calls to the remote health endpoint",
			LabelNames: []string{CheckLabel, OutcomeLabel},
			Buckets:    []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	}
}

// Measures is the set of go-kit metrics a Service updates
type Measures struct {
	Checks   metrics.Counter
	Duration metrics.Histogram
}

// NewMeasures obtains the Measures for this package from a provider, typically an xmetrics.Registry
// built with the Metrics module.
func NewMeasures(p provider.Provider) *Measures {
	return &Measures{
		Checks:   p.NewCounter(CheckCounter),
		Duration: p.NewHistogram(CheckDuration, 11),
	}
}

// DiscardMeasures returns Measures that drop everything
func DiscardMeasures() *Measures {
	return &Measures{
		Checks:   discard.NewCounter(),
		Duration: discard.NewHistogram(),
	}
}

func outcome(err error) string {
	if err != nil {
		return FailureOutcome
	}

	return SuccessOutcome
}

func (m *Measures) check(check string, err error) {
	m.Checks.With(CheckLabel, check, OutcomeLabel, outcome(err), ReasonLabel, Reason(err)).Add(1.0)
}

func (m *Measures) roundTrip(check string, err error, elapsed time.Duration) {
	m.Duration.With(CheckLabel, check, OutcomeLabel, outcome(err)).Observe(elapsed.Seconds())
}
