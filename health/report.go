// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"fmt"
	"io"
	"time"

	"github.com/ugorji/go/codec"
	"github.com/xmidt-org/petcare/xhttp"
)

// Status is the overall verdict of a Report
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Report is the result of a single CheckHealth call.  Reports are values and are never updated.
type Report struct {
	// Status is StatusHealthy only when the remote API answered UP
	Status Status

	// Timestamp is when the report was produced, in UTC
	Timestamp time.Time

	// APIAvailable indicates whether the remote API responded successfully within the timeout
	APIAvailable bool

	// ResponseTime is the measured round trip of a successful readiness probe.  It is zero for
	// unhealthy reports or when the clock could not measure the call.
	ResponseTime time.Duration
}

// Healthy tests if this report's status is StatusHealthy
func (r Report) Healthy() bool {
	return r.Status == StatusHealthy
}

// HasResponseTime tests if a response time was measured
func (r Report) HasResponseTime() bool {
	return r.ResponseTime > 0
}

// reportBody is the JSON form of a Report.  Memory is only filled in by Handler.
type reportBody struct {
	Status       Status   `json:"status"`
	Timestamp    string   `json:"timestamp"`
	APIAvailable bool     `json:"apiAvailable"`
	ResponseTime *float64 `json:"responseTime,omitempty"`
	Memory       *Memory  `json:"memory,omitempty"`
}

func newReportBody(r Report) reportBody {
	body := reportBody{
		Status:       r.Status,
		Timestamp:    r.Timestamp.UTC().Format(time.RFC3339Nano),
		APIAvailable: r.APIAvailable,
	}

	if r.HasResponseTime() {
		ms := float64(r.ResponseTime) / float64(time.Millisecond)
		body.ResponseTime = &ms
	}

	return body
}

// Encode writes this report as JSON.  The response time, when present, is in milliseconds.
func (r Report) Encode(w io.Writer) error {
	return codec.NewEncoder(w, xhttp.JSONHandle).Encode(newReportBody(r))
}

// DecodeReport reads a Report in the format produced by Encode
func DecodeReport(rd io.Reader) (Report, error) {
	var body reportBody
	if err := codec.NewDecoder(rd, xhttp.JSONHandle).Decode(&body); err != nil {
		return Report{}, err
	}

	timestamp, err := time.Parse(time.RFC3339Nano, body.Timestamp)
	if err != nil {
		return Report{}, fmt.Errorf("invalid report timestamp: %w", err)
	}

	report := Report{
		Status:       body.Status,
		Timestamp:    timestamp,
		APIAvailable: body.APIAvailable,
	}

	if body.ResponseTime != nil {
		report.ResponseTime = time.Duration(*body.ResponseTime * float64(time.Millisecond))
	}

	return report, nil
}
