// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/ugorji/go/codec"
	"github.com/xmidt-org/petcare/clock"
	"github.com/xmidt-org/petcare/logging"
	"github.com/xmidt-org/petcare/xhttp"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds each readiness probe when no timeout is configured
	DefaultTimeout = 5 * time.Second

	// DefaultHealthPath is appended to the base URL to form the remote health endpoint
	DefaultHealthPath = "/q/health"

	// UpStatus is the status the remote API reports when it is ready.  Comparison is case insensitive.
	UpStatus = "UP"

	// maxBodySize limits how much of a health response is read
	maxBodySize = 64 * 1024
)

// Probe is a process local liveness check.  A Probe must not perform network I/O.
type Probe func(context.Context) error

// RuntimeProbe is the default liveness probe.  It succeeds as long as the Go runtime can report its memory statistics.
func RuntimeProbe(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	if memStats.Sys == 0 {
		return errors.New("the runtime reported no system memory")
	}

	return nil
}

// Option configures a Service
type Option func(*Service)

// WithClient sets the HTTP client used for readiness probes.  If nil, http.DefaultClient is used.
func WithClient(c xhttp.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.client = c
		} else {
			s.client = http.DefaultClient
		}
	}
}

// WithTimeout sets the bound on each readiness probe.  A nonpositive value means DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		} else {
			s.timeout = DefaultTimeout
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		} else {
			s.logger = sallust.Default()
		}
	}
}

// WithClock sets the clock used to timestamp reports and measure response times
func WithClock(c clock.Interface) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		} else {
			s.clock = clock.System()
		}
	}
}

func WithMeasures(m *Measures) Option {
	return func(s *Service) {
		if m != nil {
			s.measures = m
		} else {
			s.measures = DiscardMeasures()
		}
	}
}

// WithLivenessProbes replaces the liveness probes.  With no probes, CheckLiveness always succeeds.
func WithLivenessProbes(p ...Probe) Option {
	return func(s *Service) {
		s.probes = append([]Probe{}, p...)
	}
}

// WithHealthPath changes the path of the remote health endpoint.  An empty path means DefaultHealthPath.
func WithHealthPath(p string) Option {
	return func(s *Service) {
		if len(p) == 0 {
			p = DefaultHealthPath
		}

		s.healthPath = p
	}
}

// Service checks the health of a remote API.  A Service holds no state that changes between
// calls, so it may be used concurrently.  Each readiness probe makes exactly one request.
type Service struct {
	baseURL    string
	healthPath string
	client     xhttp.Client
	timeout    time.Duration
	logger     *zap.Logger
	clock      clock.Interface
	measures   *Measures
	probes     []Probe
}

// New creates a Service for the API rooted at baseURL
func New(baseURL string, options ...Option) *Service {
	s := &Service{
		baseURL:    strings.TrimRight(baseURL, "/"),
		healthPath: DefaultHealthPath,
		client:     http.DefaultClient,
		timeout:    DefaultTimeout,
		logger:     sallust.Default(),
		clock:      clock.System(),
		measures:   DiscardMeasures(),
		probes:     []Probe{RuntimeProbe},
	}

	for _, o := range options {
		o(s)
	}

	return s
}

// URL is the remote health endpoint this Service probes
func (s *Service) URL() string {
	if strings.HasPrefix(s.healthPath, "/") {
		return s.baseURL + s.healthPath
	}

	return s.baseURL + "/" + s.healthPath
}

// Timeout is the configured bound on each readiness probe
func (s *Service) Timeout() time.Duration {
	return s.timeout
}

// CheckLiveness runs each liveness probe in order, stopping at the first failure.
// A probe that panics counts as a failure.
func (s *Service) CheckLiveness(ctx context.Context) bool {
	var err error
	for i, p := range s.probes {
		if err = runProbe(ctx, p); err != nil {
			err = &ProbeError{Index: i, Err: err}
			break
		}
	}

	s.measures.check(LivenessCheck, err)
	if err != nil {
		s.logger.Error("liveness check failed", zap.Error(err))
		return false
	}

	return true
}

func runProbe(ctx context.Context, p Probe) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return p(ctx)
}

// CheckReadiness probes the remote health endpoint using the configured timeout
func (s *Service) CheckReadiness(ctx context.Context) bool {
	return s.CheckReadinessWithin(ctx, s.timeout)
}

// CheckReadinessWithin is like CheckReadiness, but bounds the probe with the given timeout.
// A nonpositive timeout means the configured one.
func (s *Service) CheckReadinessWithin(ctx context.Context, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = s.timeout
	}

	err := s.probe(ctx, ReadinessCheck, timeout)
	return err == nil
}

// CheckHealth probes the remote health endpoint and produces a Report
func (s *Service) CheckHealth(ctx context.Context) Report {
	start := s.clock.Now()
	err := s.probe(ctx, HealthCheck, s.timeout)
	end := s.clock.Now()

	report := Report{
		Status:    StatusUnhealthy,
		Timestamp: end.UTC(),
	}

	if err == nil {
		report.Status = StatusHealthy
		report.APIAvailable = true
		if elapsed := end.Sub(start); elapsed > 0 {
			report.ResponseTime = elapsed
		}
	}

	return report
}

// probe issues a single GET to the remote health endpoint.  The returned error is one of
// ErrTimeout, *TransportError, *StatusError, *BodyError, or a request construction error.
func (s *Service) probe(ctx context.Context, check string, timeout time.Duration) (err error) {
	var (
		start     = s.clock.Now()
		requestID = logging.NewRequestID()
		logger    = s.logger.With(zap.String("check", check), zap.String("requestID", requestID))
	)

	defer func() {
		elapsed := s.clock.Since(start)
		s.measures.check(check, err)
		s.measures.roundTrip(check, err, elapsed)

		if err != nil {
			logger.Error("remote API is not ready", zap.Error(err), zap.Duration("elapsed", elapsed))
		} else {
			logger.Debug("remote API is ready", zap.Duration("elapsed", elapsed))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(), nil)
	if err != nil {
		return err
	}

	request.Header.Set("Accept", "application/json")
	request.Header.Set(logging.RequestIDHeader, requestID)

	response, err := s.client.Do(request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrTimeout, timeout)
		}

		return &TransportError{Err: err}
	}

	defer func() {
		io.Copy(io.Discard, io.LimitReader(response.Body, maxBodySize))
		response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return &StatusError{Code: response.StatusCode}
	}

	var body struct {
		Status string `json:"status"`
	}

	if decodeErr := codec.NewDecoder(io.LimitReader(response.Body, maxBodySize), xhttp.JSONHandle).Decode(&body); decodeErr != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrTimeout, timeout)
		}

		return &BodyError{Err: decodeErr}
	}

	if !strings.EqualFold(body.Status, UpStatus) {
		return &BodyError{Status: body.Status}
	}

	return nil
}
