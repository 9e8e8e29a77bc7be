// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is an interface implemented by net/http.Client
type Client interface {
	Do(*http.Request) (*http.Response, error)
}

var _ Client = (*http.Client)(nil)

// ClientOptions configures the *http.Client used to talk to a remote API
type ClientOptions struct {
	// Timeout is the overall http.Client timeout.  Callers normally bound individual
	// requests with a context instead, so this is a backstop.  Zero means no client timeout.
	Timeout time.Duration `json:"timeout"`

	// MaxIdleConnsPerHost is passed through to the transport.  If nonpositive,
	// the net/http default is used.
	MaxIdleConnsPerHost int `json:"maxIdleConnsPerHost"`

	// Tracing wraps the transport with OpenTelemetry instrumentation
	Tracing bool `json:"tracing"`
}

// NewClient builds an *http.Client from options.  The options can be nil, in which case
// a client with the default transport and no timeout is returned.
func NewClient(o *ClientOptions) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if o == nil {
		return &http.Client{Transport: transport}
	}

	if o.MaxIdleConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = o.MaxIdleConnsPerHost
	}

	var rt http.RoundTripper = transport
	if o.Tracing {
		rt = otelhttp.NewTransport(rt)
	}

	return &http.Client{
		Transport: rt,
		Timeout:   o.Timeout,
	}
}
