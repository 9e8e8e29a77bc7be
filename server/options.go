// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import "time"

const (
	// DefaultName is used in logs when no server name is configured
	DefaultName = "petcare"

	// DefaultAddress is the listen address used when none is configured
	DefaultAddress = ":8080"

	// DefaultReadHeaderTimeout bounds how long a client may take to send request headers
	DefaultReadHeaderTimeout = 10 * time.Second
)

// Options describes the HTTP server.  Zero values for the timeouts mean no timeout, except
// for ReadHeaderTimeout, which falls back to DefaultReadHeaderTimeout.
type Options struct {
	Name              string        `json:"name"`
	Address           string        `json:"address"`
	CertificateFile   string        `json:"certificateFile"`
	KeyFile           string        `json:"keyFile"`
	ReadTimeout       time.Duration `json:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout"`
	MaxHeaderBytes    int           `json:"maxHeaderBytes"`

	// RequestTimeout bounds the context of each request handled by the router
	RequestTimeout time.Duration `json:"requestTimeout"`
}

func (o Options) name() string {
	if len(o.Name) > 0 {
		return o.Name
	}

	return DefaultName
}

func (o Options) address() string {
	if len(o.Address) > 0 {
		return o.Address
	}

	return DefaultAddress
}

func (o Options) readHeaderTimeout() time.Duration {
	if o.ReadHeaderTimeout > 0 {
		return o.ReadHeaderTimeout
	}

	return DefaultReadHeaderTimeout
}

// Secure tests if both a certificate and key are configured
func (o Options) Secure() bool {
	return len(o.CertificateFile) > 0 && len(o.KeyFile) > 0
}
