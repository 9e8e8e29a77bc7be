// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"net/http"

	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// RequestIDHeader carries the identifier that correlates log entries for a single request,
// both on inbound requests and on outbound health probes.
const RequestIDHeader = "X-Request-Id"

// NewRequestID generates a new, time-ordered request identifier
func NewRequestID() string {
	return ksuid.New().String()
}

// SetLogger produces an Alice-style decorator that places a request-scoped logger into each request context.
// The logger carries the request method, URI, remote address, and a request id.  The id is taken from the
// inbound RequestIDHeader when present, otherwise one is generated.  Either way it is echoed on the response.
//
// Downstream code retrieves the logger with GetLogger(request.Context()).  If base is nil, the default
// logger is decorated instead.
func SetLogger(base *zap.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = sallust.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get(RequestIDHeader)
			if len(requestID) == 0 {
				requestID = NewRequestID()
			}

			response.Header().Set(RequestIDHeader, requestID)
			logger := base.With(
				zap.String("requestID", requestID),
				zap.String("requestMethod", request.Method),
				zap.String("requestURI", request.RequestURI),
				zap.String("remoteAddr", request.RemoteAddr),
			)

			next.ServeHTTP(response, request.WithContext(WithLogger(request.Context(), logger)))
		})
	}
}
