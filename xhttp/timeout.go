// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"context"
	"net/http"
	"time"
)

// Timeout returns an Alice-style constructor that bounds every request context with the given timeout.
// If timeout is nonpositive, the returned constructor hands back the next http.Handler undecorated.
//
// The deadline is only advisory: decorated handlers, such as the health endpoints, pass the request
// context along to whatever blocking work they do.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			ctx, cancel := context.WithTimeout(request.Context(), timeout)
			defer cancel()

			next.ServeHTTP(response, request.WithContext(ctx))
		})
	}
}
