// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import "net/http"

// Constant represents an http.Handler that writes prebuilt, constant information to the response writer.
// The router uses one for unmatched paths.
type Constant struct {
	Code   int
	Header http.Header
	Body   []byte
}

// NotFound returns a Constant that answers 404 with a JSON error body
func NotFound() Constant {
	return Constant{
		Code:   http.StatusNotFound,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   []byte(`{"code":404,"message":"not found"}`),
	}
}

// ServeHTTP simply writes the configured information out to the response.
func (c Constant) ServeHTTP(response http.ResponseWriter, _ *http.Request) {
	for k, values := range c.Header {
		for _, v := range values {
			response.Header().Add(k, v)
		}
	}

	response.WriteHeader(c.Code)
	if len(c.Body) > 0 {
		response.Write(c.Body)
	}
}
