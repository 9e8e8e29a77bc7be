// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttptest

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
)

// NewResponse synthesizes a client response, similar to httptest.NewRequest.
func NewResponse(statusCode int, body []byte) *http.Response {
	return &http.Response{
		Status:        strconv.Itoa(statusCode),
		StatusCode:    statusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        make(http.Header),
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
	}
}

// NewJSONResponse is NewResponse with the Content-Type set to application/json
func NewJSONResponse(statusCode int, body string) *http.Response {
	response := NewResponse(statusCode, []byte(body))
	response.Header.Set("Content-Type", "application/json")
	return response
}

// NewBodyResponse returns a response whose body is the given reader, typically a *MockBody
func NewBodyResponse(statusCode int, body io.ReadCloser) *http.Response {
	response := NewResponse(statusCode, nil)
	response.Body = body
	response.ContentLength = -1
	return response
}
