// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteErrorf(t *testing.T) {
	var (
		assert   = assert.New(t)
		response = httptest.NewRecorder()
	)

	assert.NoError(WriteErrorf(response, 404, "pet %d not %s", 12, "found"))
	assert.Equal(404, response.Code)
	assert.Equal("application/json", response.Header().Get("Content-Type"))
	assert.JSONEq(`{"code": 404, "message": "pet 12 not found"}`, response.Body.String())
}

func TestWriteError(t *testing.T) {
	testData := []struct {
		name     string
		code     int
		value    interface{}
		expected string
	}{
		{"String", http.StatusServiceUnavailable, "api down", `{"code": 503, "message": "api down"}`},
		{"Error", http.StatusBadRequest, errors.New("bad timeout"), `{"code": 400, "message": "bad timeout"}`},
		{"Quotes", http.StatusBadRequest, `bad "value"`, `{"code": 400, "message": "bad \"value\""}`},
	}

	for _, record := range testData {
		t.Run(record.name, func(t *testing.T) {
			var (
				assert   = assert.New(t)
				response = httptest.NewRecorder()
			)

			assert.NoError(WriteError(response, record.code, record.value))
			assert.Equal(record.code, response.Code)
			assert.Equal("application/json", response.Header().Get("Content-Type"))
			assert.JSONEq(record.expected, response.Body.String())
		})
	}
}
