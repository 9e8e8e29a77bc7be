// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func testSetLoggerGeneratesID(t *testing.T) {
	var (
		assert       = assert.New(t)
		core, logs   = observer.New(zap.DebugLevel)
		response     = httptest.NewRecorder()
		request      = httptest.NewRequest("GET", "/health", nil)
		handlerFound bool
	)

	SetLogger(zap.New(core))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		handlerFound = true
		GetLogger(r.Context()).Info("handling")
	})).ServeHTTP(response, request)

	assert.True(handlerFound)
	requestID := response.Header().Get(RequestIDHeader)
	assert.Len(requestID, 27)

	entries := logs.FilterMessage("handling").All()
	if assert.Len(entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(requestID, fields["requestID"])
		assert.Equal("GET", fields["requestMethod"])
		assert.Equal("/health", fields["requestURI"])
	}
}

func testSetLoggerKeepsID(t *testing.T) {
	var (
		assert   = assert.New(t)
		response = httptest.NewRecorder()
		request  = httptest.NewRequest("GET", "/health/ready", nil)
	)

	request.Header.Set(RequestIDHeader, "caller-supplied")
	SetLogger(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(response, request)
	assert.Equal("caller-supplied", response.Header().Get(RequestIDHeader))
}

func TestSetLogger(t *testing.T) {
	t.Run("GeneratesID", testSetLoggerGeneratesID)
	t.Run("KeepsID", testSetLoggerKeepsID)
}
