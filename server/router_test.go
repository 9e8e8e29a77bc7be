// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/xmidt-org/petcare/logging"
	"go.uber.org/zap/zaptest"
)

func testNewRouterMatched(t *testing.T) {
	var (
		assert      = assert.New(t)
		hasDeadline bool
		hasLogger   bool

		router = NewRouter(
			zaptest.NewLogger(t),
			time.Minute,
			RegistrarFunc(func(r *mux.Router) {
				r.HandleFunc("/pets", func(response http.ResponseWriter, request *http.Request) {
					_, hasDeadline = request.Context().Deadline()
					hasLogger = logging.GetLogger(request.Context()) != nil
					response.WriteHeader(http.StatusNoContent)
				})
			}),
		)

		response = httptest.NewRecorder()
	)

	router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/pets", nil))
	assert.Equal(http.StatusNoContent, response.Code)
	assert.True(hasDeadline)
	assert.True(hasLogger)
	assert.NotEmpty(response.Header().Get(logging.RequestIDHeader))
}

func testNewRouterNotFound(t *testing.T) {
	var (
		assert   = assert.New(t)
		router   = NewRouter(zaptest.NewLogger(t), 0)
		response = httptest.NewRecorder()
	)

	router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/nosuch", nil))
	assert.Equal(http.StatusNotFound, response.Code)
	assert.Equal("application/json", response.Header().Get("Content-Type"))
}

func TestNewRouter(t *testing.T) {
	t.Run("Matched", testNewRouterMatched)
	t.Run("NotFound", testNewRouterNotFound)
}
