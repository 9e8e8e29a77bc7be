// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttptest

import (
	"net/http"
	"strings"

	"github.com/stretchr/testify/mock"
)

// TransactCall is a stretchr mock Call with some extra behavior to make mocking out HTTP client behavior easier
type TransactCall struct {
	*mock.Call
}

// RespondWithError is a convenience for setting a return of (nil, err).
func (dc *TransactCall) RespondWithError(err error) *TransactCall {
	dc.Return((*http.Response)(nil), err)
	return dc
}

// RespondWith is a convenience for setting a return of (response, nil).
func (dc *TransactCall) RespondWith(response *http.Response) *TransactCall {
	dc.Return(response, nil)
	return dc
}

// MockTransactor is a stretchr mock for the Do method of an HTTP client.  It satisfies xhttp.Client.
type MockTransactor struct {
	mock.Mock
}

// Do is a mocked HTTP transaction call.  Use On or OnDo to setup behaviors for this method.
func (mt *MockTransactor) Do(request *http.Request) (*http.Response, error) {
	arguments := mt.Called(request)
	response, _ := arguments.Get(0).(*http.Response)
	return response, arguments.Error(1)
}

// OnDo sets an On("Do", ...) with the given matchers for a request.  The returned Call has some
// augmented behavior for setting responses.
func (mt *MockTransactor) OnDo(matchers ...func(*http.Request) bool) *TransactCall {
	call := mt.On("Do", mock.MatchedBy(func(candidate *http.Request) bool {
		for _, matcher := range matchers {
			if !matcher(candidate) {
				return false
			}
		}

		return true
	}))

	return &TransactCall{call}
}

// MatchMethod returns a request matcher that verifies each request has a specific method
func MatchMethod(expected string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		return strings.EqualFold(expected, r.Method)
	}
}

// MatchURLString returns a request matcher that verifies the request's URL translates to the given string.
func MatchURLString(expected string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		if r.URL == nil {
			return len(expected) == 0
		}

		return expected == r.URL.String()
	}
}

// MatchHeaderPresent returns a request matcher that requires a nonempty header value
func MatchHeaderPresent(name string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		return r.Header != nil && len(r.Header.Get(name)) > 0
	}
}

// MatchDeadline returns a request matcher that requires the request context to carry a deadline
func MatchDeadline() func(*http.Request) bool {
	return func(r *http.Request) bool {
		_, ok := r.Context().Deadline()
		return ok
	}
}
