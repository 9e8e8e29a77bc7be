// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"fmt"
	"net/http"

	"github.com/ugorji/go/codec"
)

// JSONHandle is the codec handle used for every JSON body this module reads or writes.
// Struct fields are matched using their json tags.
var JSONHandle = &codec.JsonHandle{
	MapKeyAsString: true,
}

// ErrorBody is the JSON form of an error response
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WriteErrorf provides printf-style functionality for writing out the results of some operation.
// The response status code is set to code, and a JSON message of the form {"code": %d, "message": "%s"} is
// written as the response body.
func WriteErrorf(response http.ResponseWriter, code int, format string, parameters ...interface{}) error {
	return WriteError(response, code, fmt.Sprintf(format, parameters...))
}

// WriteError writes a JSON error message as a response.  The value parameter is subjected to the
// default stringizing rules of the fmt package, so errors and strings can be passed directly.
func WriteError(response http.ResponseWriter, code int, value interface{}) error {
	return WriteJSON(response, code, ErrorBody{
		Code:    code,
		Message: fmt.Sprint(value),
	})
}

// WriteJSON sets the JSON content type and status code, then encodes v as the response body
func WriteJSON(response http.ResponseWriter, code int, v interface{}) error {
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(code)
	return codec.NewEncoder(response, JSONHandle).Encode(v)
}
