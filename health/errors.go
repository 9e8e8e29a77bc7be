// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"errors"
	"fmt"
)

// ErrTimeout indicates that the remote API did not answer within the configured timeout
var ErrTimeout = errors.New("health check timed out")

// TransportError indicates that the request never produced an HTTP response, e.g. a refused connection
type TransportError struct {
	Err error
}

func (te *TransportError) Error() string {
	return fmt.Sprintf("health check transport failure: %s", te.Err)
}

func (te *TransportError) Unwrap() error {
	return te.Err
}

// StatusError indicates that the remote API answered with something other than 200
type StatusError struct {
	Code int
}

func (se *StatusError) Error() string {
	return fmt.Sprintf("health check returned status code %d", se.Code)
}

// BodyError indicates a response body that could not be parsed or that did not report UP.
// Err is set when decoding failed.  Otherwise, Status holds the reported value.
type BodyError struct {
	Status string
	Err    error
}

func (be *BodyError) Error() string {
	if be.Err != nil {
		return fmt.Sprintf("malformed health check body: %s", be.Err)
	}

	return fmt.Sprintf("remote API reported status [%s]", be.Status)
}

func (be *BodyError) Unwrap() error {
	return be.Err
}

// ProbeError is returned when a liveness probe fails or panics
type ProbeError struct {
	Index int
	Err   error
}

func (pe *ProbeError) Error() string {
	return fmt.Sprintf("liveness probe %d failed: %s", pe.Index, pe.Err)
}

func (pe *ProbeError) Unwrap() error {
	return pe.Err
}

// Reason classifies a check error into the value used for the reason metric label
func Reason(err error) string {
	var (
		transportError *TransportError
		statusError    *StatusError
		bodyError      *BodyError
		probeError     *ProbeError
	)

	switch {
	case err == nil:
		return NoReason

	case errors.Is(err, ErrTimeout):
		return TimeoutReason

	case errors.As(err, &transportError):
		return TransportReason

	case errors.As(err, &statusError):
		return StatusReason

	case errors.As(err, &bodyError):
		return BodyReason

	case errors.As(err, &probeError):
		return ProbeReason

	default:
		return RequestReason
	}
}
