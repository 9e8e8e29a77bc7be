// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package server builds and runs the HTTP server that exposes health and metrics endpoints.

The server is started and stopped through an fx.Lifecycle.  Routes are registered on a gorilla/mux
router whose middleware places a request-scoped zap logger into each request context and bounds
each request with a timeout.
*/
package server
