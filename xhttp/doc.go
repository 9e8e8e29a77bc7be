// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xhttp contains client construction, handler decorators, and JSON response helpers
shared by the health endpoints and the application server.
*/
package xhttp
