// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package health reports the operational status of a remote API from the point of view of its clients.

A Service answers three questions:

	CheckLiveness  - is this process able to run checks at all?  No network traffic is involved.
	CheckReadiness - does the remote API answer GET <base>/q/health with 200 and a status of UP in time?
	CheckHealth    - a Report combining readiness, a timestamp, and the measured response time.

None of these operations return errors.  Timeouts, transport failures, bad status codes, and malformed
bodies are all normal outcomes and are reduced to false or an unhealthy Report.  The underlying cause
is logged and counted in the Measures.

Handler exposes a Service over HTTP for monitoring systems.
*/
package health
