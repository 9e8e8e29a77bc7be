// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/spf13/cast"
	"github.com/xmidt-org/petcare/logging"
	"github.com/xmidt-org/petcare/xhttp"
	"go.uber.org/zap"
)

// Handler routes
const (
	HealthRoute = "/health"
	LiveRoute   = "/health/live"
	ReadyRoute  = "/health/ready"
)

// Probe answers
const (
	Up   = "UP"
	Down = "DOWN"
)

type probeBody struct {
	Status string `json:"status"`
}

type readyQuery struct {
	Timeout string `schema:"timeout"`
}

// Handler exposes a Service over HTTP
type Handler struct {
	service *Service
	memory  *MemInfoReader
	decoder *schema.Decoder
}

// NewHandler creates a Handler for a Service.  If memory is nil, the /health response includes
// the memory section from DefaultMemoryReaderLocation whenever that file can be read.
func NewHandler(s *Service, memory *MemInfoReader) *Handler {
	if memory == nil {
		memory = new(MemInfoReader)
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Handler{
		service: s,
		memory:  memory,
		decoder: decoder,
	}
}

// Register adds this handler's routes to a router
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc(HealthRoute, h.Health).Methods(http.MethodGet)
	r.HandleFunc(LiveRoute, h.Live).Methods(http.MethodGet)
	r.HandleFunc(ReadyRoute, h.Ready).Methods(http.MethodGet)
}

func writeProbe(response http.ResponseWriter, ok bool) error {
	if ok {
		return xhttp.WriteJSON(response, http.StatusOK, probeBody{Status: Up})
	}

	return xhttp.WriteJSON(response, http.StatusServiceUnavailable, probeBody{Status: Down})
}

// Health writes the full Report.  The status code is 503 when the report is unhealthy.
func (h *Handler) Health(response http.ResponseWriter, request *http.Request) {
	var (
		logger = logging.GetLogger(request.Context())
		report = h.service.CheckHealth(request.Context())
		body   = newReportBody(report)
		code   = http.StatusOK
	)

	if memory, err := h.memory.Memory(); err == nil {
		body.Memory = memory
	} else {
		logger.Debug("memory information unavailable", zap.Error(err))
	}

	if !report.Healthy() {
		code = http.StatusServiceUnavailable
	}

	if err := xhttp.WriteJSON(response, code, body); err != nil {
		logger.Error("unable to write health report", zap.Error(err))
	}
}

// Live writes the liveness verdict
func (h *Handler) Live(response http.ResponseWriter, request *http.Request) {
	if err := writeProbe(response, h.service.CheckLiveness(request.Context())); err != nil {
		logging.GetLogger(request.Context()).Error("unable to write liveness", zap.Error(err))
	}
}

// Ready writes the readiness verdict.  The optional timeout query parameter overrides the
// probe timeout for this request.
func (h *Handler) Ready(response http.ResponseWriter, request *http.Request) {
	logger := logging.GetLogger(request.Context())

	var query readyQuery
	if err := h.decoder.Decode(&query, request.URL.Query()); err != nil {
		xhttp.WriteErrorf(response, http.StatusBadRequest, "invalid query: %s", err)
		return
	}

	var timeout time.Duration
	if len(query.Timeout) > 0 {
		var err error
		timeout, err = cast.ToDurationE(query.Timeout)
		if err != nil || timeout <= 0 {
			xhttp.WriteErrorf(response, http.StatusBadRequest, "invalid timeout: %s", query.Timeout)
			return
		}
	}

	if err := writeProbe(response, h.service.CheckReadinessWithin(request.Context(), timeout)); err != nil {
		logger.Error("unable to write readiness", zap.Error(err))
	}
}
