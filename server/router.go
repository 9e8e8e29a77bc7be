// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"time"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/petcare/logging"
	"github.com/xmidt-org/petcare/xhttp"
	"go.uber.org/zap"
)

// Registrar is anything that adds routes to a router
type Registrar interface {
	Register(*mux.Router)
}

// RegistrarFunc is a function type that implements Registrar
type RegistrarFunc func(*mux.Router)

func (rf RegistrarFunc) Register(r *mux.Router) {
	rf(r)
}

// NewRouter creates the application router.  Every matched route gets a request-scoped logger
// and, when requestTimeout is positive, a bounded context.  Unmatched paths answer 404.
func NewRouter(logger *zap.Logger, requestTimeout time.Duration, registrars ...Registrar) *mux.Router {
	var (
		router = mux.NewRouter()
		chain  = alice.New(logging.SetLogger(logger), xhttp.Timeout(requestTimeout))
	)

	router.NotFoundHandler = xhttp.NotFound()
	router.Use(chain.Then)
	for _, r := range registrars {
		r.Register(router)
	}

	return router
}
