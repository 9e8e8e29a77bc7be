// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is a Prometheus registry and a go-kit metrics provider all in one.
//
// For any metric preregistered from a Module, the provider methods return a go-kit wrapper around that
// metric, labels included.  Unknown names are created ad hoc without labels and cached.
type Registry interface {
	provider.Provider
	prometheus.Gatherer
	prometheus.Registerer
}

type registry struct {
	*prometheus.Registry

	namespace string
	subsystem string

	lock  sync.Mutex
	cache map[string]prometheus.Collector
}

// NewRegistry creates a Registry, preregistering the metrics from the options and any modules.
// Duplicate metric names are an error.
func NewRegistry(o *Options, modules ...Module) (Registry, error) {
	r := &registry{
		Registry:  o.registry(),
		namespace: o.namespace(),
		subsystem: o.subsystem(),
		cache:     make(map[string]prometheus.Collector),
	}

	for _, module := range append([]Module{o.Module}, modules...) {
		for _, m := range module() {
			if _, ok := r.cache[m.Name]; ok {
				return nil, fmt.Errorf("duplicate metric with name: %s", m.Name)
			}

			c, err := NewCollector(m, r.namespace, r.subsystem)
			if err != nil {
				return nil, err
			}

			if err := r.Registry.Register(c); err != nil {
				return nil, err
			}

			r.cache[m.Name] = c
		}
	}

	return r, nil
}

// collector returns the cached collector for a name, creating and registering it with the factory if necessary
func (r *registry) collector(name string, factory func() prometheus.Collector) prometheus.Collector {
	r.lock.Lock()
	defer r.lock.Unlock()

	if existing, ok := r.cache[name]; ok {
		return existing
	}

	c := factory()
	if err := r.Registry.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			c = already.ExistingCollector
		} else {
			panic(err)
		}
	}

	r.cache[name] = c
	return c
}

func (r *registry) NewCounter(name string) metrics.Counter {
	c := r.collector(name, func() prometheus.Collector {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})
	})

	counterVec, ok := c.(*prometheus.CounterVec)
	if !ok {
		panic(fmt.Errorf("the metric %s is not a counter", name))
	}

	return gokitprometheus.NewCounter(counterVec)
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	c := r.collector(name, func() prometheus.Collector {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})
	})

	gaugeVec, ok := c.(*prometheus.GaugeVec)
	if !ok {
		panic(fmt.Errorf("the metric %s is not a gauge", name))
	}

	return gokitprometheus.NewGauge(gaugeVec)
}

// NewHistogram ignores the buckets parameter.  Preregistered histograms use their configured buckets,
// ad hoc histograms use the Prometheus defaults.
func (r *registry) NewHistogram(name string, _ int) metrics.Histogram {
	c := r.collector(name, func() prometheus.Collector {
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})
	})

	histogramVec, ok := c.(*prometheus.HistogramVec)
	if !ok {
		panic(fmt.Errorf("the metric %s is not a histogram", name))
	}

	return gokitprometheus.NewHistogram(histogramVec)
}

func (r *registry) Stop() {
}

// Handler returns the http.Handler that exposes a Registry in the Prometheus text format
func Handler(r Registry) http.Handler {
	return promhttp.HandlerFor(r, promhttp.HandlerOpts{})
}
