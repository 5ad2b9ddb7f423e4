// Package metrics holds the process-wide request counters and their exposition.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewGatherer returns a Prometheus registry holding reg and the Go runtime collector.
func NewGatherer(reg *Registry) (*prometheus.Registry, error) {
	pr := prometheus.NewRegistry()
	if err := pr.Register(reg); err != nil {
		return nil, err
	}
	if err := pr.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	return pr, nil
}

// Handler serves the client library exposition for g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}
