// Package observability records directive outcomes and vendor call latency
// as Prometheus metrics and OpenTelemetry spans.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"myq-smarthome-adapter/internal/domain/model"
	"myq-smarthome-adapter/internal/ports"
)

type Metrics struct {
	directives     *prometheus.CounterVec
	vendorDuration *prometheus.HistogramVec
	gatherer       prometheus.Gatherer
}

var _ ports.Observer = (*Metrics)(nil)

// NewMetrics registers the adapter's collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		directives: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "directives_total",
				Help: "Directives handled by namespace, name and outcome.",
			},
			[]string{"namespace", "name", "outcome"},
		),
		vendorDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vendor_request_duration_seconds",
				Help:    "Vendor API round trip time by operation and result.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 1.5, 2, 2.25, 3},
			},
			[]string{"operation", "result"},
		),
		gatherer: reg,
	}
	reg.MustRegister(m.directives, m.vendorDuration)
	return m
}

func (m *Metrics) DirectiveHandled(namespace model.Namespace, name, outcome string) {
	m.directives.WithLabelValues(string(namespace), name, outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
