// Package metrics collects Prometheus metrics for the payment workflows.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records workflow outcomes. Services depend on this interface
// so tests can run without a registry.
type Collector interface {
	RecordTransaction(status string)
	RecordNotification(status string)
	RecordGatewayFailure(gateway string)
}

// PrometheusCollector implements Collector backed by a private registry.
type PrometheusCollector struct {
	registry      *prometheus.Registry
	transactions  *prometheus.CounterVec
	notifications *prometheus.CounterVec
	gatewayFails  *prometheus.CounterVec
}

// NewPrometheusCollector creates a collector with its own registry.
func NewPrometheusCollector() *PrometheusCollector {
	registry := prometheus.NewRegistry()

	return &PrometheusCollector{
		registry: registry,
		transactions: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "sops_transactions_total",
			Help: "Transactions created, labeled by final status",
		}, []string{"status"}),
		notifications: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "sops_notifications_total",
			Help: "Notifications created, labeled by final status",
		}, []string{"status"}),
		gatewayFails: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "sops_gateway_failures_total",
			Help: "External gateway faults, labeled by gateway",
		}, []string{"gateway"}),
	}
}

func (c *PrometheusCollector) RecordTransaction(status string) {
	c.transactions.WithLabelValues(status).Inc()
}

func (c *PrometheusCollector) RecordNotification(status string) {
	c.notifications.WithLabelValues(status).Inc()
}

func (c *PrometheusCollector) RecordGatewayFailure(gateway string) {
	c.gatewayFails.WithLabelValues(gateway).Inc()
}

// Handler exposes the registry for scraping.
func (c *PrometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// NoopCollector discards all metrics.
type NoopCollector struct{}

func (NoopCollector) RecordTransaction(string)    {}
func (NoopCollector) RecordNotification(string)   {}
func (NoopCollector) RecordGatewayFailure(string) {}
