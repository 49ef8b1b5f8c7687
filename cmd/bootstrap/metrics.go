package bootstrap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"turfbook/internal/pkg/metrics"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		NewMetrics,
	),
)

func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func NewMetrics(registry *prometheus.Registry) *metrics.Metrics {
	return metrics.New(registry)
}
