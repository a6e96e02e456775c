// Package app wires the adapter's components from configuration. Both
// binaries share it so they serve identical directive semantics.
package app

import (
	"log/slog"

	"myq-smarthome-adapter/internal/adapters/input/entry"
	"myq-smarthome-adapter/internal/adapters/output/myq"
	"myq-smarthome-adapter/internal/config"
	"myq-smarthome-adapter/internal/domain/service"
	"myq-smarthome-adapter/internal/observability"
)

type App struct {
	Entry   *entry.Handler
	Metrics *observability.Metrics
}

func New(cfg *config.Config, logger *slog.Logger) *App {
	metrics := observability.NewMetrics()
	vendor := observability.InstrumentVendor(myq.NewClient(cfg.Endpoint, cfg.RequestTimeout), metrics)

	adapter := service.NewAdapterService(vendor, metrics, logger, service.Settings{
		ManufacturerName:     cfg.ManufacturerName,
		DependentServiceName: cfg.DependentServiceName,
	})

	return &App{
		Entry:   entry.NewHandler(adapter, logger),
		Metrics: metrics,
	}
}
