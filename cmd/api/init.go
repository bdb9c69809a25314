package main

import (
	"context"
	"errors"

	"unit-converter/internal/config"
	"unit-converter/internal/conversion"
	"unit-converter/internal/observability"
	"unit-converter/internal/preferences"
)

type shutdownFunc func(context.Context) error

// initTelemetry sets up tracing, log export and metrics. Tracing and OTLP
// export only run when telemetry is enabled; the Prometheus endpoint always
// works.
func initTelemetry(ctx context.Context, cfg config.TelemetryConfig) (shutdownFunc, error) {
	var shutdowns []shutdownFunc
	shutdownAll := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.Enabled {
		traceShutdown, err := observability.InitTracing(ctx, cfg.ServiceName)
		if err != nil {
			return nil, err
		}
		shutdowns = append(shutdowns, traceShutdown)

		logShutdown, err := observability.InitLogging(ctx, cfg.ServiceName)
		if err != nil {
			return nil, errors.Join(err, shutdownAll(ctx))
		}
		shutdowns = append(shutdowns, logShutdown)
	}

	metricShutdown, err := initMetrics(ctx, cfg)
	if err != nil {
		return nil, errors.Join(err, shutdownAll(ctx))
	}
	shutdowns = append(shutdowns, metricShutdown)

	return shutdownAll, nil
}

// initMetrics initialises the meter provider and every domain's metric
// instruments. Add new domain InitMetrics calls here as the project grows.
func initMetrics(ctx context.Context, cfg config.TelemetryConfig) (shutdownFunc, error) {
	shutdown, err := observability.InitMetrics(ctx, cfg.ServiceName, cfg.Enabled)
	if err != nil {
		return nil, err
	}

	if err := conversion.InitMetrics(); err != nil {
		return nil, err
	}
	if err := preferences.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
