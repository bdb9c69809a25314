package conversion

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	opsCounter          metric.Int64Counter
	opsHistogram        metric.Float64Histogram
	errorCounter        metric.Int64Counter
	invalidInputCounter metric.Int64Counter
)

// InitMetrics registers the OTel instruments of the conversion domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("conversion")

	var err error

	opsCounter, err = meter.Int64Counter("conversion.operations.total",
		metric.WithDescription("Total number of unit conversions performed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("conversion.operation.duration",
		metric.WithDescription("Duration of unit conversions in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("conversion.errors.total",
		metric.WithDescription("Total number of rejected conversion requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	invalidInputCounter, err = meter.Int64Counter("conversion.invalid_input.total",
		metric.WithDescription("Conversions skipped because the input was not a number"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("creating invalid input counter: %w", err)
	}

	return nil
}
