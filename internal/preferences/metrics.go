package preferences

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	opsCounter   metric.Int64Counter
	errorCounter metric.Int64Counter
)

// InitMetrics registers the OTel instruments of the preferences domain.
func InitMetrics() error {
	meter := otel.Meter("preferences")

	var err error

	opsCounter, err = meter.Int64Counter("preferences.operations.total",
		metric.WithDescription("Total number of preference reads and writes"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("preferences.errors.total",
		metric.WithDescription("Total number of failed preference operations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
