package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"unit-converter/internal/conversion"
	"unit-converter/internal/handlers"
	"unit-converter/internal/observability"
	"unit-converter/internal/preferences"
)

// Deps are the domain handlers mounted by NewRouter. A nil Preferences
// leaves the /preferences routes unmounted.
type Deps struct {
	Conversion  *conversion.Handler
	Preferences *preferences.Handler
}

func NewRouter(deps Deps) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	if deps.Conversion != nil {
		deps.Conversion.RegisterRoutes(r)
	}
	if deps.Preferences != nil {
		deps.Preferences.RegisterRoutes(r)
	}

	return r
}
