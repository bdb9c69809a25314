package preferences

import (
	"errors"
	"fmt"
	"net/http"

	"unit-converter/internal/handlers"
	"unit-converter/internal/i18n"
	"unit-converter/internal/observability"
	"unit-converter/internal/units"
	"unit-converter/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("preferences")

var preferenceSchema = validation.MustCompile("preference", `{
  "type": "object",
  "required": ["category", "from", "to"],
  "properties": {
    "category": {"type": "string", "minLength": 1},
    "from":     {"type": "string", "minLength": 1},
    "to":       {"type": "string", "minLength": 1}
  }
}`)

// PreferenceRequest is the JSON body for PUT /preferences/{clientID}.
type PreferenceRequest struct {
	Category string `json:"category"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// Handler serves /preferences.
type Handler struct {
	svc           *Service
	defaultLocale i18n.Locale
}

func NewHandler(svc *Service, defaultLocale i18n.Locale) *Handler {
	return &Handler{svc: svc, defaultLocale: defaultLocale}
}

// RegisterRoutes mounts the preference endpoints under /preferences.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/preferences/{clientID}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Put)
		r.Delete("/", h.Delete)
	})
}

func (h *Handler) start(r *http.Request, opName string) (*http.Request, trace.Span, *zap.Logger) {
	ctx, span := tracer.Start(r.Context(), "preferences."+opName,
		trace.WithAttributes(
			attribute.String("request.id", observability.RequestIDFromContext(r.Context())),
		),
	)
	return r.WithContext(ctx), span, observability.LoggerWithTrace(ctx)
}

// Get handles GET /preferences/{clientID}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	r, span, logger := h.start(r, "get")
	defer span.End()
	ctx := r.Context()

	p, err := h.svc.Get(ctx, chi.URLParam(r, "clientID"))
	if err != nil {
		h.fail(w, r, span, logger, "get", err)
		return
	}

	opsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "get")))
	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, p)
}

// Put handles PUT /preferences/{clientID}
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	r, span, logger := h.start(r, "put")
	defer span.End()
	ctx := r.Context()

	var req PreferenceRequest
	if err := validation.DecodeJSON(w, r, preferenceSchema, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "put", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	c, err := units.ParseCategory(req.Category)
	if err != nil {
		h.fail(w, r, span, logger, "put", fmt.Errorf("%w: %v", ErrInvalidSelection, err))
		return
	}

	p, err := h.svc.Save(ctx, chi.URLParam(r, "clientID"), Preference{
		Category: c,
		From:     req.From,
		To:       req.To,
	})
	if err != nil {
		h.fail(w, r, span, logger, "put", err)
		return
	}

	opsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "put")))
	span.SetStatus(codes.Ok, "")

	logger.Info("preference saved",
		zap.String("category", string(p.Category)),
		zap.String("from", p.From),
		zap.String("to", p.To),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	handlers.WriteJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /preferences/{clientID}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	r, span, logger := h.start(r, "delete")
	defer span.End()
	ctx := r.Context()

	if err := h.svc.Delete(ctx, chi.URLParam(r, "clientID")); err != nil {
		h.fail(w, r, span, logger, "delete", err)
		return
	}

	opsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "delete")))
	span.SetStatus(codes.Ok, "")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, span trace.Span, logger *zap.Logger, opName string, err error) {
	ctx := r.Context()
	locale := i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), h.defaultLocale)

	switch {
	case errors.Is(err, ErrNotFound):
		span.SetStatus(codes.Ok, "")
		handlers.WriteError(w, http.StatusNotFound, i18n.Text(locale, i18n.KeyPreferenceNotFound))
	case errors.Is(err, ErrInvalidClientID), errors.Is(err, ErrInvalidSelection):
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
	default:
		observability.RecordError(ctx, span, logger, errorCounter, opName, "storage unavailable", err, http.StatusServiceUnavailable, w)
	}
}
