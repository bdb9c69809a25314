package conversion

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

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

// tracer is the conversion domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("conversion")

// Handler serves the conversion endpoints. DefaultLocale is used when a
// request names no supported language.
type Handler struct {
	DefaultLocale i18n.Locale
}

func NewHandler(defaultLocale i18n.Locale) *Handler {
	return &Handler{DefaultLocale: defaultLocale}
}

func (h *Handler) locale(r *http.Request) i18n.Locale {
	return i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), h.DefaultLocale)
}

// ---------------------------------------------------------------------------
// Handlers — unit listing
// ---------------------------------------------------------------------------

// ListUnits handles GET /units
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(r)

	views := make([]CategoryView, 0, len(units.Categories()))
	for _, c := range units.Categories() {
		views = append(views, categoryView(c, locale))
	}

	handlers.WriteJSON(w, http.StatusOK, UnitsResponse{Locale: string(locale), Categories: views})
}

// GetCategory handles GET /units/{category}
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(r)

	c, err := units.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		handlers.WriteError(w, http.StatusNotFound, i18n.Text(locale, i18n.KeyUnknownCategory))
		return
	}

	handlers.WriteJSON(w, http.StatusOK, categoryView(c, locale))
}

func categoryView(c units.Category, locale i18n.Locale) CategoryView {
	defs := units.UnitsFor(c)
	base := units.BaseUnit(c)

	view := CategoryView{
		ID:    string(c),
		Label: i18n.Text(locale, i18n.CategoryKey(c)),
		Units: make([]UnitView, 0, len(defs)),
	}
	for _, u := range defs {
		view.Units = append(view.Units, UnitView{
			ID:          u.ID,
			Label:       i18n.Text(locale, i18n.UnitKey(c, u.ID)),
			RatioToBase: u.RatioToBase,
			Base:        u.ID == base.ID,
		})
	}
	return view
}

// ---------------------------------------------------------------------------
// Handler — single conversion
// ---------------------------------------------------------------------------

// Convert handles POST /convert. Input that is not a number is answered with
// 200, an empty result and ok=false so a UI can post on every keystroke.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	const opName = "convert"

	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	locale := h.locale(r)

	ctx, span := tracer.Start(ctx, "conversion.convert",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
			attribute.String("conversion.locale", string(locale)),
		),
	)
	defer span.End()

	var req ConvertRequest
	if err := validation.DecodeJSON(w, r, convertSchema, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("conversion.category", req.Category),
		attribute.String("conversion.from", req.From),
		attribute.String("conversion.to", req.To),
	)

	c, err := units.ParseCategory(req.Category)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, i18n.Text(locale, i18n.KeyUnknownCategory), err, http.StatusBadRequest, w)
		return
	}

	start := time.Now()
	res, err := Evaluate(ConversionRequest{Category: c, From: req.From, To: req.To, Input: string(req.Input)})
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, errorMessage(locale, err), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("category", string(c)),
	)

	resp := ConvertResponse{
		Category: string(c),
		From:     req.From,
		To:       req.To,
		Input:    string(req.Input),
		Result:   res.Display,
		OK:       res.OK,
	}

	if !res.OK {
		invalidInputCounter.Add(ctx, 1, attrs)
		span.AddEvent("conversion.skipped", trace.WithAttributes(attribute.String("input", string(req.Input))))
		span.SetStatus(codes.Ok, "")
		logger.Debug("conversion skipped for non-numeric input",
			zap.String("category", string(c)),
			zap.String("input", string(req.Input)),
			zap.String("request_id", requestID),
		)

		resp.Message = i18n.Text(locale, i18n.KeyInvalidInput)
		handlers.WriteJSON(w, http.StatusOK, resp)
		return
	}

	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("conversion.complete", trace.WithAttributes(
		attribute.Float64("result", res.Value),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("conversion.result", res.Display))
	span.SetStatus(codes.Ok, "")

	logger.Info("conversion completed",
		zap.String("category", string(c)),
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.String("input", string(req.Input)),
		zap.String("result", res.Display),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	value := Round(res.Value)
	resp.Value = &value
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Handler — conversion path (nested spans)
// ---------------------------------------------------------------------------

// Chain handles POST /convert/chain. It converts the input through every unit
// of path in turn, creating a child span for every hop.
func (h *Handler) Chain(w http.ResponseWriter, r *http.Request) {
	const opName = "chain"

	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	locale := h.locale(r)

	ctx, span := tracer.Start(ctx, "conversion.chain",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ChainRequest
	if err := validation.DecodeJSON(w, r, chainSchema, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	c, err := units.ParseCategory(req.Category)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, i18n.Text(locale, i18n.KeyUnknownCategory), err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("conversion.category", string(c)),
		attribute.Int("chain.steps_count", len(req.Path)-1),
	)

	resp := ChainResponse{
		Category: string(c),
		Input:    string(req.Input),
		Steps:    []ChainResult{},
	}

	running, ok := ParseInput(string(req.Input))
	if !ok {
		// unit ids are still checked so a bad path is reported immediately
		if _, err := ConvertPath(c, 0, req.Path...); err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, opName, errorMessage(locale, err), err, http.StatusBadRequest, w)
			return
		}
		invalidInputCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", opName)))
		span.SetStatus(codes.Ok, "")
		resp.Message = i18n.Text(locale, i18n.KeyInvalidInput)
		handlers.WriteJSON(w, http.StatusOK, resp)
		return
	}

	logger.Info("starting conversion chain",
		zap.String("category", string(c)),
		zap.Float64("input", running),
		zap.Strings("path", req.Path),
		zap.String("request_id", requestID),
	)

	for i := 1; i < len(req.Path); i++ {
		from, to := req.Path[i-1], req.Path[i]

		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("conversion.chain.step.%d", i-1),
			trace.WithAttributes(
				attribute.Int("chain.step.index", i-1),
				attribute.String("chain.step.from", from),
				attribute.String("chain.step.to", to),
				attribute.Float64("chain.step.input", running),
			),
		)

		stepStart := time.Now()
		out, err := Convert(c, from, to, running)
		stepElapsed := float64(time.Since(stepStart).Microseconds()) / 1000.0

		if err != nil {
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, err.Error())
			stepSpan.End()

			observability.RecordError(ctx, span, logger, errorCounter, opName, errorMessage(locale, err), fmt.Errorf("step %d: %w", i-1, err), http.StatusBadRequest, w)
			return
		}

		if math.IsInf(out, 0) || math.IsNaN(out) {
			stepSpan.SetStatus(codes.Error, "result out of range")
			stepSpan.End()

			invalidInputCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", opName)))
			span.SetStatus(codes.Ok, "")
			resp.Steps = []ChainResult{}
			resp.Message = i18n.Text(locale, i18n.KeyInvalidInput)
			handlers.WriteJSON(w, http.StatusOK, resp)
			return
		}

		attrs := metric.WithAttributes(
			attribute.String("operation", opName),
			attribute.String("category", string(c)),
		)
		opsCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, stepElapsed, attrs)

		stepSpan.AddEvent("step.complete", trace.WithAttributes(
			attribute.Float64("input", running),
			attribute.Float64("result", out),
		))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		resp.Steps = append(resp.Steps, ChainResult{
			From:    from,
			To:      to,
			Input:   running,
			Result:  out,
			Display: Format(out),
		})
		running = out
	}

	resp.Result = Format(running)
	resp.OK = resp.Result != ""

	span.AddEvent("chain.complete", trace.WithAttributes(
		attribute.Float64("final_result", running),
		attribute.Int("total_steps", len(resp.Steps)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("conversion chain completed",
		zap.String("category", string(c)),
		zap.String("result", resp.Result),
		zap.Int("steps", len(resp.Steps)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

func errorMessage(locale i18n.Locale, err error) string {
	switch {
	case errors.Is(err, ErrUnknownUnit):
		return i18n.Text(locale, i18n.KeyUnknownUnit)
	case errors.Is(err, ErrUnknownCategory):
		return i18n.Text(locale, i18n.KeyUnknownCategory)
	default:
		return err.Error()
	}
}
