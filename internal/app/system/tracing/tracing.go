// Package tracing wires OpenTelemetry tracing for the HTTP server and the
// member data source.
//
// Spans are exported over OTLP/HTTP when an endpoint is configured. Without
// one the global no-op provider stays in place and instrumentation costs
// next to nothing.
package tracing

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/freelancehub/internal/app/system/requestid"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Config controls exporter setup.
type Config struct {
	ServiceName string
	Endpoint    string // host:port of an OTLP/HTTP collector; empty disables export
	Insecure    bool
}

// ShutdownFunc flushes and stops the provider.
type ShutdownFunc func(ctx context.Context) error

func noop(context.Context) error { return nil }

// Setup installs a global tracer provider and returns its shutdown func.
func Setup(ctx context.Context, cfg Config, logger *zap.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	if cfg.Endpoint == "" {
		logger.Info("tracing disabled (no otel_endpoint)")
		return noop, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exp, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return noop, fmt.Errorf("create otlp exporter: %w", err)
	}

	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	logger.Info("tracing enabled",
		zap.String("endpoint", cfg.Endpoint),
		zap.Bool("insecure", cfg.Insecure),
	)
	return tp.Shutdown, nil
}

// Middleware starts a server span per request. The span is named after the
// matched chi route once routing has run.
func Middleware(next http.Handler) http.Handler {
	tracer := otel.Tracer("freelancehub/http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("url.path", r.URL.Path),
			),
		)
		defer span.End()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(ctx))

		if id := requestid.FromContext(ctx); id != "" {
			span.SetAttributes(attribute.String("request.id", id))
		}
		if rc := chi.RouteContext(ctx); rc != nil {
			if pattern := rc.RoutePattern(); pattern != "" {
				span.SetName(r.Method + " " + pattern)
				span.SetAttributes(attribute.String("http.route", pattern))
			}
		}
		span.SetAttributes(attribute.Int("http.response.status_code", sw.status))
		if sw.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(sw.status))
		}
	})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
