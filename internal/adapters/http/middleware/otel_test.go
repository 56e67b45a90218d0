package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/go-autonomy/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/telemetry"
)

// These tests replace the global TracerProvider and cannot run in parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter
}

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	})
}

func TestOpenTelemetry_ControlRouteSpans(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		status    int
		wantName  string
		wantError bool
	}{
		{name: "abort accepted", method: http.MethodPost, path: "/api/v1/abort", status: http.StatusAccepted, wantName: "HTTP POST /api/v1/abort"},
		{name: "abort rejected", method: http.MethodPost, path: "/api/v1/abort", status: http.StatusUnauthorized, wantName: "HTTP POST /api/v1/abort"},
		{name: "abort hit a device fault", method: http.MethodPost, path: "/api/v1/abort", status: http.StatusServiceUnavailable, wantName: "HTTP POST /api/v1/abort", wantError: true},
		{name: "plan poll", method: http.MethodGet, path: "/api/v1/plan", status: http.StatusOK, wantName: "HTTP GET /api/v1/plan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := installTracer(t)

			handler := middleware.OpenTelemetry(nil)(statusHandler(tt.status))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, http.NoBody))

			spans := exporter.GetSpans()
			if len(spans) != 1 {
				t.Fatalf("spans = %d, want 1", len(spans))
			}
			span := spans[0]
			if span.Name != tt.wantName {
				t.Errorf("span name = %q, want %q", span.Name, tt.wantName)
			}

			attrs := make(map[string]any)
			for _, a := range span.Attributes {
				attrs[string(a.Key)] = a.Value.AsInterface()
			}
			if got, ok := attrs["http.method"].(string); !ok || got != tt.method {
				t.Errorf("http.method attr = %v, want %q", attrs["http.method"], tt.method)
			}
			if got, ok := attrs["http.status_code"].(int64); !ok || got != int64(tt.status) {
				t.Errorf("http.status_code attr = %v, want %d", attrs["http.status_code"], tt.status)
			}
			if isErr := span.Status.Code == codes.Error; isErr != tt.wantError {
				t.Errorf("span error status = %v, want %v", isErr, tt.wantError)
			}
		})
	}
}

func TestOpenTelemetry_JoinsCallerTrace(t *testing.T) {
	exporter := installTracer(t)

	handler := middleware.OpenTelemetry(nil)(statusHandler(http.StatusOK))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/lanes", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace id = %s, want caller's", got)
	}
}

func TestOpenTelemetry_RecordsRequestMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })
	metrics, err := telemetry.NewMetrics(mp, "middleware-test")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	handler := middleware.OpenTelemetry(metrics)(statusHandler(http.StatusAccepted))
	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/abort", http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("http.server.request.total data = %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				status, _ := dp.Attributes.Value(telemetry.AttrHTTPStatus)
				if status.AsInt64() == http.StatusAccepted {
					total += dp.Value
				}
			}
		}
	}
	if total != 2 {
		t.Errorf("accepted abort requests = %d, want 2", total)
	}
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	middleware.OpenTelemetry(nil)(statusHandler(http.StatusOK)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
