package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestInit_InstallsProvider(t *testing.T) {
	shutdown := Init("crud-starter-test", "test")
	defer shutdown(context.Background()) //nolint:errcheck

	_, span := Tracer().Start(context.Background(), "probe")
	defer span.End()

	if !span.SpanContext().TraceID().IsValid() {
		t.Error("SDK provider should generate valid trace IDs")
	}
}

func TestMiddleware_SetsTraceHeaderAndPropagatesContext(t *testing.T) {
	shutdown := Init("crud-starter-test", "test")
	defer shutdown(context.Background()) //nolint:errcheck

	var inner trace.SpanContext
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = trace.SpanContextFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tasks/123", nil))

	traceID := rr.Header().Get("X-Trace-Id")
	if traceID == "" {
		t.Fatal("no X-Trace-Id header")
	}
	if !inner.TraceID().IsValid() {
		t.Fatal("handler did not see a span context")
	}
	if inner.TraceID().String() != traceID {
		t.Errorf("header trace id %s != span trace id %s", traceID, inner.TraceID())
	}
}

func TestMiddleware_HonorsIncomingTraceContext(t *testing.T) {
	shutdown := Init("crud-starter-test", "test")
	defer shutdown(context.Background()) //nolint:errcheck

	const upstream = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("traceparent", "00-"+upstream+"-00f067aa0ba902b7-01")

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Trace-Id"); got != upstream {
		t.Errorf("trace id = %s, want upstream %s", got, upstream)
	}
}
