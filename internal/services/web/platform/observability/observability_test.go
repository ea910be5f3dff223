package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerLogsMethodPathAndStatus(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	h := RequestLogger(zap.New(core), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/docs/installation", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "GET" || fields["path"] != "/docs/installation" || fields["request_id"] != "req-123" {
		t.Fatalf("fields = %v", fields)
	}
	if fields["status"] != int64(http.StatusNoContent) {
		t.Fatalf("status field = %v, want %d", fields["status"], http.StatusNoContent)
	}
}

func TestRequestLoggerCapturesImplicitStatusOKAndBytes(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	metrics := NewMetrics()
	h := RequestLogger(zap.New(core), metrics)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/_/health", nil))
	fields := logs.All()[0].ContextMap()
	if fields["status"] != int64(http.StatusOK) || fields["bytes"] != int64(2) {
		t.Fatalf("fields = %v", fields)
	}
	if _, ok := fields["latency"]; !ok {
		t.Fatalf("fields missing latency: %v", fields)
	}
	if got := testutil.CollectAndCount(metrics.requestDuration); got != 1 {
		t.Fatalf("request duration series = %d, want 1", got)
	}
}

func TestRequestMetricsCollapseUnknownMethods(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics()
	h := RequestLogger(zap.NewNop(), metrics)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	for _, method := range []string{"FOO", "BAR", "PURGE", http.MethodPost} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, "/docs/installation", nil))
	}

	if got := testutil.CollectAndCount(metrics.requestDuration); got != 2 {
		t.Fatalf("request duration series = %d, want 2", got)
	}
	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/_/metrics", nil))
	want := `clidocs_http_request_duration_seconds_count{code="405",method="other"} 3`
	if !strings.Contains(rr.Body.String(), want) {
		t.Fatalf("metrics body missing %q", want)
	}
}

func TestObserveRenderCountsFallbacks(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics()
	metrics.ObserveRender("home", "zh", false)
	metrics.ObserveRender("home", "en", true)
	metrics.ObserveRender("home", "en", true)

	if got := testutil.ToFloat64(metrics.pageRenders.WithLabelValues("home", "en")); got != 2 {
		t.Fatalf("home/en renders = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.localeFallbacks.WithLabelValues("home")); got != 2 {
		t.Fatalf("home fallbacks = %v, want 2", got)
	}
}

func TestMetricsHandlerExposesCollectors(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics()
	metrics.ObserveRender("config-api", "en", false)
	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/_/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{`clidocs_docs_page_renders_total{locale="en",page="config-api"} 1`, "go_goroutines"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("metrics body missing %q", marker)
		}
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	t.Parallel()

	var metrics *Metrics
	metrics.ObserveRender("home", "en", true)
	if metrics.Registry() != nil {
		t.Fatal("expected nil registry")
	}
	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
