package system

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/clidocs/internal/services/web/module"
	"github.com/louisbranch/clidocs/internal/services/web/platform/observability"
	"github.com/louisbranch/clidocs/internal/services/web/routepath"
)

func TestMountServesHealth(t *testing.T) {
	t.Parallel()

	mount, err := New(module.Dependencies{}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.SystemPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.SystemPrefix)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = %d %q", rr.Code, rr.Body.String())
	}
}

func TestMountServesMetricsWhenConfigured(t *testing.T) {
	t.Parallel()

	metrics := observability.NewMetrics()
	metrics.ObserveRender("home", "en", false)
	mount, err := New(module.Dependencies{Metrics: metrics}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Metrics, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "clidocs_docs_page_renders_total") {
		t.Fatal("metrics body missing page renders")
	}
}

func TestMountWithoutMetricsReturnsNotFound(t *testing.T) {
	t.Parallel()

	mount, _ := New(module.Dependencies{}).Mount()
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Metrics, nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestID(t *testing.T) {
	t.Parallel()

	if got := New(module.Dependencies{}).ID(); got != "system" {
		t.Fatalf("ID() = %q", got)
	}
}
