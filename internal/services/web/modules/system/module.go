// Package system serves operational endpoints under the /_/ prefix.
package system

import (
	"net/http"

	module "github.com/louisbranch/clidocs/internal/services/web/module"
	"github.com/louisbranch/clidocs/internal/services/web/platform/httpx"
	"github.com/louisbranch/clidocs/internal/services/web/platform/observability"
	"github.com/louisbranch/clidocs/internal/services/web/routepath"
)

// Module provides health and metrics routes.
type Module struct {
	metrics *observability.Metrics
}

// New returns a system module exposing metrics.
func New(deps module.Dependencies) Module {
	return Module{metrics: deps.Metrics}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "system"
}

// Mount wires system routes under the /_/ prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(routepath.Health, handleHealth)
	if m.metrics != nil {
		mux.Handle(routepath.Metrics, m.metrics.Handler())
	}
	return module.Mount{
		Prefix:  routepath.SystemPrefix,
		Handler: httpx.Chain(mux, httpx.RequireReadMethod()),
	}, nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
