// Package docs serves the localized documentation pages.
package docs

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/clidocs/internal/services/web/module"
	"github.com/louisbranch/clidocs/internal/services/web/platform/httpx"
	"github.com/louisbranch/clidocs/internal/services/web/routepath"
)

// Module provides the documentation page routes.
type Module struct {
	deps module.Dependencies
}

// New returns a docs module backed by deps.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "docs"
}

// Mount wires documentation routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Store == nil {
		return module.Mount{}, errors.New("content store is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.deps), m.deps))
	return module.Mount{
		Prefix:  routepath.Root,
		Handler: httpx.Chain(mux, httpx.RequireReadMethod()),
	}, nil
}
