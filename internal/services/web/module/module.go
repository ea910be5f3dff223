// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/clidocs/internal/content"
	"github.com/louisbranch/clidocs/internal/services/web/platform/observability"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Dependencies carries the shared collaborators modules are built from.
type Dependencies struct {
	Store    *content.Store
	SiteName string
	Logger   *zap.Logger
	Metrics  *observability.Metrics
	Tracer   trace.Tracer
}
