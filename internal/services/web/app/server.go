package app

import (
	"net/http"

	module "github.com/louisbranch/clidocs/internal/services/web/module"
	"github.com/louisbranch/clidocs/internal/services/web/routepath"
)

// BuildRootHandler composes a root mux from the configured modules and the
// static asset handler.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	var extra []module.Mount
	if cfg.Static != nil {
		extra = append(extra, module.Mount{
			Prefix:  routepath.StaticPrefix,
			Handler: http.StripPrefix(routepath.StaticPrefix, cfg.Static),
		})
	}
	return Compose(ComposeInput{Modules: cfg.Modules, Extra: extra})
}
