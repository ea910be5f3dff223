package app

import (
	"net/http"

	module "github.com/louisbranch/clidocs/internal/services/web/module"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules []module.Module
	// Static serves embedded assets; nil disables the static mount.
	Static http.Handler
}
