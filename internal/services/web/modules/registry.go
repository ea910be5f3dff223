package modules

import (
	"github.com/louisbranch/clidocs/internal/services/web/modules/docs"
	"github.com/louisbranch/clidocs/internal/services/web/modules/system"
)

// Default returns the modules served by the docs site, in mount order.
func Default(deps Dependencies) []Module {
	return []Module{
		system.New(deps),
		docs.New(deps),
	}
}
