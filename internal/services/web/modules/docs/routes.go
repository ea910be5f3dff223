package docs

import (
	"net/http"

	"github.com/louisbranch/clidocs/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(routepath.RootExactPattern, h.handleHome)
	mux.HandleFunc(routepath.DocsIndexPattern, h.handleDocsIndex)
	mux.HandleFunc(routepath.DocsBarePattern, h.handleDocsIndex)
	mux.HandleFunc(routepath.DocPattern, h.handleDoc)
	mux.HandleFunc(routepath.LocaleBarePattern, h.handleLocaleBare)
	mux.HandleFunc(routepath.LocaleRootPattern, h.handleLocaleHome)
	mux.HandleFunc(routepath.LocaleDocPattern, h.handleLocaleDoc)
	mux.HandleFunc(routepath.RestPattern, h.handleNotFound)
}
