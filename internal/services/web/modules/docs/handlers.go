package docs

import (
	"net/http"
	"strings"

	platformi18n "github.com/louisbranch/clidocs/internal/platform/i18n"
	module "github.com/louisbranch/clidocs/internal/services/web/module"
	"github.com/louisbranch/clidocs/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/clidocs/internal/services/web/platform/i18n"
	"github.com/louisbranch/clidocs/internal/services/web/platform/pagerender"
	"github.com/louisbranch/clidocs/internal/services/web/platform/weberror"
	"github.com/louisbranch/clidocs/internal/services/web/routepath"
	"go.uber.org/zap"
)

type handlers struct {
	service  service
	siteName string
	logger   *zap.Logger
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, siteName: deps.SiteName, logger: s.logger}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, routepath.HomePage, platformi18n.Default().String(), "")
}

func (h handlers) handleDocsIndex(w http.ResponseWriter, r *http.Request) {
	httpx.WritePermanentRedirect(w, r, routepath.Root)
}

func (h handlers) handleDoc(w http.ResponseWriter, r *http.Request) {
	pageID := r.PathValue("page")
	if pageID == routepath.HomePage {
		httpx.WritePermanentRedirect(w, r, routepath.Page(platformi18n.Default(), pageID))
		return
	}
	h.writePage(w, r, pageID, platformi18n.Default().String(), "")
}

// handleLocaleBare answers one-segment paths without a trailing slash. Only
// supported locales redirect to their root; anything else is not a page.
func (h handlers) handleLocaleBare(w http.ResponseWriter, r *http.Request) {
	locale, supported := platformi18n.Normalize(r.PathValue("locale"))
	if !supported {
		h.handleNotFound(w, r)
		return
	}
	httpx.WritePermanentRedirect(w, r, routepath.Page(locale, routepath.HomePage))
}

func (h handlers) handleLocaleHome(w http.ResponseWriter, r *http.Request) {
	h.writeLocalizedPage(w, r, r.PathValue("locale"), routepath.HomePage, false)
}

func (h handlers) handleLocaleDoc(w http.ResponseWriter, r *http.Request) {
	h.writeLocalizedPage(w, r, r.PathValue("locale"), r.PathValue("page"), true)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, weberror.Options{SiteName: h.siteName})
}

// writeLocalizedPage applies the locale-segment policy. The default locale and
// non-canonical spellings of supported locales redirect to the canonical path;
// unsupported values render the default-locale record in place.
func (h handlers) writeLocalizedPage(w http.ResponseWriter, r *http.Request, rawLocale string, pageID string, underDocs bool) {
	locale, supported := platformi18n.Normalize(rawLocale)
	if !supported {
		h.writePage(w, r, pageID, rawLocale, "")
		return
	}
	if locale == platformi18n.Default() || locale.String() != rawLocale || (underDocs && pageID == routepath.HomePage) {
		httpx.WritePermanentRedirect(w, r, routepath.Page(locale, pageID))
		return
	}
	h.writePage(w, r, pageID, rawLocale, locale)
}

// writePage renders pageID. A non-empty pinned locale fixes the language of
// the error page; otherwise it is resolved from the request.
func (h handlers) writePage(w http.ResponseWriter, r *http.Request, pageID string, requested string, pinned platformi18n.Locale) {
	pageID = strings.TrimSpace(pageID)
	view, err := h.service.page(httpx.RequestContext(r), pageID, requested)
	if err != nil {
		weberror.WriteModuleError(w, r, err, weberror.Options{SiteName: h.siteName, Locale: pinned})
		return
	}
	err = pagerender.WritePage(w, r, webi18n.For(view.chrome), pagerender.Page{
		ContentLanguage: view.contentLanguage,
		Layout:          view.layout,
		Body:            view.body,
	})
	if err != nil {
		h.logger.Error("render page",
			zap.String("page", pageID),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err),
		)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, weberror.Options{SiteName: h.siteName, Locale: view.chrome})
	}
}
