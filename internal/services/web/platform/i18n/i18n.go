// Package i18n resolves the site-chrome localizer for web requests.
package i18n

import (
	"net/http"

	platformi18n "github.com/louisbranch/clidocs/internal/platform/i18n"
	"github.com/louisbranch/clidocs/internal/platform/i18n/catalog"
	"github.com/louisbranch/clidocs/internal/services/shared/i18nhttp"
	webtemplates "github.com/louisbranch/clidocs/internal/services/web/templates"
)

// Localizer aliases the template localizer contract.
type Localizer = webtemplates.Localizer

// For returns the chrome localizer of locale.
func For(locale platformi18n.Locale) Localizer {
	return catalog.Default().Printer(locale.String())
}

// ResolveLocalizer resolves the request language for pages without a locale
// segment and persists an explicit ?lang choice as a cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (Localizer, platformi18n.Locale) {
	locale, persist := i18nhttp.ResolveLocale(r)
	if persist {
		i18nhttp.SetLanguageCookie(w, locale)
	}
	return For(locale), locale
}
