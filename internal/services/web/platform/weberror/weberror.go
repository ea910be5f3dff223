// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	platformi18n "github.com/louisbranch/clidocs/internal/platform/i18n"
	"github.com/louisbranch/clidocs/internal/services/shared/i18nhttp"
	apperrors "github.com/louisbranch/clidocs/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/clidocs/internal/services/web/platform/i18n"
	"github.com/louisbranch/clidocs/internal/services/web/platform/pagerender"
	"github.com/louisbranch/clidocs/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/clidocs/internal/services/web/templates"
)

// Options carries the chrome of an error page.
type Options struct {
	SiteName string
	// Locale pins the page language; when empty it is resolved from the request.
	Locale platformi18n.Locale
}

// ShouldRenderAppError reports whether status should use the error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, opts Options) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	loc, locale := resolveLocalizer(w, r, opts.Locale)
	homeHref := routepath.Page(locale, routepath.HomePage)
	languages := i18nhttp.BuildLanguageOptions(locale, languageHref(r, opts.Locale))
	page := pagerender.Page{
		StatusCode:      statusCode,
		ContentLanguage: locale.String(),
		Layout: webtemplates.LayoutData{
			Lang:       locale.String(),
			Title:      webtemplates.ErrorPageTitle(statusCode, loc),
			SiteName:   opts.SiteName,
			HomeHref:   homeHref,
			Stylesheet: routepath.Stylesheet,
			Languages:  languages,
		},
		Body: webtemplates.ErrorState(statusCode, homeHref, loc),
	}
	if err := pagerender.WritePage(w, r, loc, page); err != nil {
		http.Error(w, PublicMessage(loc, err), statusCode)
	}
}

// WriteModuleError writes a localized error response for err.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, opts Options) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, opts)
		return
	}
	loc, _ := resolveLocalizer(w, r, opts.Locale)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

// languageHref links each language from an error page. A pinned locale comes
// from the path, so switching goes to that locale's home page; otherwise the
// lang param re-renders the same URL.
func languageHref(r *http.Request, pinned platformi18n.Locale) func(platformi18n.Locale) string {
	if platformi18n.IsSupported(pinned) || r == nil || r.URL == nil {
		return func(locale platformi18n.Locale) string {
			return routepath.Page(locale, routepath.HomePage)
		}
	}
	return func(locale platformi18n.Locale) string {
		return i18nhttp.LanguageURL(r.URL.Path, r.URL.RawQuery, locale)
	}
}

func resolveLocalizer(w http.ResponseWriter, r *http.Request, pinned platformi18n.Locale) (webi18n.Localizer, platformi18n.Locale) {
	if platformi18n.IsSupported(pinned) {
		return webi18n.For(pinned), pinned
	}
	return webi18n.ResolveLocalizer(w, r)
}
