package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/clidocs/internal/platform/markup"
)

const (
	errorNotFoundTitleKey    = "site.not_found_title"
	errorNotFoundBodyKey     = "site.not_found_body"
	errorServerErrorTitleKey = "site.server_error_title"
	errorServerErrorBodyKey  = "site.server_error_body"
	errorBackHomeKey         = "site.back_home"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorNotFoundTitleKey)
	}
	return T(loc, errorServerErrorTitleKey)
}

func errorMessage(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorNotFoundBodyKey)
	}
	return T(loc, errorServerErrorBodyKey)
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ErrorState renders the body of a localized error page.
func ErrorState(statusCode int, homeHref string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out := markup.NewWriter(w)
		out.Raw(`<section class="error-state" data-status="`)
		out.Int(normalizeErrorStatus(statusCode))
		out.Raw(`"><h1>`)
		out.Text(ErrorPageTitle(statusCode, loc))
		out.Raw(`</h1><p>`)
		out.Text(errorMessage(statusCode, loc))
		out.Raw(`</p><p><a href="`)
		out.Text(string(templ.URL(homeHref)))
		out.Raw(`">`)
		out.Text(T(loc, errorBackHomeKey))
		out.Raw(`</a></p></section>`)
		return out.Err()
	})
}
