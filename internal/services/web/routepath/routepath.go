// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"

	platformi18n "github.com/louisbranch/clidocs/internal/platform/i18n"
)

const (
	Root              = "/"
	DocsPrefix        = "/docs/"
	DocsIndexPattern  = DocsPrefix + "{$}"
	DocsBarePattern   = "/docs"
	DocPattern        = DocsPrefix + "{page}"
	LocaleRootPattern = "/{locale}/{$}"
	LocaleBarePattern = "/{locale}"
	LocaleDocPattern  = "/{locale}" + DocsPrefix + "{page}"
	RestPattern       = "/{rest...}"
	RootExactPattern  = "/{$}"
	SystemPrefix      = "/_/"
	Health            = SystemPrefix + "health"
	Metrics           = SystemPrefix + "metrics"
	StaticPrefix      = "/static/"
	Stylesheet        = StaticPrefix + "site.css"
	HomePage          = "home"
)

// Page returns the canonical path of pageID in locale. The default locale has
// no prefix and the home page is the locale root.
func Page(locale platformi18n.Locale, pageID string) string {
	prefix := ""
	if locale != platformi18n.Default() {
		prefix = "/" + escapeSegment(locale.String())
	}
	pageID = strings.TrimSpace(pageID)
	if pageID == "" || pageID == HomePage {
		return prefix + "/"
	}
	return prefix + DocsPrefix + escapeSegment(pageID)
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
