// Package i18nhttp resolves the request language for pages whose URL does not
// carry a locale.
package i18nhttp

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/clidocs/internal/platform/i18n"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the reader's language preference.
	LangCookieName = "clidocs_lang"
)

// LanguageOption is one entry of a language switcher.
type LanguageOption struct {
	Locale platformi18n.Locale
	Label  string
	Href   string
	Active bool
}

// ResolveLocale determines the best supported locale for the request from the
// lang query parameter, the language cookie and then Accept-Language.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveLocale(r *http.Request) (platformi18n.Locale, bool) {
	if r == nil {
		return platformi18n.Default(), false
	}
	if r.URL != nil {
		if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
			if locale, ok := platformi18n.Normalize(langValue); ok {
				return locale, true
			}
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if locale, ok := platformi18n.Normalize(cookie.Value); ok {
			return locale, false
		}
	}
	return platformi18n.MatchAcceptLanguage(r.Header.Get("Accept-Language")), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, locale platformi18n.Locale) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    locale.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// BuildLanguageOptions returns one option per supported locale in switcher order.
func BuildLanguageOptions(active platformi18n.Locale, hrefFor func(platformi18n.Locale) string) []LanguageOption {
	supported := platformi18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, locale := range supported {
		href := ""
		if hrefFor != nil {
			href = hrefFor(locale)
		}
		options = append(options, LanguageOption{
			Locale: locale,
			Label:  platformi18n.Label(locale),
			Href:   href,
			Active: locale == active,
		})
	}
	return options
}

// LanguageURL returns the URL with the language param updated.
func LanguageURL(path string, rawQuery string, locale platformi18n.Locale) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, locale.String())
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
