// Package i18n defines the supported site locales and tag normalization.
package i18n

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Locale is a supported base-language tag such as "en" or "zh".
type Locale string

// String returns the locale tag.
func (l Locale) String() string {
	return string(l)
}

// Tag returns the x/text language tag for the locale.
func (l Locale) Tag() language.Tag {
	return language.Make(string(l))
}

type localeEntry struct {
	Tag   string `toml:"tag"`
	Label string `toml:"label"`
}

type localeTable struct {
	Locales []localeEntry `toml:"locale"`
}

//go:embed locales.toml
var localesTOML string

var (
	supported []Locale
	labels    map[Locale]string
	matcher   language.Matcher
)

func init() {
	entries, err := parseTable(localesTOML)
	if err != nil {
		panic(err)
	}
	supported = make([]Locale, 0, len(entries))
	labels = make(map[Locale]string, len(entries))
	tags := make([]language.Tag, 0, len(entries))
	for _, entry := range entries {
		locale := Locale(entry.Tag)
		supported = append(supported, locale)
		labels[locale] = entry.Label
		tags = append(tags, locale.Tag())
	}
	matcher = language.NewMatcher(tags)
}

func parseTable(data string) ([]localeEntry, error) {
	var table localeTable
	if _, err := toml.Decode(data, &table); err != nil {
		return nil, fmt.Errorf("decode locale table: %w", err)
	}
	if len(table.Locales) == 0 {
		return nil, fmt.Errorf("locale table is empty")
	}
	seen := make(map[string]bool, len(table.Locales))
	for i, entry := range table.Locales {
		tag := strings.TrimSpace(entry.Tag)
		if tag == "" {
			return nil, fmt.Errorf("locale %d: tag is required", i)
		}
		parsed, err := language.Parse(tag)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", tag, err)
		}
		if base, _ := parsed.Base(); base.String() != tag {
			return nil, fmt.Errorf("locale %q must be a bare base language", tag)
		}
		if strings.TrimSpace(entry.Label) == "" {
			return nil, fmt.Errorf("locale %q: label is required", tag)
		}
		if seen[tag] {
			return nil, fmt.Errorf("locale %q is listed twice", tag)
		}
		seen[tag] = true
	}
	return table.Locales, nil
}

// Default returns the default locale.
func Default() Locale {
	return supported[0]
}

// DefaultTag returns the default locale as a language tag.
func DefaultTag() language.Tag {
	return Default().Tag()
}

// Supported returns the supported locales in switcher order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// SupportedTags returns the supported locales as language tags.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, 0, len(supported))
	for _, locale := range supported {
		out = append(out, locale.Tag())
	}
	return out
}

// IsSupported reports whether locale is one of the supported locales.
func IsSupported(locale Locale) bool {
	_, ok := labels[locale]
	return ok
}

// Label returns the locale's name in its own language.
func Label(locale Locale) string {
	if label, ok := labels[locale]; ok {
		return label
	}
	return locale.String()
}

// Normalize reduces a user-supplied tag to a supported locale. Region and script
// subtags are dropped ("zh-CN" -> "zh"). The bool is false when the value is
// blank, malformed, or names an unsupported language, in which case the
// default locale is returned.
func Normalize(value string) (Locale, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default(), false
	}
	// und-XX only implies a language from its region; that names no locale.
	base, confidence := tag.Base()
	if confidence < language.High {
		return Default(), false
	}
	locale := Locale(base.String())
	if !IsSupported(locale) {
		return Default(), false
	}
	return locale, true
}

// ParseTag parses value as a supported locale tag.
func ParseTag(value string) (language.Tag, bool) {
	locale, ok := Normalize(value)
	if !ok {
		return language.Und, false
	}
	return locale.Tag(), true
}

// MatchTags returns the best supported locale for the preferred tags.
func MatchTags(tags []language.Tag) Locale {
	if len(tags) == 0 {
		return Default()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(supported) {
		return Default()
	}
	return supported[index]
}

// MatchAcceptLanguage resolves an Accept-Language header to a supported locale.
func MatchAcceptLanguage(header string) Locale {
	header = strings.TrimSpace(header)
	if header == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return Default()
	}
	return MatchTags(tags)
}
