package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	platformi18n "github.com/louisbranch/clidocs/internal/platform/i18n"
	"github.com/louisbranch/clidocs/internal/platform/i18n/catalog"
	"gopkg.in/yaml.v3"
)

const labelNamespace = "content"

// LabelSource supplies the per-locale label messages of the content namespace.
type LabelSource interface {
	NamespaceMessages(locale string, namespace string) map[string]string
}

type pageFile struct {
	Page     string    `yaml:"page"`
	Locale   string    `yaml:"locale"`
	Order    int       `yaml:"order"`
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Intro    string    `yaml:"intro"`
	Sections []Section `yaml:"sections"`
}

// Page owns the authored records of one documentation page.
type Page struct {
	id      string
	order   int
	records map[platformi18n.Locale]Record
}

// Store holds every page loaded from the content tree.
type Store struct {
	pages map[string]*Page
	order []string
}

//go:embed pages/*/*.yaml
var embeddedPagesFS embed.FS

var defaultStore = mustLoadEmbedded()

// Default returns the process-wide store built from the embedded pages.
func Default() *Store {
	return defaultStore
}

// LoadEmbedded loads the embedded pages with labels from the default catalog.
func LoadEmbedded() (*Store, error) {
	return Load(embeddedPagesFS, catalog.Default())
}

// Load reads pages/<page>/<locale>.yaml files from pagesFS and validates them.
func Load(pagesFS fs.FS, labels LabelSource) (*Store, error) {
	if labels == nil {
		return nil, fmt.Errorf("label source is required")
	}
	paths, err := fs.Glob(pagesFS, "pages/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no page files found")
	}
	sort.Strings(paths)

	files := make(map[string]map[platformi18n.Locale]pageFile)
	for _, filePath := range paths {
		file, err := readPageFile(pagesFS, filePath)
		if err != nil {
			return nil, err
		}
		locale := platformi18n.Locale(file.Locale)
		if files[file.Page] == nil {
			files[file.Page] = make(map[platformi18n.Locale]pageFile)
		}
		files[file.Page][locale] = file
	}

	store := &Store{pages: make(map[string]*Page, len(files))}
	for id, byLocale := range files {
		page, err := buildPage(id, byLocale, labels)
		if err != nil {
			return nil, err
		}
		store.pages[id] = page
		store.order = append(store.order, id)
	}
	sort.Slice(store.order, func(i, j int) bool {
		a, b := store.pages[store.order[i]], store.pages[store.order[j]]
		if a.order != b.order {
			return a.order < b.order
		}
		return a.id < b.id
	})
	return store, nil
}

func readPageFile(pagesFS fs.FS, filePath string) (pageFile, error) {
	data, err := fs.ReadFile(pagesFS, filePath)
	if err != nil {
		return pageFile{}, fmt.Errorf("read page %s: %w", filePath, err)
	}
	var file pageFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return pageFile{}, fmt.Errorf("parse page %s: %w", filePath, err)
	}

	pageFromPath := path.Base(path.Dir(filePath))
	localeFromPath := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	file.Page = strings.TrimSpace(file.Page)
	file.Locale = strings.TrimSpace(file.Locale)
	if file.Page != pageFromPath {
		return pageFile{}, fmt.Errorf("page %s: page %q must match directory %q", filePath, file.Page, pageFromPath)
	}
	if file.Locale != localeFromPath {
		return pageFile{}, fmt.Errorf("page %s: locale %q must match filename %q", filePath, file.Locale, localeFromPath)
	}
	if !platformi18n.IsSupported(platformi18n.Locale(file.Locale)) {
		return pageFile{}, fmt.Errorf("page %s: locale %q is not supported", filePath, file.Locale)
	}
	return file, nil
}

func buildPage(id string, files map[platformi18n.Locale]pageFile, labels LabelSource) (*Page, error) {
	baseLocale := platformi18n.Default()
	baseFile, ok := files[baseLocale]
	if !ok {
		return nil, fmt.Errorf("page %s: %s content is required", id, baseLocale)
	}
	page := &Page{
		id:      id,
		order:   baseFile.Order,
		records: make(map[platformi18n.Locale]Record, len(files)),
	}

	base := toRecord(baseFile, labelsFor(labels, baseLocale))
	if err := validateRecord(base); err != nil {
		return nil, fmt.Errorf("page %s/%s: %w", id, baseLocale, err)
	}
	page.records[baseLocale] = base

	for locale, file := range files {
		if locale == baseLocale {
			continue
		}
		record := toRecord(file, labelsFor(labels, locale))
		if err := validateRecord(record); err != nil {
			return nil, fmt.Errorf("page %s/%s: %w", id, locale, err)
		}
		if err := validateParity(base, record); err != nil {
			return nil, fmt.Errorf("page %s/%s: %w", id, locale, err)
		}
		page.records[locale] = record
	}
	return page, nil
}

func toRecord(file pageFile, labels Labels) Record {
	return Record{
		Page:     file.Page,
		Locale:   platformi18n.Locale(file.Locale),
		Title:    strings.TrimSpace(file.Title),
		Subtitle: strings.TrimSpace(file.Subtitle),
		Intro:    strings.TrimSpace(file.Intro),
		Labels:   labels,
		Sections: file.Sections,
	}
}

func labelsFor(source LabelSource, locale platformi18n.Locale) Labels {
	messages := source.NamespaceMessages(locale.String(), labelNamespace)
	get := func(name string) string {
		return messages[labelNamespace+"."+name]
	}
	return Labels{
		Command:     get("command"),
		Description: get("description"),
		Usage:       get("usage"),
		Key:         get("key"),
		Type:        get("type"),
		Default:     get("default"),
		Options:     get("options"),
		Required:    get("required"),
		Example:     get("example"),
		Name:        get("name"),
		Yes:         get("yes"),
		No:          get("no"),
	}
}

func mustLoadEmbedded() *Store {
	store, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return store
}

// Pages returns page ids in site order.
func (s *Store) Pages() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Page returns the page with id.
func (s *Store) Page(id string) (*Page, bool) {
	if s == nil {
		return nil, false
	}
	page, ok := s.pages[strings.TrimSpace(id)]
	return page, ok
}

// Resolve resolves a page record. The bool is false only for unknown pages.
func (s *Store) Resolve(pageID string, locale string) (Record, bool) {
	page, ok := s.Page(pageID)
	if !ok {
		return Record{}, false
	}
	return page.Resolve(locale), true
}

// ID returns the page id.
func (p *Page) ID() string {
	return p.id
}

// Locales returns the locales authored for the page in switcher order.
func (p *Page) Locales() []platformi18n.Locale {
	out := make([]platformi18n.Locale, 0, len(p.records))
	for _, locale := range platformi18n.Supported() {
		if _, ok := p.records[locale]; ok {
			out = append(out, locale)
		}
	}
	return out
}

// Resolution describes how a requested locale was served.
type Resolution struct {
	// Requested is the raw locale value.
	Requested string
	// Matched is the supported locale the value normalized to; it is the
	// default locale when Supported is false.
	Matched platformi18n.Locale
	// Supported reports whether the requested value names a supported locale.
	Supported bool
	// Served is the locale of the returned record.
	Served platformi18n.Locale
	// Fallback reports whether Served differs from the requested language.
	Fallback bool
}

// Resolve returns the page record for locale. It never fails.
func (p *Page) Resolve(locale string) Record {
	record, _ := p.ResolveDetailed(locale)
	return record
}

// ResolveDetailed returns the page record for locale and how it was chosen.
func (p *Page) ResolveDetailed(locale string) (Record, Resolution) {
	matched, supported := platformi18n.Normalize(locale)
	resolution := Resolution{
		Requested: locale,
		Matched:   matched,
		Supported: supported,
	}
	record, ok := p.records[matched]
	if !ok {
		matched = platformi18n.Default()
		record = p.records[matched]
	}
	resolution.Served = matched
	resolution.Fallback = !supported || matched != resolution.Matched
	return record.Clone(), resolution
}
