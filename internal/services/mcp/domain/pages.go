package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/louisbranch/clidocs/internal/content"
	platformi18n "github.com/louisbranch/clidocs/internal/platform/i18n"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// Scheme prefixes every docs resource URI.
	Scheme = "docs"
	// PagesURI names the page index resource.
	PagesURI = Scheme + "://pages"
	// PageURITemplate addresses one page in one locale.
	PageURITemplate = Scheme + "://{locale}/{page}"

	jsonMIMEType = "application/json"
)

// PageIndexEntry describes one page in the index resource.
type PageIndexEntry struct {
	ID      string                `json:"id"`
	Title   string                `json:"title"`
	URI     string                `json:"uri"`
	Locales []platformi18n.Locale `json:"locales"`
}

// PageIndexPayload is the body of the page index resource.
type PageIndexPayload struct {
	DefaultLocale    platformi18n.Locale   `json:"defaultLocale"`
	SupportedLocales []platformi18n.Locale `json:"supportedLocales"`
	Pages            []PageIndexEntry      `json:"pages"`
}

// PageURI builds the resource URI for a page in a locale.
func PageURI(locale platformi18n.Locale, pageID string) string {
	return fmt.Sprintf("%s://%s/%s", Scheme, locale, pageID)
}

// PagesResource defines the MCP resource listing every documentation page.
func PagesResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "docs_pages",
		Title:       "Documentation pages",
		Description: "Index of documentation pages with their authored locales.",
		MIMEType:    jsonMIMEType,
		URI:         PagesURI,
	}
}

// PagesResourceHandler returns the page index resource.
func PagesResourceHandler(store *content.Store) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if store == nil {
			return nil, fmt.Errorf("content store is not configured")
		}
		payload := PageIndexPayload{
			DefaultLocale:    platformi18n.Default(),
			SupportedLocales: platformi18n.Supported(),
		}
		for _, id := range store.Pages() {
			page, ok := store.Page(id)
			if !ok {
				continue
			}
			record := page.Resolve(string(platformi18n.Default()))
			payload.Pages = append(payload.Pages, PageIndexEntry{
				ID:      id,
				Title:   record.Title,
				URI:     PageURI(platformi18n.Default(), id),
				Locales: page.Locales(),
			})
		}
		return jsonResult(PagesURI, payload)
	}
}

// PageResourceTemplate defines the MCP resource template for one localized page.
func PageResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "docs_page",
		Title:       "Documentation page",
		Description: "Content record for one page. URI format: docs://{locale}/{page}. Unsupported or unauthored locales fall back to English.",
		MIMEType:    jsonMIMEType,
		URITemplate: PageURITemplate,
	}
}

// PageResourceHandler returns the resolved content record for a page URI.
func PageResourceHandler(store *content.Store) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if store == nil {
			return nil, fmt.Errorf("content store is not configured")
		}
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("page URI is required; use URI format %s", PageURITemplate)
		}
		uri := req.Params.URI
		locale, pageID, err := ParsePageURI(uri)
		if err != nil {
			return nil, err
		}
		record, ok := store.Resolve(pageID, locale)
		if !ok {
			return nil, mcp.ResourceNotFoundError(uri)
		}
		return jsonResult(uri, record)
	}
}

// ParsePageURI extracts the locale and page ID from docs://{locale}/{page}.
func ParsePageURI(uri string) (locale string, pageID string, err error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("parse page URI %q: %w", uri, err)
	}
	if parsed.Scheme != Scheme {
		return "", "", fmt.Errorf("page URI %q must use the %s scheme", uri, Scheme)
	}
	pageID = strings.Trim(parsed.Path, "/")
	if parsed.Host == "" || pageID == "" || strings.Contains(pageID, "/") {
		return "", "", fmt.Errorf("page URI %q must match %s", uri, PageURITemplate)
	}
	return parsed.Host, pageID, nil
}

func jsonResult(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: jsonMIMEType,
				Text:     string(data),
			},
		},
	}, nil
}
