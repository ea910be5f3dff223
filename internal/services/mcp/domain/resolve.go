package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/clidocs/internal/content"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ResolvePageInput represents the MCP tool input for resolving a page.
type ResolvePageInput struct {
	Page   string `json:"page" jsonschema:"page identifier such as installation or config-api"`
	Locale string `json:"locale,omitempty" jsonschema:"requested locale; unsupported values fall back to en"`
}

// ResolvePageResult reports which record the resolver served.
type ResolvePageResult struct {
	Page      string   `json:"page"`
	Requested string   `json:"requested"`
	Served    string   `json:"served"`
	Fallback  bool     `json:"fallback"`
	Title     string   `json:"title"`
	URI       string   `json:"uri"`
	Sections  []string `json:"sections"`
}

// ResolvePageTool defines the MCP tool schema for resolving a page.
func ResolvePageTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "resolve_page",
		Description: "Resolves a documentation page for a locale and reports whether English was served instead",
	}
}

// ResolvePageHandler resolves a page against store.
func ResolvePageHandler(store *content.Store) mcp.ToolHandlerFor[ResolvePageInput, ResolvePageResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ResolvePageInput) (*mcp.CallToolResult, ResolvePageResult, error) {
		if store == nil {
			return nil, ResolvePageResult{}, fmt.Errorf("content store is not configured")
		}
		pageID := strings.TrimSpace(input.Page)
		page, ok := store.Page(pageID)
		if !ok {
			return nil, ResolvePageResult{}, fmt.Errorf("page %q not found", pageID)
		}
		record, resolution := page.ResolveDetailed(input.Locale)
		result := ResolvePageResult{
			Page:      pageID,
			Requested: resolution.Requested,
			Served:    string(resolution.Served),
			Fallback:  resolution.Fallback,
			Title:     record.Title,
			URI:       PageURI(resolution.Served, pageID),
			Sections:  make([]string, 0, len(record.Sections)),
		}
		for _, section := range record.Sections {
			result.Sections = append(result.Sections, section.ID)
		}
		return nil, result, nil
	}
}
