// Package pagerender centralizes page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/clidocs/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/clidocs/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/clidocs/internal/services/web/templates"
)

// Page describes a full-page response.
type Page struct {
	StatusCode int
	// ContentLanguage is sent as the Content-Language header when set.
	ContentLanguage string
	Layout          webtemplates.LayoutData
	Body            templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page into a buffer and writes it only when rendering succeeds.
func WritePage(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := webtemplates.Layout(page.Layout, loc).Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if page.ContentLanguage != "" {
		w.Header().Set("Content-Language", page.ContentLanguage)
	}
	w.WriteHeader(statusCode)
	if r != nil && r.Method == http.MethodHead {
		return nil
	}
	_, _ = w.Write(buf.Bytes())
	return nil
}
