package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/clidocs/internal/platform/markup"
	"github.com/louisbranch/clidocs/internal/services/shared/i18nhttp"
)

// NavItem is one entry of the documentation navigation.
type NavItem struct {
	Title  string
	Href   string
	Active bool
}

// TOCItem links to a section of the current page.
type TOCItem struct {
	ID    string
	Title string
}

// LayoutData carries the chrome of a documentation page.
type LayoutData struct {
	Lang       string
	Title      string
	SiteName   string
	HomeHref   string
	Stylesheet string
	Nav        []NavItem
	Languages  []i18nhttp.LanguageOption
	TOC        []TOCItem
}

// ComposePageTitle appends the site name unless the title already is it.
func ComposePageTitle(title string, siteName string) string {
	title = strings.TrimSpace(title)
	siteName = strings.TrimSpace(siteName)
	switch {
	case siteName == "":
		return title
	case title == "" || title == siteName:
		return siteName
	case strings.HasSuffix(title, " | "+siteName):
		return title
	default:
		return title + " | " + siteName
	}
}

// Layout renders the full HTML document around its children.
func Layout(data LayoutData, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		out := markup.NewWriter(w)
		out.Raw(`<!doctype html><html lang="`)
		out.Text(data.Lang)
		out.Raw(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		out.Text(ComposePageTitle(data.Title, data.SiteName))
		out.Raw(`</title>`)
		if data.Stylesheet != "" {
			out.Raw(`<link rel="stylesheet" href="`)
			out.Text(string(templ.URL(data.Stylesheet)))
			out.Raw(`">`)
		}
		out.Raw(`</head><body><a class="skip-link" href="#main">`)
		out.Text(T(loc, "site.skip_to_content"))
		out.Raw(`</a><header class="site-header"><a class="site-name" href="`)
		out.Text(string(templ.URL(data.HomeHref)))
		out.Raw(`">`)
		out.Text(data.SiteName)
		out.Raw(`</a>`)
		writeLanguageSwitcher(out, data.Languages, loc)
		out.Raw(`</header><div class="site-body">`)
		writeNav(out, data.Nav, loc)
		out.Raw(`<main id="main">`)
		if out.Err() != nil {
			return out.Err()
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		out.Raw(`</main>`)
		writeTOC(out, data.TOC, loc)
		out.Raw(`</div><footer class="site-footer"><p>`)
		out.Text(T(loc, "site.footer"))
		out.Raw(`</p></footer></body></html>`)
		return out.Err()
	})
}

func writeNav(out *markup.Writer, items []NavItem, loc Localizer) {
	if len(items) == 0 {
		return
	}
	out.Raw(`<nav class="site-nav" aria-label="`)
	out.Text(T(loc, "site.nav_label"))
	out.Raw(`"><ul>`)
	for _, item := range items {
		out.Raw(`<li><a href="`)
		out.Text(string(templ.URL(item.Href)))
		out.Raw(`"`)
		if item.Active {
			out.Raw(` aria-current="page"`)
		}
		out.Raw(`>`)
		out.Text(item.Title)
		out.Raw(`</a></li>`)
	}
	out.Raw(`</ul></nav>`)
}

func writeLanguageSwitcher(out *markup.Writer, options []i18nhttp.LanguageOption, loc Localizer) {
	if len(options) == 0 {
		return
	}
	out.Raw(`<nav class="language-switcher" aria-label="`)
	out.Text(T(loc, "site.language_label"))
	out.Raw(`"><ul>`)
	for _, option := range options {
		out.Raw(`<li><a href="`)
		out.Text(string(templ.URL(option.Href)))
		out.Raw(`" hreflang="`)
		out.Text(option.Locale.String())
		out.Raw(`" lang="`)
		out.Text(option.Locale.String())
		out.Raw(`"`)
		if option.Active {
			out.Raw(` aria-current="true"`)
		}
		out.Raw(`>`)
		out.Text(option.Label)
		out.Raw(`</a></li>`)
	}
	out.Raw(`</ul></nav>`)
}

func writeTOC(out *markup.Writer, items []TOCItem, loc Localizer) {
	if len(items) == 0 {
		return
	}
	out.Raw(`<aside class="page-toc"><h2>`)
	out.Text(T(loc, "site.on_this_page"))
	out.Raw(`</h2><ul>`)
	for _, item := range items {
		out.Raw(`<li><a href="#`)
		out.Text(item.ID)
		out.Raw(`">`)
		out.Text(item.Title)
		out.Raw(`</a></li>`)
	}
	out.Raw(`</ul></aside>`)
}
