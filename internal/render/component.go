package render

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/clidocs/internal/platform/markup"
)

// Component returns the HTML markup of doc. Output depends only on doc.
func Component(doc Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := markup.NewWriter(w)
		out.Raw(`<article class="doc" data-page="`)
		out.Text(doc.Page)
		out.Raw(`" lang="`)
		out.Text(doc.Locale)
		out.Raw(`"><header class="doc-hero"><h1>`)
		out.Text(doc.Title)
		out.Raw(`</h1><p class="doc-subtitle">`)
		out.Text(doc.Subtitle)
		out.Raw(`</p>`)
		if doc.IntroHTML != "" {
			out.Raw(`<div class="doc-intro">`)
			out.Raw(doc.IntroHTML)
			out.Raw(`</div>`)
		}
		out.Raw(`</header>`)
		for _, block := range doc.Blocks {
			writeBlock(out, block)
		}
		out.Raw(`</article>`)
		return out.Err()
	})
}

func writeBlock(out *markup.Writer, block Block) {
	out.Raw(`<section class="doc-section doc-section--`)
	out.Text(string(block.Layout))
	out.Raw(`" id="`)
	out.Text(block.ID)
	out.Raw(`" data-section="`)
	out.Text(block.ID)
	out.Raw(`" data-kind="`)
	out.Text(string(block.Kind))
	out.Raw(`"><h2>`)
	out.Text(block.Title)
	out.Raw(`</h2>`)
	if block.Description != "" {
		out.Raw(`<p class="doc-section-description">`)
		out.Text(block.Description)
		out.Raw(`</p>`)
	}
	switch block.Layout {
	case LayoutTable:
		writeTable(out, block.Table)
	case LayoutTimeline:
		writeTimeline(out, block.Items)
	case LayoutCards:
		writeCards(out, block.Items)
	case LayoutCode:
		writeCode(out, block.Items)
	case LayoutLinks:
		writeLinks(out, block.Items)
	}
	out.Raw(`</section>`)
}

func writeTable(out *markup.Writer, table *Table) {
	if table == nil {
		return
	}
	out.Raw(`<div class="doc-table-wrap"><table class="doc-table"><thead><tr>`)
	for _, column := range table.Columns {
		out.Raw(`<th scope="col">`)
		out.Text(column)
		out.Raw(`</th>`)
	}
	out.Raw(`</tr></thead><tbody>`)
	for _, row := range table.Rows {
		out.Raw(`<tr data-entry>`)
		for _, cell := range row {
			out.Raw(`<td>`)
			if cell.Code {
				out.Raw(`<code>`)
				out.Text(cell.Text)
				out.Raw(`</code>`)
			} else {
				out.Text(cell.Text)
			}
			out.Raw(`</td>`)
		}
		out.Raw(`</tr>`)
	}
	out.Raw(`</tbody></table></div>`)
}

func writeTimeline(out *markup.Writer, items []Item) {
	out.Raw(`<ol class="doc-timeline">`)
	for _, item := range items {
		out.Raw(`<li data-entry><h3>`)
		out.Text(item.Title)
		out.Raw(`</h3><p>`)
		out.Text(item.Body)
		out.Raw(`</p>`)
		if item.Code == Placeholder {
			out.Raw(`<p class="doc-timeline-command">`)
			out.Text(item.Code)
			out.Raw(`</p>`)
		} else {
			out.Raw(`<pre class="doc-timeline-command"><code>`)
			out.Text(item.Code)
			out.Raw(`</code></pre>`)
		}
		out.Raw(`</li>`)
	}
	out.Raw(`</ol>`)
}

func writeCards(out *markup.Writer, items []Item) {
	out.Raw(`<div class="doc-cards">`)
	for _, item := range items {
		out.Raw(`<div class="doc-card" data-entry><h3>`)
		out.Text(item.Title)
		out.Raw(`</h3><p>`)
		out.Text(item.Body)
		out.Raw(`</p></div>`)
	}
	out.Raw(`</div>`)
}

func writeCode(out *markup.Writer, items []Item) {
	for _, item := range items {
		out.Raw(`<figure class="doc-code" data-entry><figcaption>`)
		out.Text(item.Title)
		out.Raw(`</figcaption><pre><code class="language-`)
		out.Text(item.Language)
		out.Raw(`">`)
		out.Text(item.Code)
		out.Raw(`</code></pre></figure>`)
	}
}

func writeLinks(out *markup.Writer, items []Item) {
	out.Raw(`<ul class="doc-links">`)
	for _, item := range items {
		out.Raw(`<li data-entry><a href="`)
		out.Text(string(templ.URL(item.Href)))
		out.Raw(`"><span class="doc-link-title">`)
		out.Text(item.Title)
		out.Raw(`</span><span class="doc-link-description">`)
		out.Text(item.Body)
		out.Raw(`</span></a></li>`)
	}
	out.Raw(`</ul>`)
}
