// Package render projects content records into document trees and HTML.
package render

import (
	"bytes"
	"html"
	"strings"

	"github.com/louisbranch/clidocs/internal/content"
	"github.com/yuin/goldmark"
)

// Placeholder stands in for any missing optional field.
const Placeholder = "—"

// Layout is the visual template a block is drawn with.
type Layout string

const (
	LayoutTable    Layout = "table"
	LayoutTimeline Layout = "timeline"
	LayoutCards    Layout = "cards"
	LayoutCode     Layout = "code"
	LayoutLinks    Layout = "links"
)

// Document is the display tree of one page.
type Document struct {
	Page      string
	Locale    string
	Title     string
	Subtitle  string
	IntroHTML string
	Blocks    []Block
}

// Block is one rendered section.
type Block struct {
	ID          string
	Kind        content.SectionKind
	Layout      Layout
	Title       string
	Description string
	Table       *Table
	Items       []Item
}

// Table is a header row and entry rows of equal width.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// Cell is one table value. Code cells are drawn monospaced.
type Cell struct {
	Text string
	Code bool
}

// Item is one non-tabular entry: a step, card, code sample or link.
type Item struct {
	Title    string
	Body     string
	Code     string
	Language string
	Href     string
}

var markdown = goldmark.New()

// Build projects record into a document. Entries keep their stored order.
func Build(record content.Record) Document {
	doc := Document{
		Page:      record.Page,
		Locale:    record.Locale.String(),
		Title:     record.Title,
		Subtitle:  record.Subtitle,
		IntroHTML: introHTML(record.Intro),
		Blocks:    make([]Block, 0, len(record.Sections)),
	}
	for _, section := range record.Sections {
		doc.Blocks = append(doc.Blocks, buildBlock(section, record.Labels))
	}
	return doc
}

func buildBlock(section content.Section, labels content.Labels) Block {
	block := Block{
		ID:          section.ID,
		Kind:        section.Kind,
		Title:       section.Title,
		Description: section.Description,
	}
	switch section.Kind {
	case content.KindCommands:
		block.Layout = LayoutTable
		block.Table = &Table{Columns: []string{labels.Command, labels.Description, labels.Usage}}
		for _, entry := range section.Commands {
			block.Table.Rows = append(block.Table.Rows, []Cell{
				{Text: orPlaceholder(entry.Command), Code: true},
				{Text: orPlaceholder(entry.Description)},
				{Text: orPlaceholder(entry.Usage)},
			})
		}
	case content.KindSettings:
		block.Layout = LayoutTable
		block.Table = &Table{Columns: []string{
			labels.Key, labels.Type, labels.Default, labels.Options,
			labels.Required, labels.Description, labels.Example,
		}}
		for _, entry := range section.Settings {
			defaultValue := Placeholder
			if entry.Default != nil {
				defaultValue = orPlaceholder(*entry.Default)
			}
			required := labels.No
			if entry.Required {
				required = labels.Yes
			}
			block.Table.Rows = append(block.Table.Rows, []Cell{
				{Text: orPlaceholder(entry.Key), Code: true},
				{Text: orPlaceholder(entry.Type)},
				{Text: defaultValue, Code: defaultValue != Placeholder},
				{Text: orPlaceholder(strings.Join(entry.Options, ", "))},
				{Text: orPlaceholder(required)},
				{Text: orPlaceholder(entry.Description)},
				{Text: orPlaceholder(entry.Example), Code: true},
			})
		}
	case content.KindEnvVars:
		block.Layout = LayoutTable
		block.Table = &Table{Columns: []string{labels.Name, labels.Description, labels.Default, labels.Example}}
		for _, entry := range section.EnvVars {
			defaultValue := orPlaceholder(entry.Default)
			block.Table.Rows = append(block.Table.Rows, []Cell{
				{Text: orPlaceholder(entry.Name), Code: true},
				{Text: orPlaceholder(entry.Description)},
				{Text: defaultValue, Code: defaultValue != Placeholder},
				{Text: orPlaceholder(entry.Example), Code: true},
			})
		}
	case content.KindSteps:
		block.Layout = LayoutTimeline
		for _, entry := range section.Steps {
			block.Items = append(block.Items, Item{
				Title: orPlaceholder(entry.Title),
				Body:  orPlaceholder(entry.Description),
				Code:  orPlaceholder(entry.Command),
			})
		}
	case content.KindCards:
		block.Layout = LayoutCards
		for _, entry := range section.Cards {
			block.Items = append(block.Items, Item{
				Title: orPlaceholder(entry.Title),
				Body:  orPlaceholder(entry.Description),
			})
		}
	case content.KindCode:
		block.Layout = LayoutCode
		for _, entry := range section.Code {
			block.Items = append(block.Items, Item{
				Title:    orPlaceholder(entry.Title),
				Language: entry.Language,
				Code:     strings.TrimRight(entry.Code, "\n"),
			})
		}
	case content.KindLinks:
		block.Layout = LayoutLinks
		for _, entry := range section.Links {
			block.Items = append(block.Items, Item{
				Title: orPlaceholder(entry.Title),
				Body:  orPlaceholder(entry.Description),
				Href:  entry.Href,
			})
		}
	}
	return block
}

func orPlaceholder(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return Placeholder
	}
	return value
}

// introHTML converts intro Markdown. Raw HTML in the source is omitted.
func introHTML(source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "<p>" + html.EscapeString(source) + "</p>"
	}
	return strings.TrimSpace(buf.String())
}

// Headings returns the id and title of every block, for page navigation.
func (d Document) Headings() []Heading {
	out := make([]Heading, 0, len(d.Blocks))
	for _, block := range d.Blocks {
		out = append(out, Heading{ID: block.ID, Title: block.Title})
	}
	return out
}

// Heading links to one block of a document.
type Heading struct {
	ID    string
	Title string
}
