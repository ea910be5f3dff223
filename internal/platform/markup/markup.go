// Package markup writes HTML for hand-assembled templ components.
package markup

import (
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Writer stops writing after the first error.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped.
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Text writes s with HTML escaping.
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Int writes value in base 10.
func (m *Writer) Int(value int) {
	m.Raw(strconv.Itoa(value))
}

// Err returns the first write error.
func (m *Writer) Err() error {
	return m.err
}
