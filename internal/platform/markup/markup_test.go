package markup

import (
	"errors"
	"strings"
	"testing"
)

type failingWriter struct {
	writes int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("closed")
}

func TestWriterEscapesText(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	out := NewWriter(&b)
	out.Raw(`<p class="x">`)
	out.Text(`a < b & "c"`)
	out.Int(404)
	out.Raw(`</p>`)
	if err := out.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if got, want := b.String(), `<p class="x">a &lt; b &amp; &#34;c&#34;404</p>`; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestWriterStopsAfterFirstError(t *testing.T) {
	t.Parallel()

	w := &failingWriter{}
	out := NewWriter(w)
	out.Raw("a")
	out.Text("b")
	out.Raw("c")
	if out.Err() == nil {
		t.Fatal("expected error")
	}
	if w.writes != 1 {
		t.Fatalf("writes = %d, want 1", w.writes)
	}
}
