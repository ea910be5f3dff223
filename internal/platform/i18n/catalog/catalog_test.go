package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasEverySupportedLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	want := []string{"de", "en", "es", "fr", "hi", "ja", "ko", "ru", "zh"}
	got := bundle.Locales()
	if len(got) != len(want) {
		t.Fatalf("Locales() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Locales()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got := len(bundle.NamespaceMessages("zh", "content")); got != 12 {
		t.Fatalf("zh content messages = %d, want 12", got)
	}
}

func TestDefaultRegistersPrinterMessages(t *testing.T) {
	Default()
	if got := message.NewPrinter(language.Chinese).Sprintf("content.command"); got != "命令" {
		t.Fatalf("zh content.command = %q, want %q", got, "命令")
	}
	if got := Default().Printer("xx").Sprintf("site.nav_label"); got != "Documentation" {
		t.Fatalf("fallback printer site.nav_label = %q, want Documentation", got)
	}
}

func TestMessageFallsBackToBaseForUnknownLocale(t *testing.T) {
	value, ok := Default().Message("xx", "content.yes")
	if !ok || value != "Yes" {
		t.Fatalf("Message(xx, content.yes) = (%q, %t), want (Yes, true)", value, ok)
	}
	if _, ok := Default().Message("en", "content.missing"); ok {
		t.Fatal("expected missing key to report false")
	}
}

func TestLoadFromFSRejectsKeyOutsideNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/content.yaml"), `locale: "en"
namespace: "content"
messages:
  "site.bad": "nope"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsNamespaceFilenameMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/site.yaml"), `locale: "en"
namespace: "site"
messages:
  "site.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/site2.yaml"), `locale: "en"
namespace: "site"
messages:
  "site.key": "b"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsIncompleteLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/site.yaml"), `locale: "en"
namespace: "site"
messages:
  "site.a": "A"
  "site.b": "B"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/fr/site.yaml"), `locale: "fr"
namespace: "site"
messages:
  "site.a": "A"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing key error")
	}
}

func TestLoadFromFSRejectsMissingRequiredLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/site.yaml"), `locale: "en"
namespace: "site"
messages:
  "site.a": "A"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir), "en", "ko"); err == nil {
		t.Fatal("expected missing locale error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/site.yaml"), `locale: "de"
namespace: "site"
messages:
  "site.a": "A"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
