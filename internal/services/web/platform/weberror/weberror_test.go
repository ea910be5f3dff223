package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	platformi18n "github.com/louisbranch/clidocs/internal/platform/i18n"
	apperrors "github.com/louisbranch/clidocs/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/clidocs/internal/services/web/platform/i18n"
)

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	for status, want := range map[int]bool{
		http.StatusNotFound:            true,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
		http.StatusBadRequest:          false,
		http.StatusMethodNotAllowed:    false,
	} {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestWriteAppErrorLocalizesFromAcceptLanguage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set("Accept-Language", "zh-CN")
	WriteAppError(rr, req, http.StatusNotFound, Options{SiteName: "Tern Docs"})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := doc.Find(".error-state h1").Text(); got != "页面未找到" {
		t.Fatalf("heading = %q", got)
	}
	if got, _ := doc.Find(".error-state a").Attr("href"); got != "/zh/" {
		t.Fatalf("home link = %q, want /zh/", got)
	}
	if got := rr.Header().Get("Content-Language"); got != "zh" {
		t.Fatalf("Content-Language = %q", got)
	}
}

func TestWriteAppErrorPinnedLocaleWins(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ja/docs/nope?lang=fr", nil)
	WriteAppError(rr, req, http.StatusNotFound, Options{Locale: "ja"})
	if got := rr.Header().Get("Content-Language"); got != "ja" {
		t.Fatalf("Content-Language = %q, want ja", got)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("pinned locale must not persist a cookie")
	}
}

func TestWriteAppErrorLanguageLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		pinned string
		wantJa string
	}{
		{name: "resolved keeps path", target: "/nope?x=1", wantJa: "/nope?lang=ja&x=1"},
		{name: "pinned links home", target: "/zh/docs/nope", pinned: "zh", wantJa: "/ja/"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			WriteAppError(rr, httptest.NewRequest(http.MethodGet, tc.target, nil), http.StatusNotFound, Options{Locale: platformi18n.Locale(tc.pinned)})
			doc, err := goquery.NewDocumentFromReader(rr.Body)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			links := doc.Find(".language-switcher a")
			if links.Length() != len(platformi18n.Supported()) {
				t.Fatalf("language links = %d, want %d", links.Length(), len(platformi18n.Supported()))
			}
			got, _ := doc.Find(`.language-switcher a[hreflang="ja"]`).Attr("href")
			if got != tc.wantJa {
				t.Fatalf("ja href = %q, want %q", got, tc.wantJa)
			}
		})
	}
}

func TestWriteAppErrorNormalizesStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot, Options{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestWriteModuleError(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteModuleError(rr, httptest.NewRequest(http.MethodGet, "/", nil), apperrors.E(apperrors.KindInvalidInput, "bad"), Options{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rr.Body.String(), "Bad Request") {
		t.Fatalf("body = %q", rr.Body.String())
	}

	rr = httptest.NewRecorder()
	WriteModuleError(rr, httptest.NewRequest(http.MethodGet, "/", nil), apperrors.E(apperrors.KindNotFound, "missing"), Options{})
	if rr.Code != http.StatusNotFound || !strings.Contains(rr.Body.String(), "error-state") {
		t.Fatalf("not found response = %d %q", rr.Code, rr.Body.String())
	}
}

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	loc := webi18n.For("en")
	if got := PublicMessage(loc, apperrors.EK(apperrors.KindNotFound, "site.not_found_title", "x")); got != "Page not found" {
		t.Fatalf("PublicMessage = %q", got)
	}
	if got := PublicMessage(loc, errors.New("boom")); got != "Internal Server Error" {
		t.Fatalf("PublicMessage = %q", got)
	}
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q", got)
	}
}
