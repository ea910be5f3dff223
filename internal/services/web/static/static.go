// Package static embeds the site stylesheet.
package static

import (
	"embed"
	"net/http"
	"strings"
)

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS

// Handler serves FS with explicit content-type hints for known assets.
// Paths are relative to the static root; callers strip the mount prefix.
func Handler() http.Handler {
	return withStaticMime(http.FileServerFS(FS))
}

func withStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		case strings.HasSuffix(path, ".js"):
			w.Header().Set("Content-Type", "application/javascript")
		case strings.HasSuffix(path, ".svg"):
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
