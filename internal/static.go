package internal

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// staticHandler serves GET and HEAD requests from fsys and hands everything
// else to notFound. Directories are served only when they contain an
// index.html; listings are never rendered.
func staticHandler(fsys fs.FS, notFound http.HandlerFunc) http.HandlerFunc {
	if notFound == nil {
		notFound = http.NotFound
	}
	fileServer := http.FileServerFS(fsys)

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			notFound(w, r)
			return
		}

		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name == "" {
			name = "."
		}

		info, err := fs.Stat(fsys, name)
		if err != nil {
			notFound(w, r)
			return
		}
		if info.IsDir() {
			if _, err := fs.Stat(fsys, path.Join(name, "index.html")); err != nil {
				notFound(w, r)
				return
			}
		}

		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("X-Content-Type-Options", "nosniff")

		fileServer.ServeHTTP(w, r)
	}
}
