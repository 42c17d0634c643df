package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const notFoundPage = "views/404.html"

// serveStatic resolves a request matching no route against the static directory.
//
// The requested path is normalized before joining so it can never escape
// the static root. Missing assets render the 404 page with a 404 status.
func (ro *Router) serveStatic(w http.ResponseWriter, r *http.Request) {
	if ro.staticDir == "" {
		http.NotFound(w, r)
		return
	}

	name := filepath.Join(ro.staticDir, filepath.Clean("/"+r.URL.Path))
	if !strings.HasPrefix(name, filepath.Clean(ro.staticDir)+string(os.PathSeparator)) {
		ro.serveNotFound(w, r)
		return
	}

	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		ro.serveNotFound(w, r)
		return
	}

	if ext := filepath.Ext(name); ext != ".html" {
		w.Header().Set("Cache-Control", "max-age=2592000") // 30 days
	}

	http.ServeFile(w, r, name)
}

// serveNotFound renders the static 404 page, falling back to a plain 404.
func (ro *Router) serveNotFound(w http.ResponseWriter, r *http.Request) {
	name := filepath.Join(ro.staticDir, notFoundPage)
	b, err := os.ReadFile(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(b)
}
