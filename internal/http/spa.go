package http

import (
	"net/http"
	"os"
	"path/filepath"
)

// SPAHandler serves the bundled frontend. Requests that don't match a real
// file fall back to index.html so client-side routing can take over.
type SPAHandler struct {
	staticDir string
	files     http.Handler
}

func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{
		staticDir: staticDir,
		files:     http.FileServer(http.Dir(staticDir)),
	}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
		return
	}

	h.files.ServeHTTP(w, r)
}
