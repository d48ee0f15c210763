package delivery

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
)

// FilesHandler serves stored uploads back by generated name.
type FilesHandler struct {
	dir string
}

func NewFilesHandler(dir string) *FilesHandler {
	return &FilesHandler{dir: dir}
}

// GET /uploads/{name}
func (h *FilesHandler) Serve(w http.ResponseWriter, r *http.Request) {
	// Base strips any traversal attempt; stored names are flat
	name := filepath.Base(chi.URLParam(r, "name"))
	path := filepath.Join(h.dir, name)

	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	if mt, err := mimetype.DetectFile(path); err == nil {
		w.Header().Set("Content-Type", mt.String())
	}

	http.ServeContent(w, r, name, info.ModTime(), f)
}
