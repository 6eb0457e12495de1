package web

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

const indexFile = "index.html"

// BypassMatcher reports whether a path is served without the auth cookie.
type BypassMatcher interface {
	IsBypassed(path string) bool
}

// StaticHandler serves the built site from dir.
//
// Existing files are served as-is, except HTML documents and directory
// listings. Any other path falls back to index.html, unless the path is one
// the gate lets through without a cookie: those get a 404 so the page can
// never be reached around the gate.
func StaticHandler(dir string, bypass BypassMatcher) http.Handler {
	root := http.Dir(dir)
	files := http.FileServer(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)

		// The gate matched the raw path; "/assets/../page" must not resolve.
		if name != r.URL.Path && name+"/" != r.URL.Path {
			http.NotFound(w, r)
			return
		}

		if strings.HasSuffix(name, ".html") {
			http.NotFound(w, r)
			return
		}

		found, err := isRegularFile(root, name)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if found {
			files.ServeHTTP(w, r)
			return
		}

		if bypass.IsBypassed(r.URL.Path) {
			http.NotFound(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(dir, indexFile))
	})
}

func isRegularFile(root http.FileSystem, name string) (bool, error) {
	f, err := root.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, err
	}

	return !info.IsDir(), nil
}
