// Package staticfiles serves the --www-root directory tree over
// plain HTTP, the same static_content role the original server's
// RequestHandler::HandleFileRequest plays for anything outside
// /api/.
package staticfiles

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// extraContentTypes fills in extensions the original server's
// ContentType lookup table maps that Go's builtin mime table doesn't
// supply (or supplies differently), matching request_handler.cpp's
// extension table for the entries mime.TypeByExtension can't cover.
var extraContentTypes = map[string]string{
	".txt":  "text/plain; charset=utf-8",
	".xml":  "application/xml",
	".bmp":  "image/bmp",
	".ico":  "image/vnd.microsoft.icon",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".mp3":  "audio/mpeg",
}

func contentTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := extraContentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// Handler serves files under root for GET and HEAD only, any other
// method gets a 405 with an Allow header, matching httpapi's
// writeMethodNotAllowed convention. http.Dir already rejects any path
// that resolves outside root; the explicit ".." scan here mirrors the
// original server's belt-and-suspenders check on the decoded request
// path before it ever reaches the filesystem layer.
func Handler(root string) http.Handler {
	fileServer := http.FileServer(http.Dir(root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Invalid method", http.StatusMethodNotAllowed)
			return
		}

		if strings.Contains(r.URL.Path, "..") {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		servedPath := r.URL.Path
		if strings.HasSuffix(servedPath, "/") {
			servedPath += "index.html"
		}
		w.Header().Set("Content-Type", contentTypeFor(servedPath))
		w.Header().Set("Cache-Control", "no-cache")
		fileServer.ServeHTTP(w, r)
	})
}
