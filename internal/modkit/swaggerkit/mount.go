// Package swaggerkit serves the registered OpenAPI document and the swagger UI
package swaggerkit

import (
	"net/http"

	phttp "almanac/internal/platform/net/http"
)

const (
	// DocsPath is where the UI lives
	DocsPath = "/api/docs"
	// DocJSONPath serves the patched spec the UI loads
	DocJSONPath = DocsPath + "/doc.json"
)

// Mount registers the spec and UI routes when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocJSONPath, serveDocJSON())
	phttp.MountSwagger(r, DocsPath, DocJSONPath, true)
}
