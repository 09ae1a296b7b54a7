// Package swaggerkit mounts the swagger UI and the served OpenAPI document
package swaggerkit

import (
	"net/http"

	phttp "reviewtrust/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options controls the docs mount
type Options struct {
	Enabled     bool
	TitleSuffix string
}

// Mount serves /api/docs/ (UI) and /api/docs/doc.json when enabled
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(o.TitleSuffix))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
