// Package http adapts chi to the small router surface modules mount against and writes JSON envelopes
package http

import "net/http"

// Handler is the handler shape modules register
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules see; chi stays an implementation detail
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
