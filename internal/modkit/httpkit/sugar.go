package httpkit

import (
	"net/http"

	phttp "reviewtrust/internal/platform/net/http"
)

// Get mounts a body-less JSON handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// PostJSON mounts a binding, validating JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...JSONOptions) {
	phttp.PostJSON(r, path, h, opts...)
}

// Delete mounts a body-less JSON handler under DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, phttp.JSONHandlerNoBody(h))
}
