// Package httpkit re-exports the platform http surface modules use, so they never import chi or the platform package directly
package httpkit

import (
	"net/http"

	phttp "reviewtrust/internal/platform/net/http"
	"reviewtrust/internal/platform/net/http/bind"
)

type (
	// Router is the platform router seam
	Router = phttp.Router
	// Response is a return-style handler result
	Response = phttp.Response
	// Handler is the platform handler type
	Handler = phttp.Handler
	// JSONOptions tunes body parsing
	JSONOptions = bind.JSONOptions
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// Error returns a response whose status comes from the error code
func Error(err error) Response { return phttp.Error(err) }

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// URLParam reads a path parameter
func URLParam(r *http.Request, key string) string { return phttp.URLParam(r, key) }

// DefaultJSONOptions are the bind defaults, for callers that only change one knob
func DefaultJSONOptions() JSONOptions { return bind.DefaultJSONOptions() }
