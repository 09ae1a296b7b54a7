package modkit

import (
	"net/http"

	"reviewtrust/internal/modkit/httpkit"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

type buildCfg struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	ports    any
	register func(httpkit.Router)
}

// WithName sets the module name used in logs and the port registry
func WithName(name string) Option { return func(c *buildCfg) { c.name = name } }

// WithPrefix mounts the module under prefix
func WithPrefix(prefix string) Option { return func(c *buildCfg) { c.prefix = prefix } }

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts injects ports owned by another module
func WithPorts[T any](p T) Option { return func(c *buildCfg) { c.ports = p } }

// WithRegister adds extra endpoints after the module's own
func WithRegister(fn func(httpkit.Router)) Option { return func(c *buildCfg) { c.register = fn } }
