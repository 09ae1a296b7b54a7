package modkit

import (
	"net/http"
	"strings"

	"reviewtrust/internal/modkit/httpkit"
)

// Built is the resolved option set a module reads in New
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(httpkit.Router)
}

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	prefix := c.prefix
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return Built{
		Name:     c.name,
		Prefix:   strings.TrimSuffix(prefix, "/"),
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount mounts register under b.Prefix with b.Mw, then the extra register hook
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	mount := func(sub httpkit.Router) {
		register(sub)
		b.Register(sub)
	}
	if b.Prefix == "" {
		r.Group(func(g httpkit.Router) {
			if len(b.Mw) > 0 {
				g.Use(b.Mw...)
			}
			mount(g)
		})
		return
	}
	httpkit.MountUnder(r, b.Prefix, b.Mw, mount)
}
