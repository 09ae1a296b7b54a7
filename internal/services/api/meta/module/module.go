// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"reviewtrust/internal/core/rulepack"
	"reviewtrust/internal/core/scorer"
	"reviewtrust/internal/modkit"
	"reviewtrust/internal/modkit/httpkit"
	metahttp "reviewtrust/internal/services/api/meta/http"
)

// ServiceName is reported by health, version and service
const ServiceName = "reviewtrust-api"

// Ports are what meta reads from other modules, injected with modkit.WithPorts
type Ports struct {
	Rules  *rulepack.Pack
	Scorer scorer.Config
}

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	deps      modkit.Deps
	in        Ports
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	in, _ := b.Ports.(Ports)
	return &Module{b: b, deps: deps, in: in, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) {
		d := metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Pingers:     m.deps.Pingers(),
			Rules:       m.in.Rules,
		}
		if m.in.Scorer.SignalWeights != nil {
			cfg := m.in.Scorer
			d.Scorer = &cfg
		}
		metahttp.Register(sub, d)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Ports implements the modkit.Module interface; meta exposes nothing
func (m *Module) Ports() any { return nil }
