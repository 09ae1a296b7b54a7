// Package api composes the HTTP API from its modules
package api

import (
	"github.com/prometheus/client_golang/prometheus"

	"reviewtrust/internal/core/version"
	"reviewtrust/internal/platform/config"
	"reviewtrust/internal/platform/logger"
	phttp "reviewtrust/internal/platform/net/http"
	"reviewtrust/internal/platform/net/middleware"
	"reviewtrust/internal/platform/store"

	"reviewtrust/internal/modkit"
	"reviewtrust/internal/modkit/httpkit"
	"reviewtrust/internal/modkit/module"
	"reviewtrust/internal/modkit/swaggerkit"

	analyzemod "reviewtrust/internal/services/analyze/module"
	metamod "reviewtrust/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config     config.Conf
	Store      *store.Store
	Logger     *logger.Logger
	Registerer prometheus.Registerer

	CORS     middleware.CORSOptions
	Throttle int

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts every module under /api/v1 plus docs and profiler, and returns the modules
func Mount(r phttp.Router, opt Options) []module.Module {
	deps := modkit.Deps{Cfg: opt.Config, Store: opt.Store}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	analyze := analyzemod.New(deps, analyzemod.Options{Registerer: opt.Registerer})
	ap := module.MustPortsOf[analyzemod.Ports](analyze)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Rules: ap.Rules, Scorer: ap.Scorer})),
		analyze,
	}

	if opt.EnableSwagger {
		swaggerkit.Register(docInfo(ap))
	}
	swaggerkit.Mount(r, swaggerkit.Options{Enabled: opt.EnableSwagger})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.CORS, opt.Throttle), func(api httpkit.Router) {
		for _, m := range mods {
			// ports are registered by module name for cross-module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
	return mods
}

// docInfo stamps the served doc with the build version and the loaded rule pack
func docInfo(ap analyzemod.Ports) swaggerkit.SpecMutator {
	v := version.Info(metamod.ServiceName).Version
	return func(spec map[string]any) {
		info, ok := spec["info"].(map[string]any)
		if !ok {
			return
		}
		info["version"] = v
		if ap.Rules != nil {
			info["x-rule-pack"] = map[string]any{"name": ap.Rules.Name(), "version": ap.Rules.Version}
		}
	}
}
