package modkit

import (
	"reviewtrust/internal/platform/config"
	"reviewtrust/internal/platform/logger"
	"reviewtrust/internal/platform/store"
)

// Deps are what every module may use; Store fields are nil when a backend is disabled
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Store *store.Store
}

// Pingers returns the open backends by name for readiness checks
func (d Deps) Pingers() map[string]store.Pinger {
	out := map[string]store.Pinger{}
	if d.Store == nil {
		return out
	}
	add := func(name string, v any) {
		if p, ok := v.(store.Pinger); ok {
			out[name] = p
		}
	}
	if d.Store.PG != nil {
		add("pg", d.Store.PG)
	}
	if d.Store.Lite != nil {
		add("sqlite", d.Store.Lite)
	}
	if d.Store.CH != nil {
		add("clickhouse", d.Store.CH)
	}
	return out
}
