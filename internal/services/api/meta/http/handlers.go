// Package http provides meta endpoints
package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"reviewtrust/internal/core/rulepack"
	"reviewtrust/internal/core/scorer"
	"reviewtrust/internal/core/version"
	"reviewtrust/internal/modkit/httpkit"
	"reviewtrust/internal/platform/store"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Pingers are the open storage backends by name; an empty map means the API runs stateless
	Pingers map[string]store.Pinger
	Rules   *rulepack.Pack
	Scorer  *scorer.Config
	// ReadyTimeout bounds each dependency ping
	ReadyTimeout time.Duration
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/rules", h.rules)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"reviewtrust-api"`
	Started string `json:"started" example:"2026-04-02T10:00:00Z"`
	Now     string `json:"now"     example:"2026-04-02T10:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-04-02T10:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"reviewtrust-api"`
	Started string `json:"started" example:"2026-04-02T10:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// RulesResponse reports the lexical rule pack and the scorer tuning in effect
type RulesResponse struct {
	Pack        string         `json:"pack"         example:"reviewtrust-default"`
	PackVersion int            `json:"pack_version" example:"1"`
	Lists       map[string]int `json:"lists"`
	Scorer      *scorer.Config `json:"scorer,omitempty"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	names := make([]string, 0, len(h.deps.Pingers))
	for n := range h.deps.Pingers {
		names = append(names, n)
	}
	sort.Strings(names)

	overall := "ok"
	checks := make([]ReadyCheck, 0, len(names))
	for _, n := range names {
		ctx, cancel := context.WithTimeout(r.Context(), h.deps.ReadyTimeout)
		err := h.deps.Pingers[n].Ping(ctx)
		cancel()
		c := ReadyCheck{Name: n, Status: "ok"}
		if err != nil {
			c.Status, c.Error = "fail", err.Error()
			overall = "fail"
		}
		checks = append(checks, c)
	}

	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    h.now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.now().Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// @Summary Rule pack and scorer tuning
// @Tags Meta
// @Produce json
// @Success 200 {object} RulesResponse "ok"
// @Router /meta/rules [get]
func (h *handlers) rules(_ *http.Request) (any, error) {
	out := RulesResponse{Scorer: h.deps.Scorer}
	if p := h.deps.Rules; p != nil {
		out.Pack, out.PackVersion, out.Lists = p.Name(), p.Version, p.Stats()
	}
	return out, nil
}
