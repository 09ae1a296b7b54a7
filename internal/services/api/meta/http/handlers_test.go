package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"reviewtrust/internal/core/rulepack"
	"reviewtrust/internal/core/scorer"
	phttp "reviewtrust/internal/platform/net/http"
	"reviewtrust/internal/platform/store"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func get(t *testing.T, d Deps, path string, out any) {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, d)
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("%s: status=%d body=%s", path, rr.Code, rr.Body.String())
	}
	env := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func TestReady(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	var res ReadyResponse
	get(t, Deps{Pingers: map[string]store.Pinger{"sqlite": ok, "clickhouse": ok}}, "/ready", &res)
	if res.Status != "ok" || len(res.Checks) != 2 || res.Checks[0].Name != "clickhouse" {
		t.Fatalf("ready=%+v", res)
	}

	get(t, Deps{Pingers: map[string]store.Pinger{"pg": down, "sqlite": ok}}, "/ready", &res)
	if res.Status != "fail" || res.Checks[0].Status != "fail" || res.Checks[0].Error == "" {
		t.Fatalf("ready=%+v", res)
	}

	get(t, Deps{}, "/ready", &res)
	if res.Status != "ok" || len(res.Checks) != 0 {
		t.Fatalf("stateless ready=%+v", res)
	}
}

func TestHealthVersionService(t *testing.T) {
	d := Deps{ServiceName: "reviewtrust-api", StartedAt: time.Now().Add(-time.Minute)}

	var h HealthResponse
	get(t, d, "/health", &h)
	if !h.OK || h.Service != "reviewtrust-api" {
		t.Fatalf("health=%+v", h)
	}

	var v struct {
		Service string `json:"service"`
		Version string `json:"version"`
	}
	get(t, d, "/version", &v)
	if v.Service != "reviewtrust-api" || v.Version == "" {
		t.Fatalf("version=%+v", v)
	}

	var s ServiceResponse
	get(t, d, "/service", &s)
	if s.Uptime < 59 {
		t.Fatalf("uptime=%d", s.Uptime)
	}
}

func TestRules(t *testing.T) {
	cfg := scorer.DefaultConfig()
	var res RulesResponse
	get(t, Deps{Rules: rulepack.MustLoad(), Scorer: &cfg}, "/rules", &res)
	if res.Lists["ai_phrases"] == 0 || res.Scorer == nil || res.Scorer.FullCoverageSignals != 10 {
		t.Fatalf("rules=%+v", res)
	}

	var empty RulesResponse
	get(t, Deps{}, "/rules", &empty)
	if empty.Pack != "" || empty.Scorer != nil || empty.Lists != nil {
		t.Fatalf("rules without deps=%+v", empty)
	}
}
