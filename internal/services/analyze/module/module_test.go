package module

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"reviewtrust/internal/modkit"
	"reviewtrust/internal/modkit/module"
	"reviewtrust/internal/platform/config"
	phttp "reviewtrust/internal/platform/net/http"
	"reviewtrust/internal/platform/store"
	"reviewtrust/internal/platform/testkit"
	"reviewtrust/internal/services/analyze/repo"
)

func TestFromConfig_Env(t *testing.T) {
	t.Setenv("CORE_ANALYZE_WORKERS", "8")
	t.Setenv("CORE_ANALYZE_MAX_ITEMS", "50")
	t.Setenv("CORE_ANALYZE_STRICT_SINKS", "true")
	t.Setenv("CORE_SCORER_MIN_SIGNALS", "5")
	t.Setenv("CORE_SCORER_CONFIDENCE_DECAY", "0.9")

	o := FromConfig(config.New())
	if o.Workers != 8 || o.MaxItems != 50 || !o.StrictSinks || o.MinSignals != 5 {
		t.Fatalf("options=%+v", o)
	}
	cfg, err := o.ScorerConfig()
	if err != nil {
		t.Fatalf("ScorerConfig: %v", err)
	}
	if cfg.MinSignalsRequired != 5 || cfg.ConfidenceDecay != 0.9 || cfg.FullCoverageSignals != 10 {
		t.Fatalf("scorer cfg=%+v", cfg)
	}
}

func TestFromConfig_WorkersOutOfRange(t *testing.T) {
	t.Setenv("CORE_ANALYZE_WORKERS", "0")
	if o := FromConfig(config.New()); o.Workers != 4 {
		t.Fatalf("workers=%d want default 4", o.Workers)
	}
}

func TestScorerConfig_WeightsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	doc := `{"categories":{"media":0.3},"minSignalsRequired":2}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Options{WeightsFile: path}.ScorerConfig()
	if err != nil {
		t.Fatalf("ScorerConfig: %v", err)
	}
	if cfg.CategoryWeights["media"] != 0.3 || cfg.MinSignalsRequired != 2 {
		t.Fatalf("cfg=%+v", cfg)
	}

	// scalar knobs win over the file
	cfg, err = Options{WeightsFile: path, MinSignals: 4}.ScorerConfig()
	if err != nil || cfg.MinSignalsRequired != 4 {
		t.Fatalf("min=%d err=%v", cfg.MinSignalsRequired, err)
	}

	if _, err := (Options{WeightsFile: filepath.Join(t.TempDir(), "missing.json")}).ScorerConfig(); err == nil {
		t.Fatalf("expected missing file error")
	}
	if _, err := (Options{ConfidenceDecay: 1.5}).ScorerConfig(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestMerge_OverridesWin(t *testing.T) {
	base := Options{Workers: 4, MaxItems: 500, WeightsFile: "a.json"}
	got := base.merge(Options{Workers: 2, StrictSinks: true})
	if got.Workers != 2 || got.MaxItems != 500 || got.WeightsFile != "a.json" || !got.StrictSinks {
		t.Fatalf("merged=%+v", got)
	}
}

func TestNew_BadTuningPanics(t *testing.T) {
	testkit.MustPanic(t, func() {
		New(modkit.Deps{Cfg: config.New()}, Options{ConfidenceDecay: 2})
	})
}

func TestNew_SQLiteArchiveRoundTrip(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, store.Config{
		Lite: store.LiteConfig{Enabled: true, Path: filepath.Join(t.TempDir(), "m.db")},
	})
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(ctx) })
	if err := repo.Migrate(ctx, st); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	reg := prometheus.NewRegistry()
	m := New(modkit.Deps{Cfg: config.New(), Store: st}, Options{Registerer: reg})
	if m.Name() != "analyze" {
		t.Fatalf("name=%q", m.Name())
	}
	ports := module.MustPortsOf[Ports](m)
	if ports.Rules == nil || ports.Scorer.FullCoverageSignals != 10 {
		t.Fatalf("ports=%+v", ports)
	}

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest("POST", "/analyze/text",
		strings.NewReader(`{"text":"Absolutely amazing product! Highly recommend to everyone! Best purchase ever!"}`)))
	if rr.Code != 200 {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var env struct {
		Data struct {
			ResultID string `json:"resultId"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil || env.Data.ResultID == "" {
		t.Fatalf("decode: %v body=%s", err, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/results/"+env.Data.ResultID, nil))
	if rr.Code != 200 {
		t.Fatalf("get status=%d body=%s", rr.Code, rr.Body.String())
	}
	testkit.MustContain(t, rr.Body.String(), `"kind":"text"`)

	if n, err := gathered(reg); err != nil || n == 0 {
		t.Fatalf("no metrics gathered: %d %v", n, err)
	}
}

func gathered(reg *prometheus.Registry) (int, error) {
	mfs, err := reg.Gather()
	return len(mfs), err
}
