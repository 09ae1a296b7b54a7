package module

import (
	"testing"

	phttp "reviewtrust/internal/platform/net/http"
	"reviewtrust/internal/platform/testkit"
)

type rules struct{ version string }

type scorerPort interface{ Weight() float64 }

type fixedScorer float64

func (f fixedScorer) Weight() float64 { return float64(f) }

type bundle struct {
	Rules  *rules
	Scorer scorerPort
	hidden string
}

type fake struct {
	name  string
	ports any
}

func (f fake) MountRoutes(phttp.Router) {}
func (f fake) Ports() any                { return f.ports }
func (f fake) Name() string              { return f.name }

func TestPortsOf(t *testing.T) {
	r := &rules{version: "v1"}
	m := fake{name: "analyze", ports: bundle{Rules: r, Scorer: fixedScorer(0.4), hidden: "x"}}

	got, ok := PortsOf[*rules](m)
	if !ok || got != r {
		t.Fatalf("rules field: ok=%v got=%v", ok, got)
	}
	sc, ok := PortsOf[scorerPort](m)
	if !ok || sc.Weight() != 0.4 {
		t.Fatalf("interface field: ok=%v", ok)
	}
	if _, ok := PortsOf[string](m); ok {
		t.Fatalf("unexported fields must not match")
	}
	whole, ok := PortsOf[bundle](m)
	if !ok || whole.Rules != r {
		t.Fatalf("whole value: ok=%v", ok)
	}
	if _, ok := PortsOf[*rules](fake{name: "meta"}); ok {
		t.Fatalf("nil ports should not match")
	}
	if _, ok := PortsOf[*rules](fake{name: "n", ports: 3}); ok {
		t.Fatalf("non-struct ports should not match")
	}
}

func TestMustPortsOf_Panics(t *testing.T) {
	testkit.MustPanic(t, func() { MustPortsOf[*rules](fake{name: "meta"}) })
}

func TestRegistry(t *testing.T) {
	t.Cleanup(Reset)
	Register("analyze", bundle{Rules: &rules{version: "v2"}})

	got, ok := PortsAs[bundle]("analyze")
	if !ok || got.Rules.version != "v2" {
		t.Fatalf("PortsAs: ok=%v got=%+v", ok, got)
	}
	if _, ok := PortsAs[int]("analyze"); ok {
		t.Fatalf("wrong type should miss")
	}
	Reset()
	if _, ok := PortsAs[bundle]("analyze"); ok {
		t.Fatalf("Reset should clear the registry")
	}
}
