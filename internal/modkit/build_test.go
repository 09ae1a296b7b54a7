package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"reviewtrust/internal/modkit/httpkit"
	phttp "reviewtrust/internal/platform/net/http"
)

func TestBuild_PrefixNormalized(t *testing.T) {
	cases := map[string]string{
		"":          "",
		"analyze":   "/analyze",
		"/analyze/": "/analyze",
		"/meta":     "/meta",
	}
	for in, want := range cases {
		if got := Build(WithPrefix(in)).Prefix; got != want {
			t.Fatalf("prefix %q -> %q want %q", in, got, want)
		}
	}
}

func TestBuild_LaterOptionsWin(t *testing.T) {
	b := Build(WithName("a"), WithName("b"), WithPorts(42))
	if b.Name != "b" {
		t.Fatalf("name=%q", b.Name)
	}
	if b.Ports.(int) != 42 {
		t.Fatalf("ports=%v", b.Ports)
	}
	if b.Register == nil {
		t.Fatalf("register should default to a no-op")
	}
}

func TestBuilt_MountPrefixMiddlewareAndRegister(t *testing.T) {
	tagged := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Scope", "analyze")
			next.ServeHTTP(w, r)
		})
	}
	b := Build(
		WithPrefix("analyze"),
		WithMiddlewares(tagged),
		WithRegister(func(r httpkit.Router) {
			r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
		}),
	)

	r := phttp.AdaptChi(chi.NewRouter())
	b.Mount(r, func(r httpkit.Router) {
		r.Get("/text", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	})

	for path, want := range map[string]int{
		"/analyze/text":  http.StatusNoContent,
		"/analyze/extra": http.StatusTeapot,
		"/text":          http.StatusNotFound,
	} {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != want {
			t.Fatalf("%s: status=%d want %d", path, rec.Code, want)
		}
		if want != http.StatusNotFound && rec.Header().Get("X-Scope") != "analyze" {
			t.Fatalf("%s: middleware not applied", path)
		}
	}
}

func TestBuilt_MountWithoutPrefix(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Build().Mount(r, func(r httpkit.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	})
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestDeps_PingersWithoutStore(t *testing.T) {
	if got := (Deps{}).Pingers(); len(got) != 0 {
		t.Fatalf("pingers=%v", got)
	}
}
