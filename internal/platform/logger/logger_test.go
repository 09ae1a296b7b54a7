package logger

import (
	"bytes"
	"context"
	"testing"

	kit "reviewtrust/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":      zerolog.TraceLevel,
		"DEBUG":      zerolog.DebugLevel,
		"info":       zerolog.InfoLevel,
		"warning":    zerolog.WarnLevel,
		" error ":    zerolog.ErrorLevel,
		"":           zerolog.InfoLevel,
		"loud-noise": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q)=%s want %s", in, got, want)
		}
	}
}

// Init is process-wide, so every assertion about root output lives in this one test
func TestInit_ChildrenCarryFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "debug",
		Format:       "console",
		Service:      "reviewtrust-test",
		Writer:       &buf,
		StaticFields: map[string]string{"build": "unit"},
	})

	Named("scorer").Info().Msg("named-msg")

	ctx := WithBatch(WithRequest(context.Background(), "req-42"), "batch-7")
	C(ctx).Info().Msg("ctx-msg")
	C(context.Background()).Debug().Msg("bare-msg")

	out := buf.String()
	for _, want := range []string{"named-msg", "scorer", "ctx-msg", "req-42", "batch-7", "bare-msg", "reviewtrust-test", "unit"} {
		kit.MustContain(t, out, want)
	}
}

func TestWithRequest_EmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	if WithRequest(ctx, "") != ctx || WithBatch(ctx, "") != ctx {
		t.Fatalf("empty ids should return ctx unchanged")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_COMPONENT", "api")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "4")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Component != "api" {
		t.Fatalf("opt=%+v", opt)
	}
	if opt.Service != "reviewtrust" {
		t.Fatalf("default service=%q", opt.Service)
	}
	if !opt.WithCaller || opt.SampleEvery != 4 {
		t.Fatalf("opt=%+v", opt)
	}
}
