package rulepack

import (
	"strings"
	"testing"
)

func TestLoad_Embedded(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if p.Version != SupportedVersion {
		t.Fatalf("version = %d", p.Version)
	}
	if p.Name() == "" {
		t.Fatalf("expected meta.name")
	}
	if len(p.AIPhrases) == 0 || len(p.TemplatePhrases) == 0 || len(p.HypeWords) == 0 {
		t.Fatalf("expected phrase lists, got %+v", p.Stats())
	}
	if _, ok := p.Connectives["because"]; !ok {
		t.Fatalf("connective 'because' missing")
	}
	if _, ok := p.HedgeWords["however"]; !ok {
		t.Fatalf("single-token hedge 'however' missing")
	}
	found := false
	for _, h := range p.HedgePhrases {
		if h == "only complaint" {
			found = true
		}
		if !strings.Contains(h, " ") {
			t.Fatalf("hedge phrase %q has no space", h)
		}
	}
	if !found {
		t.Fatalf("multi-word hedge 'only complaint' missing")
	}
}

func TestLoadFrom_CleansAndDedupes(t *testing.T) {
	doc := `{
		"version": 1,
		"ai_phrases": ["  Delve   Into ", "delve into", ""],
		"hype_words": ["AMAZING"],
		"template_phrases": ["Buy It Now"],
		"vague_words": ["good"],
		"positive_words": ["good"],
		"negative_words": ["bad"],
		"hedge_words": ["but"],
		"connectives": ["so"]
	}`
	p, err := LoadFrom(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if len(p.AIPhrases) != 1 || p.AIPhrases[0] != "delve into" {
		t.Fatalf("ai phrases not cleaned: %q", p.AIPhrases)
	}
	if p.TemplatePhrases[0] != "buy it now" {
		t.Fatalf("template not lowered: %q", p.TemplatePhrases)
	}
}

func TestLoadFrom_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad json":      `{`,
		"wrong version": `{"version": 9}`,
		"empty list": `{"version":1,"ai_phrases":[],"hype_words":["a"],"template_phrases":["a"],
			"vague_words":["a"],"positive_words":["a"],"negative_words":["a"],"hedge_words":["a"],"connectives":["a"]}`,
		"unknown field": `{"version":1,"bogus":true}`,
	}
	for name, doc := range cases {
		if _, err := LoadFrom(strings.NewReader(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
