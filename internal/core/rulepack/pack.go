// Package rulepack loads the phrase and vocabulary lists the lexical detectors match against.
// Lists are data, not code: a tuned pack can be swapped in with LoadFrom without touching detector logic
package rulepack

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

//go:embed rules.json
var embedded []byte

// SupportedVersion is the only rules.json schema version this package understands
const SupportedVersion = 1

type rawPack struct {
	Version          int            `json:"version"`
	Meta             map[string]any `json:"meta"`
	AIPhrases        []string       `json:"ai_phrases"`
	HypeWords        []string       `json:"hype_words"`
	TemplatePhrases  []string       `json:"template_phrases"`
	VagueWords       []string       `json:"vague_words"`
	PositiveWords    []string       `json:"positive_words"`
	NegativeWords    []string       `json:"negative_words"`
	HedgeWords       []string       `json:"hedge_words"`
	Connectives      []string       `json:"connectives"`
	FamilyWords      []string       `json:"family_words"`
	MeasurementUnits []string       `json:"measurement_units"`
}

// Pack is a loaded, cleaned rule pack
// Phrase lists keep order (sorted, deduped); word lists are also exposed as sets for O(1) lookups
type Pack struct {
	Version int
	Meta    map[string]any

	AIPhrases       []string
	HypeWords       []string
	TemplatePhrases []string
	HedgePhrases    []string // multi-word hedges ("only complaint", "a bit")

	VagueWords       map[string]struct{}
	PositiveWords    map[string]struct{}
	NegativeWords    map[string]struct{}
	HedgeWords       map[string]struct{} // single-token hedges ("but", "however")
	Connectives      map[string]struct{}
	FamilyWords      []string
	MeasurementUnits []string
}

// Load returns the pack compiled from the embedded rules.json
func Load() (*Pack, error) {
	return LoadFrom(bytes.NewReader(embedded))
}

// MustLoad is Load for package init and tests; it panics on a broken embedded pack
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// LoadFrom parses and validates a rules.json document
func LoadFrom(r io.Reader) (*Pack, error) {
	var rp rawPack
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rp); err != nil {
		return nil, fmt.Errorf("rulepack: parse rules.json: %w", err)
	}
	if rp.Version != SupportedVersion {
		return nil, fmt.Errorf("rulepack: unsupported rules.json version %d (want %d)", rp.Version, SupportedVersion)
	}

	required := map[string][]string{
		"ai_phrases":       rp.AIPhrases,
		"hype_words":       rp.HypeWords,
		"template_phrases": rp.TemplatePhrases,
		"vague_words":      rp.VagueWords,
		"positive_words":   rp.PositiveWords,
		"negative_words":   rp.NegativeWords,
		"hedge_words":      rp.HedgeWords,
		"connectives":      rp.Connectives,
	}
	for name, lst := range required {
		if len(clean(lst)) == 0 {
			return nil, fmt.Errorf("rulepack: %s must not be empty", name)
		}
	}

	p := &Pack{
		Version:          rp.Version,
		Meta:             rp.Meta,
		AIPhrases:        clean(rp.AIPhrases),
		HypeWords:        clean(rp.HypeWords),
		TemplatePhrases:  clean(rp.TemplatePhrases),
		VagueWords:       toSet(rp.VagueWords),
		PositiveWords:    toSet(rp.PositiveWords),
		NegativeWords:    toSet(rp.NegativeWords),
		HedgeWords:       make(map[string]struct{}),
		Connectives:      toSet(rp.Connectives),
		FamilyWords:      clean(rp.FamilyWords),
		MeasurementUnits: clean(rp.MeasurementUnits),
	}

	// hedges come in two shapes; single tokens are set lookups, phrases go through the matcher
	for _, h := range clean(rp.HedgeWords) {
		if strings.Contains(h, " ") {
			p.HedgePhrases = append(p.HedgePhrases, h)
			continue
		}
		p.HedgeWords[h] = struct{}{}
	}

	return p, nil
}

// Name returns meta.name or "" when absent
func (p *Pack) Name() string {
	if p == nil || p.Meta == nil {
		return ""
	}
	s, _ := p.Meta["name"].(string)
	return s
}

// Stats reports list sizes, handy for the meta endpoint and startup logs
func (p *Pack) Stats() map[string]int {
	return map[string]int{
		"ai_phrases":        len(p.AIPhrases),
		"hype_words":        len(p.HypeWords),
		"template_phrases":  len(p.TemplatePhrases),
		"vague_words":       len(p.VagueWords),
		"positive_words":    len(p.PositiveWords),
		"negative_words":    len(p.NegativeWords),
		"hedge_words":       len(p.HedgeWords) + len(p.HedgePhrases),
		"connectives":       len(p.Connectives),
		"family_words":      len(p.FamilyWords),
		"measurement_units": len(p.MeasurementUnits),
	}
}

// clean lowercases, trims, drops empties, dedupes and sorts for deterministic iteration
func clean(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.Join(strings.Fields(s), " "))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func toSet(in []string) map[string]struct{} {
	lst := clean(in)
	out := make(map[string]struct{}, len(lst))
	for _, s := range lst {
		out[s] = struct{}{}
	}
	return out
}
