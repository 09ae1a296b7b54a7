// Package lexical scores a single review text for signs of generated or templated writing.
// Every detector returns a score in [0,1] where higher means more likely authentic, or an unknown
// output when the text is too short to judge
package lexical

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"reviewtrust/internal/core/normalize"
	"reviewtrust/internal/core/rulepack"
	"reviewtrust/internal/core/signal"
)

// MinTextRunes is the shortest normalized text any detector will score
const MinTextRunes = 20

// Text is one review prepared for the detectors
// Raw is kept for case sensitive checks; Norm is what phrase lists match against
type Text struct {
	Raw   string
	Norm  string
	Words []string
}

// Scorable reports whether the text is long enough to score
func (t Text) Scorable() bool { return utf8.RuneCountInString(t.Norm) >= MinTextRunes }

// Analyzer holds compiled matchers for one rule pack; safe for concurrent use
type Analyzer struct {
	pack *rulepack.Pack
	norm *normalize.Normalizer

	ai        *phraseMatcher
	hype      *phraseMatcher
	templates *phraseMatcher
	hedges    *phraseMatcher

	measure *regexp.Regexp
	family  *regexp.Regexp
}

// New compiles an analyzer for p
func New(p *rulepack.Pack) *Analyzer {
	return &Analyzer{
		pack:      p,
		norm:      normalize.New(),
		ai:        newPhraseMatcher(p.AIPhrases),
		hype:      newPhraseMatcher(p.HypeWords),
		templates: newPhraseMatcher(p.TemplatePhrases),
		hedges:    newPhraseMatcher(p.HedgePhrases),
		measure:   alternation(`\b\d+(?:[.,]\d+)?\s?(?:`, p.MeasurementUnits, `)\b`),
		family:    alternation(`\b(?:my|our)\s+(?:`, p.FamilyWords, `)\b`),
	}
}

// Default returns an analyzer over the embedded rule pack
func Default() *Analyzer { return New(rulepack.MustLoad()) }

// Pack exposes the rule pack the analyzer was built from
func (a *Analyzer) Pack() *rulepack.Pack { return a.pack }

// Prepare sanitizes, normalizes and tokenizes raw
func (a *Analyzer) Prepare(raw string) Text {
	n := a.norm.Normalize(raw)
	return Text{Raw: normalize.Sanitize(raw), Norm: n, Words: words(n)}
}

// Analyze runs every text detector over raw
func (a *Analyzer) Analyze(raw string) signal.Set {
	t := a.Prepare(raw)
	return signal.Set{
		signal.AIDetection:            a.AIDetection(t),
		signal.TemplateMatching:       a.TemplateMatching(t),
		signal.RepetitionPattern:      a.RepetitionPattern(t),
		signal.SentimentConsistency:   a.SentimentConsistency(t),
		signal.VocabularyDistribution: a.VocabularyDistribution(t),
	}
}

func alternation(prefix string, items []string, suffix string) *regexp.Regexp {
	if len(items) == 0 {
		return nil
	}
	alts := make([]string, 0, len(items))
	for _, it := range items {
		alts = append(alts, regexp.QuoteMeta(it))
	}
	// longest first so "inches" wins over "inch"
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	return regexp.MustCompile(prefix + strings.Join(alts, "|") + suffix)
}
