package lexical

import (
	"fmt"
	"unicode/utf8"

	"reviewtrust/internal/core/signal"
)

const minVocabTokens = 20

// VocabularyDistribution scores lexical variety and penalizes filler adjectives
func (a *Analyzer) VocabularyDistribution(t Text) *signal.Output {
	if !t.Scorable() {
		return signal.Unknown()
	}
	toks := letterTokens(t.Norm, 2)
	if len(toks) < minVocabTokens {
		return signal.Of(0.5)
	}

	uniq := make(map[string]struct{}, len(toks))
	lens := make([]float64, 0, len(toks))
	vague := 0
	for _, tok := range toks {
		uniq[tok] = struct{}{}
		lens = append(lens, float64(utf8.RuneCountInString(tok)))
		if _, ok := a.pack.VagueWords[tok]; ok {
			vague++
		}
	}
	ratio := float64(len(uniq)) / float64(len(toks))
	vagueDensity := float64(vague) / float64(len(toks))

	var score float64
	switch {
	case ratio > 0.85 && len(toks) > 100:
		score = 0.5
	case ratio < 0.3:
		score = 0.35
	default:
		score = 0.7 + ratio*0.2
	}
	switch {
	case vagueDensity > 0.20:
		score -= 0.35
	case vagueDensity > 0.15:
		score -= 0.2
	}
	if variance(lens) < 3 {
		score *= 0.8
	}
	if vagueDensity > 0.15 {
		return signal.Flagged(score, fmt.Sprintf("vague word density %.2f", vagueDensity))
	}
	return signal.Of(score)
}
