package lexical

import (
	"fmt"
	"regexp"

	"reviewtrust/internal/core/signal"
)

var (
	fractionRe = regexp.MustCompile(`\b\d+\s?[/⁄]\s?\d+\b`)
	percentRe  = regexp.MustCompile(`\b\d+(?:[.,]\d+)?\s?%`)
	priceRe    = regexp.MustCompile(`[$€£¥]\s?\d+(?:[.,]\d+)?|\b\d+(?:[.,]\d{2})?\s?(?:dollars|bucks|usd|eur|euros|pounds)\b`)
	// a capitalized word following lowercase text or a comma is a name, not a sentence start
	properNounRe = regexp.MustCompile(`[a-z,;:]\s+[A-Z][a-zA-Z]{2,}`)
)

// SentimentConsistency flags unhedged praise that never gets specific
// Real reviewers tend to mix in a caveat or a concrete detail
func (a *Analyzer) SentimentConsistency(t Text) *signal.Output {
	if !t.Scorable() {
		return signal.Unknown()
	}
	var pos, neg, hedge int
	for _, w := range t.Words {
		if _, ok := a.pack.PositiveWords[w]; ok {
			pos++
		}
		if _, ok := a.pack.NegativeWords[w]; ok {
			neg++
		}
		if _, ok := a.pack.HedgeWords[w]; ok {
			hedge++
		}
	}
	hedge += a.hedges.Count(t.Norm).Total
	spec := a.specificity(t)

	posDensity := 0.0
	if len(t.Words) > 0 {
		posDensity = float64(pos) / float64(len(t.Words))
	}
	detail := fmt.Sprintf("positive %d, negative %d, hedges %d, specifics %d", pos, neg, hedge, spec)

	switch {
	case posDensity > 0.06 && hedge == 0 && neg == 0 && spec == 0:
		return signal.Flagged(0.15, "unqualified praise with no specifics ("+detail+")")
	case posDensity > 0.08 && spec == 0:
		return signal.Flagged(0.30, "heavy praise with no specifics ("+detail+")")
	case posDensity > 0.06 && hedge == 0 && neg == 0:
		return signal.Flagged(0.45, "unqualified praise ("+detail+")")
	case hedge > 0 || (pos > 0 && neg > 0):
		return signal.Of(0.85)
	default:
		return signal.Of(0.60)
	}
}

// specificity counts concrete details: measurements, fractions, prices, names, family mentions
func (a *Analyzer) specificity(t Text) int {
	n := len(fractionRe.FindAllStringIndex(t.Norm, -1)) +
		len(percentRe.FindAllStringIndex(t.Norm, -1)) +
		len(priceRe.FindAllStringIndex(t.Norm, -1)) +
		len(properNounRe.FindAllStringIndex(t.Raw, -1))
	if a.measure != nil {
		n += len(a.measure.FindAllStringIndex(t.Norm, -1))
	}
	if a.family != nil {
		n += len(a.family.FindAllStringIndex(t.Norm, -1))
	}
	return n
}
