// Package crossitem detects coordinated wording across the reviews of one page
package crossitem

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"reviewtrust/internal/core/lexical"
	"reviewtrust/internal/core/normalize"
	"reviewtrust/internal/core/signal"
)

const (
	// ShingleWords is the phrase length compared between texts
	ShingleWords = 4
	// MinTexts is both the smallest batch Detect scores and the spread a phrase needs to count
	MinTexts = 3

	penaltyPerPhrase = 0.15
	detailPhrases    = 3
)

var norm = normalize.New()

// Detect scores a batch of review texts; fewer than MinTexts texts is unknown
func Detect(texts []string) *signal.Output {
	if len(texts) < MinTexts {
		return signal.Unknown()
	}
	shared := SharedPhrases(texts, MinTexts)
	if len(shared) == 0 {
		return signal.Of(1)
	}
	score := math.Max(0, 1-penaltyPerPhrase*float64(len(shared)))
	top := shared[:min(detailPhrases, len(shared))]
	return signal.Flagged(score, fmt.Sprintf("%d phrase(s) shared across %d+ reviews: %s",
		len(shared), MinTexts, strings.Join(quote(top), ", ")))
}

// SharedPhrases returns every ShingleWords-word phrase found in at least minTexts distinct texts
// Ordered by spread, most widely shared first, then alphabetically
func SharedPhrases(texts []string, minTexts int) []string {
	spread := map[string]int{}
	for _, t := range texts {
		for sh := range shingles(norm.Normalize(t)) {
			spread[sh]++
		}
	}
	out := make([]string, 0)
	for sh, n := range spread {
		if n >= minTexts {
			out = append(out, sh)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if spread[out[i]] != spread[out[j]] {
			return spread[out[i]] > spread[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

// shingles is deduped per text so one review repeating itself cannot look coordinated
func shingles(n string) map[string]struct{} {
	ws := lexical.Tokens(n)
	set := map[string]struct{}{}
	for i := 0; i+ShingleWords <= len(ws); i++ {
		set[strings.Join(ws[i:i+ShingleWords], " ")] = struct{}{}
	}
	return set
}

func quote(xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = `"` + x + `"`
	}
	return out
}
