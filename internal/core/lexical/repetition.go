package lexical

import (
	"fmt"
	"math"
	"strings"

	"reviewtrust/internal/core/signal"
)

const (
	minSentenceRunes = 10
	openerWords      = 3
	// smallest trigram penalty worth a note
	trigramNoteFloor = 0.1
)

// RepetitionPattern looks at sentence rhythm: repeated openers, recycled trigrams,
// uniform sentence lengths, and connective-free lists of claims
func (a *Analyzer) RepetitionPattern(t Text) *signal.Output {
	if !t.Scorable() {
		return signal.Unknown()
	}
	sents := sentences(t.Norm, minSentenceRunes)
	if len(sents) < 2 {
		return signal.Of(0.5)
	}

	openers := make(map[string]struct{}, len(sents))
	lengths := make([]float64, 0, len(sents))
	connected := false
	for _, s := range sents {
		ws := words(s)
		lengths = append(lengths, float64(len(ws)))
		n := min(openerWords, len(ws))
		openers[strings.Join(ws[:n], " ")] = struct{}{}
		if !connected {
			for _, w := range ws {
				if _, ok := a.pack.Connectives[w]; ok {
					connected = true
					break
				}
			}
		}
	}
	diversity := float64(len(openers)) / float64(len(sents))
	rate := trigramRepetition(t.Words)

	var penalty float64
	var notes []string
	if len(sents) >= 3 && variance(lengths) < 4 {
		penalty += 0.3
		notes = append(notes, "uniform sentence length")
	}
	if len(sents) >= 4 && !connected {
		penalty += 0.2
		notes = append(notes, "no connectives")
	}
	if diversity < 0.5 {
		notes = append(notes, fmt.Sprintf("opener diversity %.2f", diversity))
	}
	trigramPenalty := math.Min(0.3, rate*50*0.3)
	if trigramPenalty >= trigramNoteFloor {
		notes = append(notes, fmt.Sprintf("trigram repetition %.3f", rate))
	}

	score := 1 - ((1-diversity)*0.3 + trigramPenalty + penalty)
	if len(notes) == 0 {
		return signal.Of(score)
	}
	return signal.Flagged(score, strings.Join(notes, "; "))
}

// trigramRepetition is distinct trigrams seen more than twice over the total trigram count
func trigramRepetition(ws []string) float64 {
	if len(ws) < 3 {
		return 0
	}
	total := len(ws) - 2
	seen := make(map[string]int, total)
	for i := 0; i < total; i++ {
		seen[ws[i]+" "+ws[i+1]+" "+ws[i+2]]++
	}
	repeated := 0
	for _, c := range seen {
		if c > 2 {
			repeated++
		}
	}
	return float64(repeated) / float64(total)
}
