package lexical

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"reviewtrust/internal/core/signal"
)

// densityUnit is the text length densities are normalized to
const densityUnit = 500.0

// AIDetection penalizes stock assistant phrasing and hype saturation
func (a *Analyzer) AIDetection(t Text) *signal.Output {
	if !t.Scorable() {
		return signal.Unknown()
	}
	ai := a.ai.Count(t.Norm)
	hype := a.hype.Count(t.Norm)

	units := float64(utf8.RuneCountInString(t.Norm)) / densityUnit
	aiDensity := float64(ai.Total) / units
	hypeDensity := float64(hype.Total) / units

	score := 1 - math.Min(0.5, aiDensity*0.25)
	hyped := hypeDensity > 3
	if hyped {
		score -= math.Min(0.4, hypeDensity*0.08)
	}
	if ai.Total == 0 && !hyped {
		return signal.Of(score)
	}
	detail := fmt.Sprintf("%d AI-style phrase(s), %d hype word(s)", ai.Total, hype.Total)
	if top := ai.Top(3); len(top) > 0 {
		detail += ": " + strings.Join(top, ", ")
	}
	return signal.Flagged(score, detail)
}
