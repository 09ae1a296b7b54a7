package scorer

// Level is the trust band a score falls into
type Level string

const (
	LevelHigh         Level = "HIGH_TRUST"
	LevelModerate     Level = "MODERATE_TRUST"
	LevelLow          Level = "LOW_TRUST"
	LevelVeryLow      Level = "VERY_LOW_TRUST"
	LevelInsufficient Level = "INSUFFICIENT_DATA"
)

type levelStyle struct {
	color   string
	icon    string
	message string // %d is the issue count
}

// insufficient data has its own grey style so it never reads as a trust verdict
var styles = map[Level]levelStyle{
	LevelHigh:         {"#16a34a", "✓", "Looks authentic (%d issue(s) noted)"},
	LevelModerate:     {"#ca8a04", "~", "Mostly credible, %d issue(s) worth a look"},
	LevelLow:          {"#ea580c", "!", "Questionable: %d issue(s) detected"},
	LevelVeryLow:      {"#dc2626", "✗", "Low authenticity signals: %d issue(s) detected"},
	LevelInsufficient: {"#9ca3af", "?", insufficientMessage},
}

const (
	insufficientMessage = "Not enough data to assess authenticity"
	limitedPrefix       = "Limited data: "
)

// Color is the display color for the band
func (l Level) Color() string { return styles[l].color }

// Icon is the display glyph for the band
func (l Level) Icon() string { return styles[l].icon }

// classify maps a score onto a band; first satisfied threshold wins
func classify(score float64, t Thresholds) Level {
	switch {
	case score >= t.High:
		return LevelHigh
	case score >= t.Moderate:
		return LevelModerate
	case score >= t.Low:
		return LevelLow
	default:
		return LevelVeryLow
	}
}
