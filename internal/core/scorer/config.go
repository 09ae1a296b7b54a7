package scorer

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"reviewtrust/internal/core/signal"
)

// Thresholds are the lower bounds of each trust band
type Thresholds struct {
	High     float64 `json:"high"`
	Moderate float64 `json:"moderate"`
	Low      float64 `json:"low"`
}

// Config tunes a Scorer; New takes a deep copy so callers may keep mutating theirs
type Config struct {
	SignalWeights   map[signal.Category]map[string]float64 `json:"signals"`
	CategoryWeights map[signal.Category]float64            `json:"categories"`
	Thresholds      Thresholds                             `json:"thresholds"`

	// MinSignalsRequired known signals below which no score is produced
	MinSignalsRequired int `json:"minSignalsRequired"`
	// ConfidenceDecay caps confidence even at full coverage
	ConfidenceDecay float64 `json:"confidenceDecay"`
	// FullCoverageSignals is the signal count treated as complete evidence
	FullCoverageSignals int `json:"fullCoverageSignals"`
}

// DefaultConfig returns the stock weights and thresholds
func DefaultConfig() Config {
	return Config{
		SignalWeights: map[signal.Category]map[string]float64{
			signal.CategoryText: {
				signal.AIDetection:            0.25,
				signal.TemplateMatching:       0.25,
				signal.RepetitionPattern:      0.20,
				signal.SentimentConsistency:   0.15,
				signal.VocabularyDistribution: 0.15,
			},
			signal.CategoryAccount: {
				signal.AccountAge:          0.25,
				signal.PostingFrequency:    0.20,
				signal.ReviewDiversity:     0.20,
				signal.ProfileCompleteness: 0.15,
				signal.NetworkSignals:      0.10,
				signal.VerifiedPurchase:    0.10,
			},
			signal.CategoryBehavioral: {
				signal.CoordinatedLanguage:    0.35,
				signal.TimingCluster:          0.30,
				signal.AccountCreationCluster: 0.20,
				signal.RatingDistribution:     0.15,
			},
			signal.CategoryMedia: {
				signal.ImageReuse:    0.60,
				signal.MediaPresence: 0.40,
			},
		},
		CategoryWeights: map[signal.Category]float64{
			signal.CategoryText:       0.40,
			signal.CategoryAccount:    0.25,
			signal.CategoryBehavioral: 0.25,
			signal.CategoryMedia:      0.10,
		},
		Thresholds:          Thresholds{High: 0.75, Moderate: 0.50, Low: 0.30},
		MinSignalsRequired:  3,
		ConfidenceDecay:     0.85,
		FullCoverageSignals: 10,
	}
}

// Validate rejects configs that would produce scores outside [0,1] or divide by zero
func (c Config) Validate() error {
	if c.MinSignalsRequired < 1 {
		return fmt.Errorf("scorer: minSignalsRequired must be >= 1, got %d", c.MinSignalsRequired)
	}
	if c.FullCoverageSignals < 1 {
		return fmt.Errorf("scorer: fullCoverageSignals must be >= 1, got %d", c.FullCoverageSignals)
	}
	if c.ConfidenceDecay <= 0 || c.ConfidenceDecay > 1 {
		return fmt.Errorf("scorer: confidenceDecay must be in (0,1], got %v", c.ConfidenceDecay)
	}
	t := c.Thresholds
	if !(t.High > t.Moderate && t.Moderate > t.Low && t.Low > 0 && t.High <= 1) {
		return fmt.Errorf("scorer: thresholds must satisfy 0 < low < moderate < high <= 1, got %+v", t)
	}
	for cat, ws := range c.SignalWeights {
		if _, ok := c.CategoryWeights[cat]; !ok {
			return fmt.Errorf("scorer: category %s has signal weights but no category weight", cat)
		}
		for name, w := range ws {
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("scorer: weight %s.%s must be a finite non-negative number", cat, name)
			}
		}
	}
	for cat, w := range c.CategoryWeights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("scorer: category weight %s must be a finite non-negative number", cat)
		}
	}
	return nil
}

// LoadConfig overlays a JSON document onto base
// Signal and category tables are merged key by key; scalar fields replace base when present
func LoadConfig(r io.Reader, base Config) (Config, error) {
	var over struct {
		Signals             map[signal.Category]map[string]float64 `json:"signals"`
		Categories          map[signal.Category]float64            `json:"categories"`
		Thresholds          *Thresholds                            `json:"thresholds"`
		MinSignalsRequired  *int                                   `json:"minSignalsRequired"`
		ConfidenceDecay     *float64                               `json:"confidenceDecay"`
		FullCoverageSignals *int                                   `json:"fullCoverageSignals"`
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&over); err != nil {
		return Config{}, fmt.Errorf("scorer: decode config: %w", err)
	}

	out := base.clone()
	for cat, ws := range over.Signals {
		if out.SignalWeights[cat] == nil {
			out.SignalWeights[cat] = map[string]float64{}
		}
		for name, w := range ws {
			out.SignalWeights[cat][name] = w
		}
	}
	for cat, w := range over.Categories {
		out.CategoryWeights[cat] = w
	}
	if over.Thresholds != nil {
		out.Thresholds = *over.Thresholds
	}
	if over.MinSignalsRequired != nil {
		out.MinSignalsRequired = *over.MinSignalsRequired
	}
	if over.ConfidenceDecay != nil {
		out.ConfidenceDecay = *over.ConfidenceDecay
	}
	if over.FullCoverageSignals != nil {
		out.FullCoverageSignals = *over.FullCoverageSignals
	}
	if err := out.Validate(); err != nil {
		return Config{}, err
	}
	return out, nil
}

func (c Config) clone() Config {
	out := c
	out.SignalWeights = make(map[signal.Category]map[string]float64, len(c.SignalWeights))
	for cat, ws := range c.SignalWeights {
		cp := make(map[string]float64, len(ws))
		for k, v := range ws {
			cp[k] = v
		}
		out.SignalWeights[cat] = cp
	}
	out.CategoryWeights = make(map[signal.Category]float64, len(c.CategoryWeights))
	for k, v := range c.CategoryWeights {
		out.CategoryWeights[k] = v
	}
	return out
}
