// Package scorer folds detector outputs into a single trust assessment
package scorer

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"reviewtrust/internal/core/signal"
)

// Scorer is safe for concurrent use; its config never changes after New
type Scorer struct {
	cfg Config
	now func() time.Time
}

// Option customizes a Scorer
type Option func(*Scorer)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		if now != nil {
			s.now = now
		}
	}
}

// New builds a scorer over a private copy of cfg
func New(cfg Config, opts ...Option) *Scorer {
	s := &Scorer{cfg: cfg.clone(), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Default is New(DefaultConfig())
func Default(opts ...Option) *Scorer { return New(DefaultConfig(), opts...) }

// Config returns a copy of the scorer's configuration
func (s *Scorer) Config() Config { return s.cfg.clone() }

// ComputeScore aggregates a bundle. It never fails: thin evidence yields INSUFFICIENT_DATA
func (s *Scorer) ComputeScore(b signal.Bundle) *Result {
	details := map[signal.Category]CategoryDetail{}
	var issues []Issue
	total := 0
	var weighted, weightSum float64

	for _, cat := range s.categoryOrder() {
		set, inBundle := b[cat]
		table, inTable := s.cfg.SignalWeights[cat]
		if !inBundle || !inTable {
			continue
		}
		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		sort.Strings(names)

		var sum, wsum float64
		count := 0
		var catIssues []Issue
		for _, name := range names {
			w, weightedSignal := table[name]
			v, known := set[name].Value()
			if !weightedSignal || !known || w <= 0 {
				continue
			}
			sum += v * w
			wsum += w
			count++
			if is, ok := IssueFor(cat, name, set[name]); ok {
				catIssues = append(catIssues, is)
			}
		}

		if wsum == 0 {
			details[cat] = CategoryDetail{Score: 0.5}
			continue
		}
		catScore := sum / wsum
		catWeight := s.cfg.CategoryWeights[cat]
		details[cat] = CategoryDetail{Score: catScore, Weight: catWeight, Signals: count}
		// a zero category weight switches the category off entirely
		if catWeight <= 0 {
			continue
		}
		total += count
		issues = append(issues, catIssues...)
		weighted += catScore * catWeight
		weightSum += catWeight
	}

	ts := s.now()
	if total < s.cfg.MinSignalsRequired || weightSum == 0 {
		return &Result{
			level:       LevelInsufficient,
			message:     insufficientMessage,
			details:     details,
			issues:      []Issue{},
			signalCount: total,
			timestamp:   ts,
		}
	}

	score := signal.Clamp01(weighted / weightSum)
	confidence := math.Min(1, float64(total)/float64(s.cfg.FullCoverageSignals)) * s.cfg.ConfidenceDecay
	level := classify(score, s.cfg.Thresholds)
	if issues == nil {
		issues = []Issue{}
	}
	return &Result{
		score:       &score,
		level:       level,
		confidence:  confidence,
		message:     compose(level, len(issues), confidence),
		details:     details,
		issues:      issues,
		signalCount: total,
		timestamp:   ts,
	}
}

// categoryOrder lists the built-in categories first, then any extra configured ones by name
func (s *Scorer) categoryOrder() []signal.Category {
	order := slices.Clone(signal.Categories)
	var extra []signal.Category
	for cat := range s.cfg.SignalWeights {
		if !slices.Contains(order, cat) {
			extra = append(extra, cat)
		}
	}
	slices.Sort(extra)
	return append(order, extra...)
}

func compose(level Level, issues int, confidence float64) string {
	msg := fmt.Sprintf(styles[level].message, issues)
	if confidence < 0.5 {
		msg = limitedPrefix + msg
	}
	return msg
}
