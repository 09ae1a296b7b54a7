package module

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"reviewtrust/internal/core/scorer"
	"reviewtrust/internal/platform/config"
)

// Options holds configuration settings for the analyze module
type Options struct {
	Workers      int
	MaxItems     int
	MaxBodyBytes int64
	StrictSinks  bool

	MinSignals      int
	ConfidenceDecay float64
	FullCoverage    int
	WeightsFile     string

	// Registerer receives the service collectors; nil leaves them unregistered
	Registerer prometheus.Registerer
}

// FromConfig extracts Options from CORE_ANALYZE_* and CORE_SCORER_*
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("CORE_ANALYZE_")
	sf := cfg.Prefix("CORE_SCORER_")
	return Options{
		Workers:      af.MayIntIn("WORKERS", 4, 1, 256),
		MaxItems:     af.MayInt("MAX_ITEMS", 500),
		MaxBodyBytes: int64(af.MayInt("MAX_BODY_BYTES", 8<<20)),
		StrictSinks:  af.MayBool("STRICT_SINKS", false),

		// zero keeps the default or the weights file value
		MinSignals:      sf.MayInt("MIN_SIGNALS", 0),
		ConfidenceDecay: sf.MayFloat64("CONFIDENCE_DECAY", 0),
		FullCoverage:    sf.MayInt("FULL_COVERAGE", 0),
		WeightsFile:     sf.MayString("WEIGHTS_FILE", ""),
	}
}

// merge lays non-zero overrides over o
func (o Options) merge(ov Options) Options {
	if ov.Workers != 0 {
		o.Workers = ov.Workers
	}
	if ov.MaxItems != 0 {
		o.MaxItems = ov.MaxItems
	}
	if ov.MaxBodyBytes != 0 {
		o.MaxBodyBytes = ov.MaxBodyBytes
	}
	if ov.MinSignals != 0 {
		o.MinSignals = ov.MinSignals
	}
	if ov.ConfidenceDecay != 0 {
		o.ConfidenceDecay = ov.ConfidenceDecay
	}
	if ov.FullCoverage != 0 {
		o.FullCoverage = ov.FullCoverage
	}
	if ov.WeightsFile != "" {
		o.WeightsFile = ov.WeightsFile
	}
	if ov.Registerer != nil {
		o.Registerer = ov.Registerer
	}
	// bool override wins only when set
	o.StrictSinks = o.StrictSinks || ov.StrictSinks
	return o
}

// ScorerConfig builds the scorer tuning: defaults, then the weights file, then the scalar knobs
func (o Options) ScorerConfig() (scorer.Config, error) {
	cfg := scorer.DefaultConfig()
	if o.WeightsFile != "" {
		f, err := os.Open(o.WeightsFile)
		if err != nil {
			return scorer.Config{}, fmt.Errorf("scorer weights: %w", err)
		}
		defer f.Close()
		if cfg, err = scorer.LoadConfig(f, cfg); err != nil {
			return scorer.Config{}, fmt.Errorf("scorer weights %s: %w", o.WeightsFile, err)
		}
	}
	if o.MinSignals > 0 {
		cfg.MinSignalsRequired = o.MinSignals
	}
	if o.ConfidenceDecay > 0 {
		cfg.ConfidenceDecay = o.ConfidenceDecay
	}
	if o.FullCoverage > 0 {
		cfg.FullCoverageSignals = o.FullCoverage
	}
	if err := cfg.Validate(); err != nil {
		return scorer.Config{}, err
	}
	return cfg, nil
}
