package scorer

import (
	"encoding/json"
	"maps"
	"slices"
	"time"

	"reviewtrust/internal/core/signal"
)

// CategoryDetail is one row of the per-category breakdown
type CategoryDetail struct {
	Score   float64 `json:"score"`
	Weight  float64 `json:"weight"`
	Signals int     `json:"signals"`
}

// Result is an immutable trust assessment; accessors hand out copies
type Result struct {
	score       *float64
	level       Level
	confidence  float64
	message     string
	details     map[signal.Category]CategoryDetail
	issues      []Issue
	signalCount int
	timestamp   time.Time
}

// Projection is the plain serialized form of a Result
type Projection struct {
	Score       *float64  `json:"score"`
	Level       Level     `json:"level"`
	Confidence  float64   `json:"confidence"`
	Message     string    `json:"message"`
	Issues      []Issue   `json:"issues"`
	SignalCount int       `json:"signalCount"`
	Timestamp   time.Time `json:"timestamp"`
}

// Score is nil when the level is INSUFFICIENT_DATA
func (r *Result) Score() *float64 {
	if r.score == nil {
		return nil
	}
	s := *r.score
	return &s
}

func (r *Result) Level() Level { return r.level }
func (r *Result) Confidence() float64 { return r.confidence }
func (r *Result) Message() string { return r.message }
func (r *Result) SignalCount() int { return r.signalCount }
func (r *Result) Timestamp() time.Time { return r.timestamp }
func (r *Result) Color() string { return r.level.Color() }
func (r *Result) Icon() string { return r.level.Icon() }
func (r *Result) Issues() []Issue { return slices.Clone(r.issues) }
func (r *Result) Details() map[signal.Category]CategoryDetail {
	return maps.Clone(r.details)
}

// WithMessage returns a copy carrying msg
func (r *Result) WithMessage(msg string) *Result {
	cp := *r
	cp.message = msg
	cp.score = r.Score()
	cp.issues = r.Issues()
	cp.details = r.Details()
	return &cp
}

// Projection returns the serializable view
func (r *Result) Projection() Projection {
	issues := r.Issues()
	if issues == nil {
		issues = []Issue{}
	}
	return Projection{
		Score:       r.Score(),
		Level:       r.level,
		Confidence:  r.confidence,
		Message:     r.message,
		Issues:      issues,
		SignalCount: r.signalCount,
		Timestamp:   r.timestamp,
	}
}

// MarshalJSON emits the projection
func (r *Result) MarshalJSON() ([]byte, error) { return json.Marshal(r.Projection()) }
