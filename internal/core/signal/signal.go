// Package signal defines the value types every detector emits and the scorer consumes
package signal

import "math"

// Category groups related signals
type Category string

const (
	// CategoryText covers lexical signals computed from one review text
	CategoryText Category = "text"
	// CategoryAccount covers signals computed from one author profile
	CategoryAccount Category = "account"
	// CategoryBehavioral covers coordination signals computed across a batch
	CategoryBehavioral Category = "behavioral"
	// CategoryMedia covers signals about attached images or video
	CategoryMedia Category = "media"
)

// Output is one detector measurement
// Score nil means the signal could not be computed, which is not the same as a low score
type Output struct {
	Score  *float64 `json:"score"`
	Detail string   `json:"detail,omitempty"`
}

// Known reports whether the signal carries a usable score
// Scores outside [0,1] or NaN, which only arrive through decoded input, count as unknown
func (o *Output) Known() bool {
	return o != nil && o.Score != nil && *o.Score >= 0 && *o.Score <= 1
}

// Value returns the score and whether it is known
func (o *Output) Value() (float64, bool) {
	if !o.Known() {
		return 0, false
	}
	return *o.Score, true
}

// Unknown returns an output with no score
func Unknown() *Output { return &Output{} }

// Of returns a scored output without detail
func Of(score float64) *Output {
	s := Clamp01(score)
	return &Output{Score: &s}
}

// Flagged returns a scored output with a human readable justification
func Flagged(score float64, detail string) *Output {
	o := Of(score)
	o.Detail = detail
	return o
}

// Set is the per-category map of signal name to output (nil output == null signal)
type Set map[string]*Output

// Bundle maps category to its signals
type Bundle map[Category]Set

// Clone returns a shallow copy safe to extend without touching the original maps
func (b Bundle) Clone() Bundle {
	out := make(Bundle, len(b))
	for c, set := range b {
		cp := make(Set, len(set))
		for k, v := range set {
			cp[k] = v
		}
		out[c] = cp
	}
	return out
}

// Count returns the number of known signals across all categories
func (b Bundle) Count() int {
	n := 0
	for _, set := range b {
		for _, o := range set {
			if o.Known() {
				n++
			}
		}
	}
	return n
}

// Clamp01 pins v into [0,1]; NaN maps to 0
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
