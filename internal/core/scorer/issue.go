package scorer

import (
	"fmt"

	"reviewtrust/internal/core/signal"
)

// Severity ranks an issue
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

const (
	issueCutoff = 0.4
	highCutoff  = 0.2
)

// Issue is a low scoring signal surfaced to the reader
type Issue struct {
	Category signal.Category `json:"category"`
	Signal   string          `json:"signal"`
	Score    float64         `json:"score"`
	Detail   string          `json:"detail"`
	Severity Severity        `json:"severity"`
}

// IssueFor returns the issue a signal raises, if any
func IssueFor(cat signal.Category, name string, out *signal.Output) (Issue, bool) {
	v, ok := out.Value()
	if !ok || v >= issueCutoff {
		return Issue{}, false
	}
	sev := SeverityMedium
	if v < highCutoff {
		sev = SeverityHigh
	}
	detail := out.Detail
	if detail == "" {
		detail = fmt.Sprintf("%s scored %.2f", name, v)
	}
	return Issue{Category: cat, Signal: name, Score: v, Detail: detail, Severity: sev}, true
}
