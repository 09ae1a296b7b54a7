package lexical

import (
	"fmt"
	"strings"

	"reviewtrust/internal/core/signal"
)

// TemplateMatching counts stock review boilerplate; each occurrence costs 0.3
func (a *Analyzer) TemplateMatching(t Text) *signal.Output {
	if !t.Scorable() {
		return signal.Unknown()
	}
	hits := a.templates.Count(t.Norm)
	if hits.Total == 0 {
		return signal.Of(1)
	}
	return signal.Flagged(1-0.3*float64(hits.Total),
		fmt.Sprintf("%d template phrase(s): %s", hits.Total, strings.Join(hits.Top(3), ", ")))
}
