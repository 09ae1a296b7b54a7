// Package domain defines the analyze service's types and the ports it talks through
package domain

import (
	"time"

	"reviewtrust/internal/core/account"
	"reviewtrust/internal/core/scorer"
	"reviewtrust/internal/core/signal"
)

// Kind labels what produced a result
type Kind string

const (
	KindText    Kind = "text"
	KindProfile Kind = "profile"
	KindBatch   Kind = "batch"
	KindScore   Kind = "score"
)

// Item is one review on a page
type Item struct {
	ID      string           `json:"id"`
	Text    string           `json:"text"`
	Profile *account.Profile `json:"profile,omitempty"`
	// Extra holds signals measured elsewhere, e.g. media checks; they are merged as given
	Extra signal.Bundle `json:"extra,omitempty"`
}

// Batch is every review collected from one page
type Batch struct {
	ID              string      `json:"id,omitempty"`
	Items           []Item      `json:"items"`
	RatingHistogram map[int]int `json:"ratingHistogram,omitempty"`
}

// ItemResult is the assessment of one item
type ItemResult struct {
	ID       string         `json:"id"`
	ResultID string         `json:"resultId"`
	Signals  signal.Bundle  `json:"signals"`
	Result   *scorer.Result `json:"result"`
}

// BatchResult carries the shared behavioral signals and per-item results in input order
type BatchResult struct {
	BatchID    string       `json:"batchId"`
	Behavioral signal.Set   `json:"behavioral"`
	Items      []ItemResult `json:"items"`
}

// ArchivedResult is the stored form of a result
type ArchivedResult struct {
	ID        string            `json:"id"`
	Kind      Kind              `json:"kind"`
	BatchID   string            `json:"batchId,omitempty"`
	ItemID    string            `json:"itemId,omitempty"`
	Result    scorer.Projection `json:"result"`
	Signals   signal.Bundle     `json:"signals,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// IssueEvent is one issue row for analytics
type IssueEvent struct {
	ResultID string
	BatchID  string
	ItemID   string
	Kind     Kind
	Level    scorer.Level
	Category signal.Category
	Signal   string
	Score    float64
	Severity scorer.Severity
	At       time.Time
}

// Archive builds the stored form of r
func Archive(id string, kind Kind, batchID, itemID string, r ItemResult) ArchivedResult {
	p := r.Result.Projection()
	return ArchivedResult{
		ID:        id,
		Kind:      kind,
		BatchID:   batchID,
		ItemID:    itemID,
		Result:    p,
		Signals:   r.Signals,
		CreatedAt: p.Timestamp,
	}
}

// Events flattens a result's issues into analytics rows
func Events(a ArchivedResult) []IssueEvent {
	out := make([]IssueEvent, 0, len(a.Result.Issues))
	for _, is := range a.Result.Issues {
		out = append(out, IssueEvent{
			ResultID: a.ID,
			BatchID:  a.BatchID,
			ItemID:   a.ItemID,
			Kind:     a.Kind,
			Level:    a.Result.Level,
			Category: is.Category,
			Signal:   is.Signal,
			Score:    is.Score,
			Severity: is.Severity,
			At:       a.CreatedAt,
		})
	}
	return out
}
