package domain

import (
	"context"

	"reviewtrust/internal/core/account"
	"reviewtrust/internal/core/signal"
)

// AnalyzerPort is what transports call
type AnalyzerPort interface {
	AnalyzeText(ctx context.Context, text string) (ItemResult, error)
	AnalyzeProfile(ctx context.Context, p *account.Profile) (ItemResult, error)
	AnalyzeBatch(ctx context.Context, b Batch) (BatchResult, error)
	Score(ctx context.Context, b signal.Bundle) (ItemResult, error)
	Result(ctx context.Context, id string) (ArchivedResult, error)
}

// ArchivePort stores result projections by id; Get of an unknown id is a NotFound error
type ArchivePort interface {
	Save(ctx context.Context, rs ...ArchivedResult) error
	Get(ctx context.Context, id string) (ArchivedResult, error)
}

// IssueSinkPort receives issue rows for analytics
type IssueSinkPort interface {
	Write(ctx context.Context, evs []IssueEvent) error
}
