package ports

import (
	"context"
	"io"

	"finprobe/internal/domain"
	"finprobe/internal/services/results"
)

// Evaluator maps a financial record to its flags.
type Evaluator interface {
	Evaluate(rec domain.FinancialRecord) (domain.FlagSet, error)
}

// Analyses runs uploads through ingest and evaluation and tracks the current
// analysis per session.
type Analyses interface {
	Evaluate(ctx context.Context, doc io.Reader) (domain.Analysis, error)
	Submit(ctx context.Context, sessionID string, doc io.Reader) (domain.Analysis, error)
	Current(ctx context.Context, sessionID string) (domain.Analysis, error)
}

// Results turns an analysis into cards, insights and a chart.
type Results interface {
	Build(a domain.Analysis) (results.View, error)
}
