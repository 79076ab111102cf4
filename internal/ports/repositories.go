package ports

import (
	"context"
	"time"

	"finprobe/internal/domain"
)

// AnalysisRepository holds the current analysis for each session. Saving for a
// session that already has one replaces it.
type AnalysisRepository interface {
	Save(ctx context.Context, a domain.Analysis) error
	Latest(ctx context.Context, sessionID string) (a domain.Analysis, found bool, err error)
	PurgeExpired(ctx context.Context, now time.Time) (purged int64, err error)
	Close() error
}
