package sweeper

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"

	"finprobe/internal/ports"
)

// Run purges expired sessions every interval until ctx is cancelled. It
// blocks; start it in its own goroutine.
func Run(ctx context.Context, repo ports.AnalysisRepository, interval time.Duration, log hclog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			Sweep(ctx, repo, now, log)
		}
	}
}

// Sweep runs a single purge pass.
func Sweep(ctx context.Context, repo ports.AnalysisRepository, now time.Time, log hclog.Logger) int64 {
	n, err := repo.PurgeExpired(ctx, now)
	if err != nil {
		if ctx.Err() == nil {
			log.Error("purge expired sessions", "error", err)
		}
		return 0
	}
	if n > 0 {
		log.Debug("purged expired sessions", "count", n)
	}
	return n
}
