package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"chat-panel/contract"
)

var _ contract.Worker = (*CacheGCWorker)(nil)

// CacheGCWorker reclaims Badger value-log space behind the avatar cache.
// Badger only garbage-collects when asked; for a small cache once per
// interval is plenty.
type CacheGCWorker struct {
	db       *badger.DB
	log      *slog.Logger
	interval time.Duration
}

func NewCacheGCWorker(db *badger.DB, log *slog.Logger, interval time.Duration) *CacheGCWorker {
	return &CacheGCWorker{db: db, log: log, interval: interval}
}

func (w *CacheGCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			err := w.db.RunValueLogGC(0.5)
			if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				w.log.Warn("Cache GC pass failed", "error", err)
			}
		}
	}
}
