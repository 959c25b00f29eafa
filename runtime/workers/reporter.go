package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-panel/contract"
	"chat-panel/observability"
)

var _ contract.Worker = (*ReporterWorker)(nil)

// ReporterWorker periodically logs the session counters so a long-running
// panel leaves a telemetry trail without any external monitoring stack.
type ReporterWorker struct {
	log      *slog.Logger
	stats    *observability.SessionStats
	interval time.Duration
}

func NewReporterWorker(log *slog.Logger, stats *observability.SessionStats,
	interval time.Duration) *ReporterWorker {
	return &ReporterWorker{log: log, stats: stats, interval: interval}
}

func (w *ReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			snapshot := w.stats.Snapshot()
			args := make([]any, 0, len(snapshot)*2)
			for k, v := range snapshot {
				args = append(args, k, v)
			}
			w.log.Info("Session stats", args...)
		}
	}
}
