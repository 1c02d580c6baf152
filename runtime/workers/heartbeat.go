package workers

import (
	"context"
	"log/slog"
	"nym-chat/observability"
	"time"
)

// HeartbeatWorker logs the session counters and the process footprint at a
// fixed interval, until its context is done.
type HeartbeatWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, monitoring *observability.MonitoringManager, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, monitoring: monitoring, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Debug("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats := w.monitoring.Snapshot()
			w.log.Info("Heartbeat",
				"frames_sent", stats.FramesSent,
				"frames_received", stats.FramesReceived,
				"dropped_sends", stats.DroppedSends,
				"ram_bytes", stats.RamBytes,
				"cpu_percent", stats.CpuPercent,
			)
		}
	}
}
