package observability

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Snapshot(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default())

	mm.IncrSent(10)
	mm.IncrSent(5)
	mm.IncrReceived(7)
	mm.IncrDropped(3)
	mm.IncrFailed()
	mm.IncrRejected()
	mm.IncrRejected()

	stats := mm.Snapshot()
	req.Equal(uint64(2), stats.FramesSent)
	req.Equal(uint64(15), stats.BytesSent)
	req.Equal(uint64(1), stats.FramesReceived)
	req.Equal(uint64(7), stats.BytesReceived)
	req.Equal(uint64(3), stats.DroppedSends)
	req.Equal(uint64(1), stats.FailedSends)
	req.Equal(uint64(2), stats.RejectedInputs)
	req.GreaterOrEqual(int64(stats.Uptime), int64(0))
}
