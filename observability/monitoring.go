package observability

import (
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// SessionStats is a point-in-time copy of the session counters.
type SessionStats struct {
	FramesSent       uint64        `json:"frames_sent"`
	FramesReceived   uint64        `json:"frames_received"`
	BytesSent        uint64        `json:"bytes_sent"`
	BytesReceived    uint64        `json:"bytes_received"`
	DroppedSends     uint64        `json:"dropped_sends"`
	FailedSends      uint64        `json:"failed_sends"`
	RejectedInputs   uint64        `json:"rejected_inputs"`
	Uptime           time.Duration `json:"uptime"`
	RamBytes         uint64        `json:"ram_bytes"`
	CpuPercent       float64       `json:"cpu_percent"`
	ProcessAvailable bool          `json:"process_available"`
}

// MonitoringManager counts messages and payload bytes that crossed the socket.
// Counters are atomic because UI input validation runs outside the loop.
type MonitoringManager struct {
	log     *slog.Logger
	started time.Time

	framesSent     atomic.Uint64
	framesReceived atomic.Uint64
	bytesSent      atomic.Uint64
	bytesReceived  atomic.Uint64
	droppedSends   atomic.Uint64
	failedSends    atomic.Uint64
	rejectedInputs atomic.Uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log, started: time.Now()}
}

func (mm *MonitoringManager) IncrSent(n int) {
	mm.framesSent.Add(1)
	mm.bytesSent.Add(uint64(n))
}

func (mm *MonitoringManager) IncrReceived(n int) {
	mm.framesReceived.Add(1)
	mm.bytesReceived.Add(uint64(n))
}

func (mm *MonitoringManager) IncrDropped(n int) {
	mm.droppedSends.Add(uint64(n))
}

func (mm *MonitoringManager) IncrFailed() {
	mm.failedSends.Add(1)
}

func (mm *MonitoringManager) IncrRejected() {
	mm.rejectedInputs.Add(1)
}

// Snapshot copies the counters and samples memory and CPU of this process.
func (mm *MonitoringManager) Snapshot() SessionStats {
	stats := SessionStats{
		FramesSent:     mm.framesSent.Load(),
		FramesReceived: mm.framesReceived.Load(),
		BytesSent:      mm.bytesSent.Load(),
		BytesReceived:  mm.bytesReceived.Load(),
		DroppedSends:   mm.droppedSends.Load(),
		FailedSends:    mm.failedSends.Load(),
		RejectedInputs: mm.rejectedInputs.Load(),
		Uptime:         time.Since(mm.started),
	}

	rss, cpu, err := selfStats()
	if err != nil {
		mm.log.Debug("Process stats unavailable", "error", err)
		return stats
	}
	stats.RamBytes, stats.CpuPercent, stats.ProcessAvailable = rss, cpu, true
	return stats
}

// LogSummary writes the counters as one structured line, typically at exit.
func (mm *MonitoringManager) LogSummary() {
	stats := mm.Snapshot()
	mm.log.Info("Session summary",
		"frames_sent", stats.FramesSent,
		"frames_received", stats.FramesReceived,
		"bytes_sent", stats.BytesSent,
		"bytes_received", stats.BytesReceived,
		"dropped_sends", stats.DroppedSends,
		"failed_sends", stats.FailedSends,
		"rejected_inputs", stats.RejectedInputs,
		"uptime", stats.Uptime.Round(time.Second),
	)
}

func selfStats() (uint64, float64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, 0, err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
