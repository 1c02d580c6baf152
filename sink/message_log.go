package sink

import (
	"log/slog"
	"nym-chat/contract"
	"nym-chat/domain"
	"slices"
	"time"
)

// Clock returns the time an entry is stamped with.
type Clock func() time.Time

// MessageLog is the append-only sent and received log of a session.
// Entries are stamped when they are appended. It is owned by the event loop
// and has no lock.
type MessageLog struct {
	log       *slog.Logger
	now       Clock
	sent      []domain.LogEntry
	received  []domain.LogEntry
	listeners []contract.EntryListener
}

func NewMessageLog(log *slog.Logger, now Clock, listeners ...contract.EntryListener) *MessageLog {
	if now == nil {
		now = time.Now
	}
	return &MessageLog{log: log, now: now, listeners: listeners}
}

func (m *MessageLog) AppendSent(text string) {
	entry := domain.NewLogEntry(domain.Sent, uint64(len(m.sent)), text, m.now())
	m.sent = append(m.sent, entry)
	m.notify(entry)
}

func (m *MessageLog) AppendReceived(text string) {
	entry := domain.NewLogEntry(domain.Received, uint64(len(m.received)), text, m.now())
	m.received = append(m.received, entry)
	m.notify(entry)
}

// Sent returns a copy of the sent stream, oldest first.
func (m *MessageLog) Sent() []domain.LogEntry {
	return slices.Clone(m.sent)
}

// Received returns a copy of the received stream, oldest first.
func (m *MessageLog) Received() []domain.LogEntry {
	return slices.Clone(m.received)
}

func (m *MessageLog) notify(entry domain.LogEntry) {
	m.log.Debug("Entry appended", "direction", entry.Direction, "seq", entry.Seq)
	for _, listener := range m.listeners {
		listener.OnEntry(entry)
	}
}
