package sink

import (
	"log/slog"
	"nym-chat/contract"
)

// Fanout forwards every append to each sink, in order.
type Fanout []contract.LogSink

func (f Fanout) AppendSent(text string) {
	for _, s := range f {
		s.AppendSent(text)
	}
}

func (f Fanout) AppendReceived(text string) {
	for _, s := range f {
		s.AppendReceived(text)
	}
}

// Journal writes each append to the structured log. The text itself is only
// logged at debug level.
type Journal struct {
	log *slog.Logger
}

func NewJournal(log *slog.Logger) Journal {
	return Journal{log: log}
}

func (j Journal) AppendSent(text string) {
	j.log.Info("Message sent", "length", len(text))
	j.log.Debug("Sent text", "text", text)
}

func (j Journal) AppendReceived(text string) {
	j.log.Info("Message received", "length", len(text))
	j.log.Debug("Received text", "text", text)
}
