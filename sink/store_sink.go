package sink

import (
	"log/slog"
	"nym-chat/contract"
	"nym-chat/domain"
)

// StoreSink keeps every stamped entry in the session store and the search
// index. A failing store never blocks the log: errors are logged and dropped.
type StoreSink struct {
	repository contract.ILogRepository
	index      contract.ISearchIndex
	log        *slog.Logger
}

func NewStoreSink(repository contract.ILogRepository, index contract.ISearchIndex, log *slog.Logger) StoreSink {
	return StoreSink{repository: repository, index: index, log: log}
}

func (s StoreSink) OnEntry(entry domain.LogEntry) {
	if s.repository != nil {
		if err := s.repository.Append(entry); err != nil {
			s.log.Error("Unable to store entry", "id", entry.ID, "error", err)
		}
	}
	if s.index != nil {
		if err := s.index.Index(entry); err != nil {
			s.log.Error("Unable to index entry", "id", entry.ID, "error", err)
		}
	}
}
