package repositories

import (
	"fmt"
	"log/slog"
	"nym-chat/domain"
	"slices"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// OpenInMemory opens a badger database that never touches the disk.
// Everything stored in it is gone once the process exits.
func OpenInMemory() (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
}

type LogRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewLogRepository(db *badger.DB, log *slog.Logger) *LogRepository {
	return &LogRepository{db: db, log: log}
}

// Append stores an entry under "log:{direction}:{seq}:{uuid}".
// The 20-digit padded seq keeps arrival order under lexicographical scans.
func (r *LogRepository) Append(entry domain.LogEntry) error {
	value, err := fromLogEntry(entry)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(value)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(entryKey(entry), bytes)
	})
}

// List returns the last limit entries of a direction, oldest first.
// A limit of zero or less returns all of them.
func (r *LogRepository) List(direction domain.Direction, limit int) ([]domain.LogEntry, error) {
	var entries []domain.LogEntry
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("log:%s:", direction))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Past the highest padded seq, then walk back
		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(entries) == limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d entries reached", limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				entry, err := toLogEntry(value)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(entries)
	return entries, nil
}

func entryKey(entry domain.LogEntry) []byte {
	return []byte(fmt.Sprintf("log:%s:%020d:%s", entry.Direction, entry.Seq, entry.ID))
}

func fromLogEntry(entry domain.LogEntry) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":        entry.ID.String(),
		"direction": string(entry.Direction),
		"seq":       strconv.FormatUint(entry.Seq, 10),
		"text":      entry.Text,
		"at":        entry.At.Format(time.RFC3339Nano),
	})
}

func toLogEntry(value []byte) (domain.LogEntry, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(value, &s); err != nil {
		return domain.LogEntry{}, err
	}
	fields := s.GetFields()

	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return domain.LogEntry{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return domain.LogEntry{}, err
	}
	seq, err := strconv.ParseUint(fields["seq"].GetStringValue(), 10, 64)
	if err != nil {
		return domain.LogEntry{}, err
	}

	entry := domain.NewLogEntry(domain.Direction(fields["direction"].GetStringValue()), seq, fields["text"].GetStringValue(), at)
	entry.ID = id
	return entry, nil
}
