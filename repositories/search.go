package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"nym-chat/domain"
	"strconv"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/search"
	"github.com/google/uuid"
)

const (
	fieldDirection = "direction"
	fieldSeq       = "seq"
	fieldText      = "text"
	fieldAt        = "at"
)

// SearchIndex is a full-text index over the entries of the running session.
type SearchIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

// NewInMemorySearchIndex opens an index that lives only in memory.
func NewInMemorySearchIndex(log *slog.Logger) (*SearchIndex, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, err
	}
	return &SearchIndex{writer: writer, log: log}, nil
}

func (s *SearchIndex) Index(entry domain.LogEntry) error {
	doc := bluge.NewDocument(entry.ID.String()).
		AddField(bluge.NewKeywordField(fieldDirection, string(entry.Direction)).StoreValue()).
		AddField(bluge.NewKeywordField(fieldSeq, strconv.FormatUint(entry.Seq, 10)).StoreValue()).
		AddField(bluge.NewTextField(fieldText, entry.Text).StoreValue()).
		AddField(bluge.NewDateTimeField(fieldAt, entry.At).StoreValue().Sortable())
	return s.writer.Update(doc.ID(), doc)
}

// Search matches terms against the text of every entry, most recent first.
// A non-positive limit finds nothing.
func (s *SearchIndex) Search(ctx context.Context, terms string, limit int) ([]domain.LogEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	reader, err := s.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.log.Warn("Unable to close index reader", "error", err)
		}
	}()

	query := bluge.NewMatchQuery(terms).SetField(fieldText)
	request := bluge.NewTopNSearch(limit, query).SortBy([]string{"-" + fieldAt})

	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var entries []domain.LogEntry
	match, err := matches.Next()
	for err == nil && match != nil {
		entry, visitErr := visitEntry(match)
		if visitErr != nil {
			return nil, visitErr
		}
		entries = append(entries, entry)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	s.log.Debug("Search done", "terms", terms, "hits", len(entries))
	return entries, nil
}

func (s *SearchIndex) Close() error {
	return s.writer.Close()
}

type storedFields struct {
	id, direction, seq, text string
	at                        []byte
}

func visitEntry(match *search.DocumentMatch) (domain.LogEntry, error) {
	var fields storedFields
	err := match.VisitStoredFields(func(field string, value []byte) bool {
		switch field {
		case "_id":
			fields.id = string(value)
		case fieldDirection:
			fields.direction = string(value)
		case fieldSeq:
			fields.seq = string(value)
		case fieldText:
			fields.text = string(value)
		case fieldAt:
			fields.at = append([]byte(nil), value...)
		}
		return true
	})
	if err != nil {
		return domain.LogEntry{}, err
	}

	id, err := uuid.Parse(fields.id)
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("stored id: %w", err)
	}
	seq, err := strconv.ParseUint(fields.seq, 10, 64)
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("stored seq: %w", err)
	}
	at, err := bluge.DecodeDateTime(fields.at)
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("stored time: %w", err)
	}

	entry := domain.NewLogEntry(domain.Direction(fields.direction), seq, fields.text, at)
	entry.ID = id
	return entry, nil
}
