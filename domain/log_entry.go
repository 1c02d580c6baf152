package domain

import (
	"time"

	"github.com/google/uuid"
)

type Direction string

const (
	Sent     Direction = "sent"
	Received Direction = "received"
)

const (
	TimeOfDayLayout    = "15:04:05"
	CalendarDateLayout = "2006-01-02"
)

// LogEntry is one line of the sent or received log.
// It is stamped when it is appended, not when the frame crossed the network.
type LogEntry struct {
	ID           uuid.UUID
	Direction    Direction
	Seq          uint64 // arrival index within its direction
	Text         string
	TimeOfDay    string
	CalendarDate string
	At           time.Time
}

func NewLogEntry(direction Direction, seq uint64, text string, at time.Time) LogEntry {
	return LogEntry{
		ID:           uuid.New(),
		Direction:    direction,
		Seq:          seq,
		Text:         text,
		TimeOfDay:    at.Format(TimeOfDayLayout),
		CalendarDate: at.Format(CalendarDateLayout),
		At:           at,
	}
}
