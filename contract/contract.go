//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"nym-chat/domain"
	"reflect"
)

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// ISession is the single connection to the mixnet client daemon.
type ISession interface {
	Connect(ctx context.Context) (string, error)
	SelfAddress() (string, bool)
	Send(ctx context.Context, message domain.OutboundMessage) error
	ReceiveLoop(ctx context.Context, yield func(domain.InboundMessage)) error
	Close() error
}

// LogSink receives plain text in arrival order, one stream per direction.
// Implementations stamp the time themselves.
type LogSink interface {
	AppendSent(text string)
	AppendReceived(text string)
}

// AddressDisplay is the slot showing this client's own mixnet address.
type AddressDisplay interface {
	ShowAddress(address string)
}

// EntryListener is notified of every entry once it has been stamped.
type EntryListener interface {
	OnEntry(entry domain.LogEntry)
}

// InboundFilter rewrites received text before it is logged.
type InboundFilter interface {
	Apply(text string) string
}

// ILogRepository keeps the entries of the running session.
type ILogRepository interface {
	Append(entry domain.LogEntry) error
	List(direction domain.Direction, limit int) ([]domain.LogEntry, error)
}

type ISearchIndex interface {
	Index(entry domain.LogEntry) error
	Search(ctx context.Context, terms string, limit int) ([]domain.LogEntry, error)
}
