package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"nym-chat/contract"
	"nym-chat/domain"
	"nym-chat/infrastructure/daemon"
	"nym-chat/internal"
	"nym-chat/moderation"
	"nym-chat/observability"
	"nym-chat/repositories"
	"nym-chat/runtime/workers"
	"nym-chat/sink"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// loopBuffer bounds the continuations waiting for the loop.
const loopBuffer = 256

// Orchestrator wires a client session: the bridge and its transport, the
// message log and the session store. Hosts only provide the address slot and
// the entry listeners they display.
type Orchestrator struct {
	log        *slog.Logger
	config     internal.Config
	db         *badger.DB
	repository *repositories.LogRepository
	index      *repositories.SearchIndex
	monitoring *observability.MonitoringManager
	background contract.ISupervisor
	bridge     *Bridge
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewOrchestrator(
	log *slog.Logger,
	config internal.Config,
	display contract.AddressDisplay,
	listeners ...contract.EntryListener,
) (*Orchestrator, error) {
	return NewOrchestratorWithSession(log, config,
		daemon.NewSession(log, config.Endpoint, daemon.DefaultDialer(config.MaxFrameBytes)),
		display, listeners...)
}

// NewOrchestratorWithSession is NewOrchestrator over an existing transport.
func NewOrchestratorWithSession(
	log *slog.Logger,
	config internal.Config,
	session contract.ISession,
	display contract.AddressDisplay,
	listeners ...contract.EntryListener,
) (*Orchestrator, error) {
	filter, err := newFilter(log, config)
	if err != nil {
		return nil, err
	}

	db, err := repositories.OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("session store opening failed: %w", err)
	}
	index, err := repositories.NewInMemorySearchIndex(log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("search index opening failed: %w", err)
	}
	repository := repositories.NewLogRepository(db, log)

	listeners = append([]contract.EntryListener{sink.NewStoreSink(repository, index, log)}, listeners...)
	messageLog := sink.NewMessageLog(log, time.Now, listeners...)

	monitoring := observability.NewMonitoringManager(log)
	scheduler := NewScheduler(log, workers.NewSupervisor(log), loopBuffer)
	bridge := NewBridge(log, scheduler, session,
		sink.Fanout{messageLog, sink.NewJournal(log)},
		display, monitoring, config.Surbs, config.PendingSendLimit)

	if filter != nil {
		bridge.WithFilter(filter)
	}

	// Long-running helpers live apart from the bridge tasks
	background := workers.NewSupervisor(log)
	if config.StatsInterval > 0 {
		background.Add(workers.NewHeartbeatWorker(log, monitoring, config.StatsInterval))
	}

	return &Orchestrator{
		log:        log,
		config:     config,
		db:         db,
		repository: repository,
		index:      index,
		monitoring: monitoring,
		background: background,
		bridge:     bridge,
	}, nil
}

// Start schedules the connection to the daemon.
func (o *Orchestrator) Start(ctx context.Context) {
	ctx, o.cancel = context.WithCancel(ctx)
	o.log.Info("Connecting to the daemon", "endpoint", o.config.Endpoint)

	o.done = make(chan struct{})
	go func() {
		defer close(o.done)
		o.background.Run(ctx)
	}()
	o.bridge.Start(ctx)
}

// Submit is the input path of every host.
func (o *Orchestrator) Submit(recipient, payload string) error {
	return o.bridge.Submit(recipient, payload)
}

// Drive runs the loop until ctx is done. With a poll interval and a host,
// passes are handed to the host; otherwise the loop reacts on its own goroutine.
func (o *Orchestrator) Drive(ctx context.Context, host func(func())) error {
	if o.config.PollInterval > 0 && host != nil {
		o.log.Debug("Bounded-poll loop", "interval", o.config.PollInterval)
		return o.bridge.Pump(ctx, o.config.PollInterval, host)
	}
	o.log.Debug("Reactor loop")
	return o.bridge.Run(ctx)
}

// History lists the last entries of a direction, oldest first.
func (o *Orchestrator) History(direction domain.Direction, limit int) ([]domain.LogEntry, error) {
	return o.repository.List(direction, limit)
}

// Find searches both directions, most recent first.
func (o *Orchestrator) Find(ctx context.Context, terms string) ([]domain.LogEntry, error) {
	return o.index.Search(ctx, terms, o.config.SearchLimit)
}

func (o *Orchestrator) Stats() observability.SessionStats {
	return o.monitoring.Snapshot()
}

// Stop closes the session then releases the store. Call it once Drive returned.
func (o *Orchestrator) Stop() error {
	o.background.Stop()
	if o.done != nil {
		<-o.done
	}
	if o.cancel != nil {
		o.cancel()
	}
	err := o.bridge.Close()
	o.monitoring.LogSummary()
	if closeErr := o.index.Close(); closeErr != nil {
		o.log.Warn("Unable to close search index", "error", closeErr)
	}
	if closeErr := o.db.Close(); closeErr != nil {
		o.log.Warn("Unable to close session store", "error", closeErr)
	}
	return err
}

// newFilter builds the inbound filter, or returns nil when no word is censored.
func newFilter(log *slog.Logger, config internal.Config) (contract.InboundFilter, error) {
	words := config.Words()
	if len(words) == 0 {
		return nil, nil
	}
	character, err := internal.CharacterRune(config.CensorCharacter)
	if err != nil {
		return nil, err
	}
	moderator, err := moderation.NewModerator(words, character, log)
	if err != nil {
		return nil, fmt.Errorf("moderator build failed: %w", err)
	}
	return moderation.NewInboundFilter(moderator, log), nil
}
