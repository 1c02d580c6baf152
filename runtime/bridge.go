package runtime

import (
	"context"
	"log/slog"
	"nym-chat/contract"
	"nym-chat/domain"
	"nym-chat/errors"
	"nym-chat/observability"
	"time"
)

type State int

const (
	Idle State = iota
	Connecting
	Ready
	Failed
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Connecting:
		return "connecting"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Bridge is the client core. UI input enters through Submit, network results
// come back as continuations, and everything it owns (state, pending sends,
// sinks) is only touched from the loop.
type Bridge struct {
	log          *slog.Logger
	scheduler    *Scheduler
	session      contract.ISession
	sink         contract.LogSink
	display      contract.AddressDisplay
	filter       contract.InboundFilter
	monitoring   *observability.MonitoringManager
	surbs        int
	pendingLimit int

	cancel  context.CancelFunc
	state   State
	pending []domain.OutboundMessage
	outbox  chan domain.OutboundMessage
}

func NewBridge(
	log *slog.Logger,
	scheduler *Scheduler,
	session contract.ISession,
	sink contract.LogSink,
	display contract.AddressDisplay,
	monitoring *observability.MonitoringManager,
	surbs, pendingLimit int,
) *Bridge {
	pendingLimit = max(pendingLimit, 1)
	return &Bridge{
		log:          log,
		scheduler:    scheduler,
		session:      session,
		sink:         sink,
		display:      display,
		monitoring:   monitoring,
		surbs:        surbs,
		pendingLimit: pendingLimit,
		outbox:       make(chan domain.OutboundMessage, pendingLimit),
	}
}

// WithFilter rewrites received text before it reaches the sink.
func (b *Bridge) WithFilter(filter contract.InboundFilter) *Bridge {
	b.filter = filter
	return b
}

// Start schedules the handshake. It returns immediately; the result is
// applied on the loop.
func (b *Bridge) Start(ctx context.Context) {
	ctx, b.cancel = context.WithCancel(ctx)
	b.state = Connecting

	var (
		address    string
		connectErr error
	)
	b.scheduler.Go(ctx, "connect", func(ctx context.Context, _ Post) error {
		address, connectErr = b.session.Connect(ctx)
		return nil
	}, func(err error) {
		if err == nil {
			err = connectErr
		}
		b.onConnected(ctx, address, err)
	})
}

// Submit validates user input and schedules the send. A validation error is
// returned to the caller and nothing is scheduled, so the input can be fixed.
// Safe to call from the UI thread.
func (b *Bridge) Submit(recipient, payload string) error {
	message, err := domain.NewOutboundMessage(recipient, payload, b.surbs)
	if err != nil {
		b.monitoring.IncrRejected()
		b.log.Warn("Message not sent", "error", err)
		return err
	}
	if !b.scheduler.TryPost(func() { b.onSubmit(message) }) {
		return errors.ErrLoopBusy
	}
	return nil
}

// State is meant for the loop and for tests driving it.
func (b *Bridge) State() State {
	return b.state
}

// Run drives the loop in reactor mode until ctx is done.
func (b *Bridge) Run(ctx context.Context) error {
	return b.scheduler.Run(ctx)
}

// Pump drives the loop in bounded-poll mode, see Scheduler.Pump.
func (b *Bridge) Pump(ctx context.Context, interval time.Duration, host func(func())) error {
	return b.scheduler.Pump(ctx, interval, host)
}

// Close stops every task, waits for them and closes the socket.
// Call it once nothing drives the loop anymore.
func (b *Bridge) Close() error {
	if b.cancel != nil {
		b.cancel()
	}
	b.scheduler.Wait()
	b.state = Closed
	return b.session.Close()
}

func (b *Bridge) onConnected(ctx context.Context, address string, err error) {
	if err != nil {
		b.log.Error("Connection error", "error", err)
		b.state = Failed
		b.dropPending("connection failed")
		return
	}

	b.state = Ready
	b.display.ShowAddress(address)

	b.scheduler.Go(ctx, "writer", b.writeLoop, func(err error) {
		if err != nil {
			b.log.Error("Writer stopped", "error", err)
		}
	})
	b.scheduler.Go(ctx, "receiver", func(ctx context.Context, post Post) error {
		return b.session.ReceiveLoop(ctx, func(message domain.InboundMessage) {
			post(func() { b.onReceived(message) })
		})
	}, b.onReceiveEnded)

	pending := b.pending
	b.pending = nil
	for _, message := range pending {
		b.enqueue(message)
	}
}

func (b *Bridge) onSubmit(message domain.OutboundMessage) {
	switch b.state {
	case Idle, Connecting:
		if len(b.pending) >= b.pendingLimit {
			b.monitoring.IncrDropped(1)
			b.log.Warn("Too many messages waiting for the daemon, message dropped", "limit", b.pendingLimit)
			return
		}
		b.pending = append(b.pending, message)
		b.log.Debug("Waiting for the daemon handshake", "pending", len(b.pending))
	case Ready:
		b.enqueue(message)
	default:
		b.monitoring.IncrDropped(1)
		b.log.Debug("No connection, message dropped", "state", b.state)
	}
}

func (b *Bridge) enqueue(message domain.OutboundMessage) {
	select {
	case b.outbox <- message:
	default:
		b.monitoring.IncrDropped(1)
		b.log.Warn("Send queue full, message dropped")
	}
}

// writeLoop is the only writer on the socket, so frames leave in submit order.
func (b *Bridge) writeLoop(ctx context.Context, post Post) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case message := <-b.outbox:
			err := b.session.Send(ctx, message)
			if !post(func() { b.onSent(message, err) }) {
				return nil
			}
		}
	}
}

func (b *Bridge) onSent(message domain.OutboundMessage, err error) {
	if err != nil {
		b.monitoring.IncrFailed()
		b.log.Error("Send failed", "recipient", message.RecipientAddress, "error", err)
		return
	}
	b.monitoring.IncrSent(len(message.Payload))
	b.sink.AppendSent(message.Payload)
}

func (b *Bridge) onReceived(message domain.InboundMessage) {
	if b.state != Ready {
		return
	}
	text := message.Message
	if b.filter != nil {
		text = b.filter.Apply(text)
	}
	b.monitoring.IncrReceived(len(message.Message))
	b.sink.AppendReceived(text)
}

func (b *Bridge) onReceiveEnded(err error) {
	if b.state == Ready {
		b.state = Closed
	}
	if err != nil {
		b.log.Error("Receive loop ended", "error", err)
		return
	}
	b.log.Info("Receive loop ended")
}

func (b *Bridge) dropPending(reason string) {
	if len(b.pending) == 0 {
		return
	}
	b.monitoring.IncrDropped(len(b.pending))
	b.log.Warn("Pending messages dropped", "count", len(b.pending), "reason", reason)
	b.pending = nil
}
