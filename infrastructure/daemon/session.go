// Package daemon talks to the local mixnet client daemon over its websocket
// control protocol. A Session owns exactly one connection for its lifetime.
package daemon

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net"
	"nym-chat/contract"
	"nym-chat/domain"
	"nym-chat/errors"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const (
	// DefaultEndpoint is where the daemon listens unless told otherwise.
	DefaultEndpoint = "ws://127.0.0.1:1977"
	// DefaultReadLimit matches the MAX_FRAME_BYTES default.
	DefaultReadLimit int64 = 1 << 20
)

var _ contract.ISession = (*Session)(nil)

// Dialer opens the websocket. It is swapped in tests and by callers that
// need custom dial options.
type Dialer func(ctx context.Context, endpoint string) (*websocket.Conn, error)

// DefaultDialer dials with the library defaults and caps inbound frames to readLimit bytes.
func DefaultDialer(readLimit int64) Dialer {
	return func(ctx context.Context, endpoint string) (*websocket.Conn, error) {
		conn, _, err := websocket.Dial(ctx, endpoint, nil)
		if err != nil {
			return nil, err
		}
		if readLimit > 0 {
			conn.SetReadLimit(readLimit)
		}
		return conn, nil
	}
}

// Session is not safe for concurrent Connect/Send/Close calls. It is meant to
// be driven by a single loop; one reader running ReceiveLoop next to that
// loop is fine.
type Session struct {
	log         *slog.Logger
	endpoint    string
	dial        Dialer
	conn        *websocket.Conn
	selfAddress *string
}

func NewSession(log *slog.Logger, endpoint string, dial Dialer) *Session {
	if dial == nil {
		dial = DefaultDialer(DefaultReadLimit)
	}
	return &Session{log: log, endpoint: endpoint, dial: dial}
}

// Connect opens the websocket, asks the daemon for our address and waits for
// its single reply. On failure the socket is dropped and never retried.
func (s *Session) Connect(ctx context.Context) (string, error) {
	if s.conn != nil {
		return "", fmt.Errorf("%w: session already connected", errors.ErrConnection)
	}

	conn, err := s.dial(ctx, s.endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: dial %s: %w", errors.ErrConnection, s.endpoint, err)
	}
	s.conn = conn

	address, err := s.handshake(ctx)
	if err != nil {
		_ = conn.CloseNow()
		s.conn = nil
		return "", fmt.Errorf("%w: %w", errors.ErrConnection, err)
	}

	s.selfAddress = &address
	s.log.Info("Connected to daemon", "endpoint", s.endpoint, "address", address)
	return address, nil
}

func (s *Session) handshake(ctx context.Context) (string, error) {
	if err := wsjson.Write(ctx, s.conn, domain.NewSelfAddressRequest()); err != nil {
		return "", fmt.Errorf("self address request: %w", err)
	}

	_, data, err := s.conn.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("self address reply: %w", err)
	}

	var reply domain.SelfAddressReply
	if err = json.Unmarshal(data, &reply); err != nil {
		return "", fmt.Errorf("self address reply: %w", err)
	}
	if reply.Address == "" {
		return "", fmt.Errorf("self address reply carries no address: %s", data)
	}
	return reply.Address, nil
}

// SelfAddress is absent until the handshake reply has been received.
func (s *Session) SelfAddress() (string, bool) {
	if s.selfAddress == nil {
		return "", false
	}
	return *s.selfAddress, true
}

// Send writes the message as one text frame and returns without waiting for
// any acknowledgement. Without a socket it does nothing.
func (s *Session) Send(ctx context.Context, message domain.OutboundMessage) error {
	if s.conn == nil {
		s.log.Debug("No socket, message not sent", "recipient", message.RecipientAddress)
		return nil
	}
	return wsjson.Write(ctx, s.conn, message.Serialize())
}

// ReceiveLoop hands every inbound message to yield, in arrival order, until
// the daemon closes the socket (nil) or a frame cannot be parsed
// (ErrMalformedFrame).
func (s *Session) ReceiveLoop(ctx context.Context, yield func(domain.InboundMessage)) error {
	for message, err := range s.Frames(ctx) {
		if err != nil {
			return err
		}
		yield(message)
	}
	return nil
}

// Frames is the lazy form of ReceiveLoop. The sequence ends when the
// connection goes away; a parse failure is yielded once as the last element.
func (s *Session) Frames(ctx context.Context) iter.Seq2[domain.InboundMessage, error] {
	return func(yield func(domain.InboundMessage, error) bool) {
		conn := s.conn
		if conn == nil {
			return
		}
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				s.logReadEnd(ctx, err)
				return
			}

			var message domain.InboundMessage
			if err = json.Unmarshal(data, &message); err != nil {
				yield(domain.InboundMessage{}, fmt.Errorf("%w: %w", errors.ErrMalformedFrame, err))
				return
			}
			if !yield(message, nil) {
				return
			}
		}
	}
}

func (s *Session) logReadEnd(ctx context.Context, err error) {
	switch {
	case ctx.Err() != nil:
		s.log.Debug("Receive loop stopped", "reason", ctx.Err())
	case isClosed(err):
		s.log.Info(errors.ErrTransportClosed.Error(), "status", websocket.CloseStatus(err))
	default:
		s.log.Warn("Connection to daemon lost", "error", err)
	}
}

// Close sends a normal closure once. Later calls are no-ops, and so is closing
// a socket the daemon already closed.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	conn := s.conn
	s.conn = nil
	if err := conn.Close(websocket.StatusNormalClosure, ""); err != nil && !stderrors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

func isClosed(err error) bool {
	return websocket.CloseStatus(err) != -1 ||
		stderrors.Is(err, io.EOF) ||
		stderrors.Is(err, net.ErrClosed)
}
