package runtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"nym-chat/domain"
	"nym-chat/internal"
	"nym-chat/mocks"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// echoDaemon answers the handshake, pushes greeting, then echoes every sent
// message back as a received one.
func echoDaemon(t *testing.T, address string, greeting string) string {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()
		ctx := r.Context()

		if _, _, err = conn.Read(ctx); err != nil {
			return
		}
		if err = wsjson.Write(ctx, conn, domain.SelfAddressReply{Address: address}); err != nil {
			return
		}
		if err = wsjson.Write(ctx, conn, domain.InboundMessage{Message: greeting}); err != nil {
			return
		}
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			var request domain.SendRequest
			if json.Unmarshal(data, &request) != nil {
				return
			}
			if err = wsjson.Write(ctx, conn, domain.InboundMessage{Message: request.Message}); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

// closingDaemon answers the handshake, then closes the socket normally.
func closingDaemon(t *testing.T, address string) string {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()
		ctx := r.Context()

		if _, _, err = conn.Read(ctx); err != nil {
			return
		}
		if err = wsjson.Write(ctx, conn, domain.SelfAddressReply{Address: address}); err != nil {
			return
		}
		_ = conn.Close(websocket.StatusNormalClosure, "daemon shutting down")
	}))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

// stateOnLoop reads the bridge state from a continuation while the loop is driven.
func stateOnLoop(b *Bridge) State {
	state := make(chan State, 1)
	if !b.scheduler.TryPost(func() { state <- b.state }) {
		return Idle
	}
	return <-state
}

func testConfig(endpoint string) internal.Config {
	return internal.Config{
		Endpoint:         endpoint,
		PendingSendLimit: 8,
		MaxFrameBytes:    1 << 20,
		CensoredWords:    "badger",
		CensorCharacter:  "*",
		SearchLimit:      10,
		StatsInterval:    10 * time.Millisecond,
	}
}

func TestOrchestrator_RoundTrip(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	display := mocks.NewMockAddressDisplay(ctrl)
	listener := mocks.NewMockEntryListener(ctrl)
	log := slog.New(slog.DiscardHandler)

	address := "DguTmKDe.4ZNb@Fch7yb"
	endpoint := echoDaemon(t, address, "welcome, badger")

	entries := make(chan domain.LogEntry, 16)
	display.EXPECT().ShowAddress(address)
	listener.EXPECT().OnEntry(gomock.Any()).Do(func(entry domain.LogEntry) { entries <- entry }).AnyTimes()

	orchestrator, err := NewOrchestrator(log, testConfig(endpoint), display, listener)
	req.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	orchestrator.Start(ctx)
	driven := make(chan error, 1)
	go func() { driven <- orchestrator.Drive(ctx, nil) }()

	// Input sent before the handshake completes is queued, not lost
	req.NoError(orchestrator.Submit(address, "hello me"))

	var seen []domain.LogEntry
	for len(seen) < 3 {
		select {
		case entry := <-entries:
			seen = append(seen, entry)
		case <-time.After(2 * time.Second):
			req.FailNow("missing entries", "got %v", seen)
		}
	}

	texts := map[domain.Direction][]string{}
	for _, entry := range seen {
		texts[entry.Direction] = append(texts[entry.Direction], entry.Text)
	}
	req.Equal([]string{"hello me"}, texts[domain.Sent])
	req.ElementsMatch([]string{"welcome, ******", "hello me"}, texts[domain.Received])

	cancel()
	req.NoError(<-driven)

	history, err := orchestrator.History(domain.Received, 0)
	req.NoError(err)
	req.Len(history, 2)

	hits, err := orchestrator.Find(context.Background(), "hello")
	req.NoError(err)
	req.Len(hits, 2)

	stats := orchestrator.Stats()
	req.Equal(uint64(1), stats.FramesSent)
	req.Equal(uint64(2), stats.FramesReceived)

	req.NoError(orchestrator.Stop())
}

func TestOrchestrator_DaemonDown(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	display := mocks.NewMockAddressDisplay(ctrl)
	log := slog.New(slog.DiscardHandler)

	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := "ws" + strings.TrimPrefix(server.URL, "http")
	server.Close()

	orchestrator, err := NewOrchestrator(log, testConfig(endpoint), display)
	req.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	orchestrator.Start(ctx)
	go func() { _ = orchestrator.Drive(ctx, nil) }()
	req.NoError(orchestrator.Submit("DguTmKDe.4ZNb@Fch7yb", "lost"))

	req.Eventually(func() bool {
		return orchestrator.Stats().DroppedSends == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	req.NoError(orchestrator.Stop())
}

func TestOrchestrator_Drive_Pump(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.DiscardHandler)
	config := testConfig("ws://127.0.0.1:1")
	config.PollInterval = 5 * time.Millisecond
	config.StatsInterval = 0

	orchestrator, err := NewOrchestrator(log, config, mocks.NewMockAddressDisplay(gomock.NewController(t)))
	req.NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	passes := 0
	req.NoError(orchestrator.Drive(ctx, func(pass func()) {
		passes++
		pass()
	}))
	req.Positive(passes)
	req.NoError(orchestrator.Stop())
}

func TestOrchestrator_Stop_AfterDaemonClosed(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	display := mocks.NewMockAddressDisplay(ctrl)
	log := slog.New(slog.DiscardHandler)

	address := "DguTmKDe.4ZNb@Fch7yb"
	display.EXPECT().ShowAddress(address).Times(1)

	orchestrator, err := NewOrchestrator(log, testConfig(closingDaemon(t, address)), display)
	req.NoError(err)

	// Given a parent context that is never canceled, with the heartbeat running
	orchestrator.Start(context.Background())
	ctx, cancel := context.WithCancel(context.Background())
	driven := make(chan error, 1)
	go func() { driven <- orchestrator.Drive(ctx, nil) }()

	// When the daemon closes the socket after the handshake
	req.Eventually(func() bool {
		return stateOnLoop(orchestrator.bridge) == Closed
	}, 2*time.Second, 10*time.Millisecond)
	cancel()
	req.NoError(<-driven)

	// Then stopping is clean and returns once the heartbeat is gone
	stopped := make(chan error, 1)
	go func() { stopped <- orchestrator.Stop() }()
	select {
	case err = <-stopped:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("Stop should return without the parent context being canceled")
	}
}
