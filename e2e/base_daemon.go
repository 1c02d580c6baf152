package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"nym-chat/infrastructure/daemon"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseDaemonSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration and skips without a daemon.
func (s *BaseDaemonSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.DaemonEndpoint == "" {
		s.T().Skip("E2E_DAEMON_ENDPOINT not set, no daemon to talk to")
	}
}

// Step prints a colorized header for a scenario step.
func (s *BaseDaemonSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Dump logs v as indented JSON when E2E_DEBUG_JSON is enabled.
func (s *BaseDaemonSuite) Dump(label string, v any) {
	if !s.Config.DebugJSON {
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	s.Require().NoError(err)
	s.T().Logf("%s:\n%s", label, b)
}

// WithSession connects a session to the daemon and closes it once fn returns.
func (s *BaseDaemonSuite) WithSession(name string, fn func(ctx context.Context, session *daemon.Session, address string)) {
	s.Step(name)
	ctx, cancel := context.WithTimeout(context.Background(), s.Config.Timeout)
	defer cancel()

	session := daemon.NewSession(logs.GetLoggerFromLevel(slog.LevelDebug), s.Config.DaemonEndpoint, nil)
	address, err := session.Connect(ctx)
	s.Require().NoError(err, "Failed to connect to the daemon at "+s.Config.DaemonEndpoint)
	defer func() { s.Require().NoError(session.Close()) }()

	fn(ctx, session, address)
}
