package internal

import (
	"nym-chat/errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	for _, name := range []string{
		"NYM_CLIENT_ENDPOINT", "LOG_LEVEL", "POLL_INTERVAL", "PENDING_SEND_LIMIT", "SURBS",
		"MAX_FRAME_BYTES", "CENSORED_WORDS", "CENSOR_CHARACTER", "SEARCH_LIMIT", "STATS_INTERVAL",
	} {
		// Setenv restores the variable once the test is over
		t.Setenv(name, "")
		req.NoError(os.Unsetenv(name))
	}

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("ws://127.0.0.1:1977", config.Endpoint)
	req.Equal("INFO", config.LogLevel)
	req.Equal(time.Duration(0), config.PollInterval)
	req.Equal(64, config.PendingSendLimit)
	req.Equal(0, config.Surbs)
	req.Equal(int64(1048576), config.MaxFrameBytes)
	req.Equal("*", config.CensorCharacter)
	req.Equal(20, config.SearchLimit)
	req.Equal(time.Duration(0), config.StatsInterval)
	req.Empty(config.Words())
}

func TestLoadConfig_Overrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("NYM_CLIENT_ENDPOINT", "ws://10.0.0.2:1977")
	t.Setenv("POLL_INTERVAL", "100ms")
	t.Setenv("SURBS", "3")
	t.Setenv("CENSORED_WORDS", "badger, snake,,")
	t.Setenv("CENSOR_CHARACTER", "#")

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("ws://10.0.0.2:1977", config.Endpoint)
	req.Equal(100*time.Millisecond, config.PollInterval)
	req.Equal(3, config.Surbs)
	req.Equal([]string{"badger", "snake"}, config.Words())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Endpoint: "ws://127.0.0.1:1977", MaxFrameBytes: 1024, CensorCharacter: "*", SearchLimit: 20}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"empty endpoint", func(c *Config) { c.Endpoint = "" }, false},
		{"negative poll", func(c *Config) { c.PollInterval = -time.Second }, false},
		{"negative stats interval", func(c *Config) { c.StatsInterval = -time.Second }, false},
		{"negative surbs", func(c *Config) { c.Surbs = -1 }, false},
		{"zero search limit", func(c *Config) { c.SearchLimit = 0 }, false},
		{"negative search limit", func(c *Config) { c.SearchLimit = -5 }, false},
		{"zero frame size", func(c *Config) { c.MaxFrameBytes = 0 }, false},
		{"two characters", func(c *Config) { c.CensorCharacter = "**" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)
			err := config.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
		})
	}
}

func TestLoadConfig_NegativeSearchLimit(t *testing.T) {
	t.Setenv("SEARCH_LIMIT", "-5")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "SEARCH_LIMIT")
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("é")
	req.NoError(err)
	req.Equal('é', r)

	_, err = CharacterRune("")
	req.ErrorIs(err, errors.ErrInvalidCharacter)
}
