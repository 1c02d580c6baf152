package internal

import (
	"fmt"
	"nym-chat/errors"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	Endpoint         string        `env:"NYM_CLIENT_ENDPOINT,default=ws://127.0.0.1:1977"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
	PollInterval     time.Duration `env:"POLL_INTERVAL,default=0s"`
	PendingSendLimit int           `env:"PENDING_SEND_LIMIT,default=64"`
	Surbs            int           `env:"SURBS,default=0"`
	MaxFrameBytes    int64         `env:"MAX_FRAME_BYTES,default=1048576"`
	CensoredWords    string        `env:"CENSORED_WORDS"`
	CensorCharacter  string        `env:"CENSOR_CHARACTER,default=*"`
	SearchLimit      int           `env:"SEARCH_LIMIT,default=20"`
	StatsInterval    time.Duration `env:"STATS_INTERVAL,default=0s"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("NYM_CLIENT_ENDPOINT must not be empty")
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("POLL_INTERVAL must not be negative, got %s", c.PollInterval)
	}
	if c.StatsInterval < 0 {
		return fmt.Errorf("STATS_INTERVAL must not be negative, got %s", c.StatsInterval)
	}
	if c.Surbs < 0 {
		return fmt.Errorf("SURBS: %w", errors.ErrNegativeSurbs)
	}
	if c.SearchLimit <= 0 {
		return fmt.Errorf("SEARCH_LIMIT must be positive, got %d", c.SearchLimit)
	}
	if c.MaxFrameBytes <= 0 {
		return fmt.Errorf("MAX_FRAME_BYTES must be positive, got %d", c.MaxFrameBytes)
	}
	if _, err := CharacterRune(c.CensorCharacter); err != nil {
		return err
	}
	return nil
}

// Words splits CENSORED_WORDS on commas, dropping blanks.
func (c Config) Words() []string {
	var words []string
	for _, word := range strings.Split(c.CensoredWords, ",") {
		if word = strings.TrimSpace(word); word != "" {
			words = append(words, word)
		}
	}
	return words
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf("CENSOR_CHARACTER %w, got %q", errors.ErrInvalidCharacter, str)
	}
	return r[0], nil
}
