package moderation

import (
	"log/slog"

	"github.com/abadojack/whatlanggo"
)

// InboundFilter censors received text before it reaches the log.
type InboundFilter struct {
	moderator Moderator
	log       *slog.Logger
}

func NewInboundFilter(moderator Moderator, log *slog.Logger) *InboundFilter {
	return &InboundFilter{moderator: moderator, log: log}
}

func (f *InboundFilter) Apply(text string) string {
	info := whatlanggo.Detect(text)
	f.log.Debug("Received message language",
		"lang", info.Lang.Iso6391(),
		"confidence", info.Confidence)

	censored, words := f.moderator.Censor(text)
	if len(words) > 0 {
		f.log.Info("Received message censored", "words", len(words))
	}
	return censored
}
