package word

import (
	"io"
	"log/slog"
)

// DefaultMaxWords caps the number of words Generate returns.
const DefaultMaxWords = 10

type options struct {
	maxWords int
	rule     LinkRule
	logger   *slog.Logger
}

// Option configures Generate, Forge and Check.
type Option func(*options)

// WithMaxWords overrides DefaultMaxWords. Values below 1 are ignored.
func WithMaxWords(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxWords = n
		}
	}
}

// WithLinkRule selects the exclusion rule. Default is Forward.
func WithLinkRule(rule LinkRule) Option {
	return func(o *options) {
		o.rule = rule
	}
}

// WithLogger receives debug events (rejected candidates, abandoned words).
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		maxWords: DefaultMaxWords,
		rule:     Forward,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
