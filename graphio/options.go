// SPDX-License-Identifier: MIT

package graphio

import "log/slog"

// Option configures readers.
type Option func(*readConfig)

type readConfig struct {
	lenient bool
	logger  *slog.Logger
}

func newReadConfig(opts ...Option) readConfig {
	cfg := readConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithLenient skips malformed lines instead of failing, logging each skip to
// logger at warn level. A nil logger discards the warnings.
func WithLenient(logger *slog.Logger) Option {
	return func(c *readConfig) {
		c.lenient = true
		if logger != nil {
			c.logger = logger
		}
	}
}
