package lxor

import (
	"io"
	"log/slog"
	"strings"
)

const (
	// DefaultModuleName is the name scripts pass to require.
	DefaultModuleName = "lxor"
	// TypeName identifies the metatable attached to every cipher handle.
	TypeName = "LXorCipher"
	// DefaultDeriveLen is the key length produced by derive when none is given.
	DefaultDeriveLen = 32
)

type config struct {
	logger     *slog.Logger
	moduleName string
}

// Option customizes a Registry, and is used with Preload and Open.
type Option = func(cfg *config)

// WithLogger sets the logger used for handle lifecycle events, which are emitted at debug level.
// By default, nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithModuleName changes the name the module is preloaded under.
// Blank names are ignored.
func WithModuleName(name string) Option {
	name = strings.TrimSpace(name)
	return func(cfg *config) {
		if len(name) == 0 {
			return
		}
		cfg.moduleName = name
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		moduleName: DefaultModuleName,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
