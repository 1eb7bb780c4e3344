package rig

import (
	"errors"
	"time"

	"github.com/bxtek/go-rig/logger"
)

// Config represents the configuration parameters for an Engine.
//
// A Config is immutable once created by NewConfig; the engine reads it
// without further synchronization.
type Config struct {
	// tickInterval defines the period of the control loop driven by Engine.Run.
	// Defaults to 100 milliseconds.
	tickInterval time.Duration

	// autoAdvanceTicks defines how many ticks the machine dwells on a step
	// before the engine advances it in auto mode.
	// Defaults to 10.
	autoAdvanceTicks int

	// commandQueueSize defines the size of the operator command queue, which
	// buffers commands dispatched between ticks.
	//
	// This option controls the backpressure level for pending operator input.
	// Commands dispatched while the queue is full are dropped and counted.
	//
	// Defaults to 16.
	commandQueueSize int

	// logger provides a logger instance for logging engine events.
	logger logger.Logger
}

// NewConfig creates a new engine configuration with the given optional
// functional options.
//
// It initializes a Config with default values and then applies the provided
// options. See the documentation for Option and the various WithXXX functions
// for available configuration options.
//
// Returns a pointer to the initialized Config and an error if any option
// fails to apply.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		tickInterval:     100 * time.Millisecond,
		autoAdvanceTicks: 10,
		commandQueueSize: 16,
		logger:           logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// TickInterval returns the control-loop period.
func (cfg *Config) TickInterval() time.Duration { return cfg.tickInterval }

// AutoAdvanceTicks returns the number of ticks between automatic step advances.
func (cfg *Config) AutoAdvanceTicks() int { return cfg.autoAdvanceTicks }

// CommandQueueSize returns the operator command queue size.
func (cfg *Config) CommandQueueSize() int { return cfg.commandQueueSize }

// Logger returns the logger instance used by the engine.
func (cfg *Config) Logger() logger.Logger { return cfg.logger }

// Option represents a functional option for configuring a Config.
type Option interface {
	apply(*Config) error
}

type optFunc func(*Config) error

func (f optFunc) apply(cfg *Config) error { return f(cfg) }

// WithTickInterval sets the control-loop period driven by Engine.Run.
// An error is returned if the interval is outside the valid range (1ms-10s)
// or if the configuration is nil.
//
// The default value is 100 milliseconds.
func WithTickInterval(interval time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if interval < 1*time.Millisecond || interval > 10*time.Second {
			return errors.New("tick interval out of range [1ms, 10s]")
		}
		cfg.tickInterval = interval

		return nil
	})
}

// WithAutoAdvanceTicks sets how many ticks the machine dwells on a step
// before the engine advances it in auto mode.
// An error is returned if ticks is less than 1 or if the configuration is nil.
//
// The default value is 10.
func WithAutoAdvanceTicks(ticks int) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if ticks < 1 {
			return errors.New("auto advance ticks should be at least 1")
		}
		cfg.autoAdvanceTicks = ticks

		return nil
	})
}

// WithCommandQueueSize sets the size of the operator command queue.
// An error is returned if size is less than 1 or if the configuration is nil.
//
// The default value is 16.
func WithCommandQueueSize(size int) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if size < 1 {
			return errors.New("command queue size should be at least 1")
		}
		cfg.commandQueueSize = size

		return nil
	})
}

// WithLogger sets the logger instance used by the engine.
// An error is returned if l is nil or if the configuration is nil.
func WithLogger(l logger.Logger) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if l == nil {
			return errors.New("logger is nil")
		}
		cfg.logger = l

		return nil
	})
}
