package relay

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultJogHold is how long Jog keeps the relay ON before switching it OFF.
// It is a fixed constant of the tool, not a user setting.
const DefaultJogHold = 500 * time.Millisecond

// Config holds the configuration for a Controller
type Config struct {
	Polarity Polarity
	JogHold  time.Duration
	Logger   *zap.SugaredLogger

	sleep func(time.Duration)
}

// Option is a functional option for configuring a Controller
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Polarity: PolarityNO,
		JogHold:  DefaultJogHold,
		Logger:   zap.NewNop().Sugar(),
		sleep:    time.Sleep,
	}
}

// WithPolarity sets the relay wiring
func WithPolarity(p Polarity) Option {
	return func(c *Config) error {
		if !p.Valid() {
			return fmt.Errorf("%w: polarity %s", ErrInvalidArgument, p)
		}
		c.Polarity = p
		return nil
	}
}

// WithJogHold overrides the jog pulse length
func WithJogHold(d time.Duration) Option {
	return func(c *Config) error {
		if d <= 0 {
			return fmt.Errorf("%w: jog hold %s", ErrInvalidArgument, d)
		}
		c.JogHold = d
		return nil
	}
}

// WithLogger sets the logger used for debug tracing of transitions
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Config) error {
		if l != nil {
			c.Logger = l
		}
		return nil
	}
}
