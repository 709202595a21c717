package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	relay "github.com/allbin/go-relay"
	"github.com/allbin/go-relay/internal/logger"
)

// Setting keys, shared with the flag names in cmd.
const (
	KeyTTY      = "tty"
	KeyPolarity = "polarity"
	KeyLogLevel = "log_level"
)

const (
	// EnvTTY is the only environment variable consulted.
	EnvTTY = "TTY_RELAY_TTY"

	DefaultPolarity = "no"
	DefaultLogLevel = "warn"
)

// File mirrors the YAML config file.
type File struct {
	TTY      string `mapstructure:"tty"`
	Polarity string `mapstructure:"polarity"`
	LogLevel string `mapstructure:"log_level"`
}

// Config holds validated settings.
type Config struct {
	// TTY is an explicit device path; empty means auto-detect.
	TTY      string
	Polarity relay.Polarity
	LogLevel zapcore.Level
}

// New returns a viper instance with defaults and the environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault(KeyPolarity, DefaultPolarity)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	//nolint:errcheck // BindEnv only fails without a key.
	v.BindEnv(KeyTTY, EnvTTY)

	return v
}

// Load reads the optional config file at path into v and validates the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var raw File
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return Validate(raw)
}

// Validate parses the raw settings.
func Validate(raw File) (*Config, error) {
	polarity, err := relay.ParsePolarity(raw.Polarity)
	if err != nil {
		return nil, err
	}

	level, ok := logger.ParseLogLevel(raw.LogLevel)
	if !ok {
		return nil, fmt.Errorf("%w: log level %q (valid: debug, info, warn, error)", relay.ErrInvalidArgument, raw.LogLevel)
	}

	return &Config{
		TTY:      raw.TTY,
		Polarity: polarity,
		LogLevel: level,
	}, nil
}
