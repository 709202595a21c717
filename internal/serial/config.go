package serial

// Config holds the configuration used when opening a port for line control
type Config struct {
	BaudRate  int
	Exclusive bool // TIOCEXCL: refuse further opens while we hold the port
}

// Option is a functional option for configuring a serial port
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults.
// The relay adapters ignore the data rate; 9600 matches their factory setting.
func DefaultConfig() Config {
	return Config{
		BaudRate:  9600,
		Exclusive: true,
	}
}

// WithBaudRate sets the baud rate
func WithBaudRate(rate int) Option {
	return func(c *Config) error {
		if !validBaudRate(rate) {
			return ErrInvalidBaudRate
		}
		c.BaudRate = rate
		return nil
	}
}

// WithExclusive controls whether the port is locked against other openers
func WithExclusive(exclusive bool) Option {
	return func(c *Config) error {
		c.Exclusive = exclusive
		return nil
	}
}

// validBaudRate reports whether rate is one of the standard rates the
// line driver can program.
func validBaudRate(rate int) bool {
	switch rate {
	case 1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200:
		return true
	default:
		return false
	}
}
