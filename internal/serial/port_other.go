//go:build !linux

package serial

// Open is not available on non-Linux platforms: modem line read-back
// needs TIOCMGET, which the portable drivers do not expose for outputs.
func Open(device string, opts ...Option) (Port, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	return nil, ErrUnsupported
}
