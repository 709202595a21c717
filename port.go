package relay

import "github.com/allbin/go-relay/internal/serial"

// Port is an open relay adapter. It owns the tty exclusively until Close.
type Port struct {
	port serial.Port
}

// Ensure Port implements SignalLines at compile time
var _ SignalLines = (*Port)(nil)

// adapterBaudRate is the CH340 factory rate. No data is ever sent; the
// rate only has to be one the driver accepts.
const adapterBaudRate = 9600

// openOptions locks the tty so a second tty-relay, or any other program,
// fails with ErrDeviceBusy while we hold it.
var openOptions = []serial.Option{
	serial.WithBaudRate(adapterBaudRate),
	serial.WithExclusive(true),
}

// Open opens the adapter at path. Failures are terminal and match
// ErrDeviceNotFound, ErrPermissionDenied, ErrDeviceBusy or ErrNotATTY where
// the cause is known.
func Open(path string) (*Port, error) {
	p, err := serial.Open(path, openOptions...)
	if err != nil {
		return nil, err
	}
	return &Port{port: p}, nil
}

// Path returns the device path
func (p *Port) Path() string {
	return p.port.Path()
}

// SetLines applies both line values at once
func (p *Port) SetLines(l Lines) error {
	return p.port.SetModemLines(l.DTR, l.RTS)
}

// Lines reads back the asserted state of DTR and RTS
func (p *Port) Lines() (Lines, error) {
	signals, err := p.port.GetModemSignals()
	if err != nil {
		return Lines{}, err
	}
	return Lines{DTR: signals.DTR, RTS: signals.RTS}, nil
}

// Close releases the tty. The lines keep their last values.
func (p *Port) Close() error {
	return p.port.Close()
}
