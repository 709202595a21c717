package relay

import (
	"errors"
	"fmt"

	"github.com/allbin/go-relay/internal/serial"
)

// Predefined error types. Every one of them is terminal for the operation
// that returned it; nothing in this package retries.
var (
	// Device selection, raised before any hardware access
	ErrNoDevice        = errors.New("no compatible relay adapter found")
	ErrAmbiguousDevice = errors.New("more than one compatible relay adapter found")

	// Opening the device
	ErrDeviceNotFound   = serial.ErrDeviceNotFound
	ErrPermissionDenied = serial.ErrPermissionDenied
	ErrDeviceBusy       = serial.ErrDeviceInUse
	ErrNotATTY          = serial.ErrNotATTY

	// ErrIO matches any *IOError
	ErrIO = errors.New("relay line I/O failed")

	// ErrUnknownState means the read-back lines match neither ON nor OFF for
	// the configured polarity. It is not an I/O fault.
	ErrUnknownState = errors.New("relay lines match neither ON nor OFF")

	// ErrRaisedOnOpen is the ErrUnknownState case where both lines read high
	// before the controller wrote anything. Linux raises DTR and RTS on every
	// open of a tty with a non-zero baud rate, so a new process cannot read
	// back the state an earlier one left.
	ErrRaisedOnOpen = fmt.Errorf("%w: DTR and RTS were raised by the tty driver when the port was opened, "+
		"so the state set by an earlier run cannot be read back", ErrUnknownState)

	ErrInvalidArgument = errors.New("invalid argument")
)

// Line operations reported by IOError
const (
	OpSet = "set"
	OpGet = "get"
)

// IOError reports a failed line access and which direction failed
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s lines: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrIO and the underlying cause to errors.Is
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}
