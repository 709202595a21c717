package serial

import "errors"

// Predefined error types for robust error handling
var (
	ErrDeviceNotFound   = errors.New("serial device not found")
	ErrPermissionDenied = errors.New("permission denied accessing serial device")
	ErrDeviceInUse      = errors.New("serial device already in use")
	ErrNotATTY          = errors.New("device is not a tty")
	ErrInvalidBaudRate  = errors.New("invalid baud rate")
	ErrPortClosed       = errors.New("serial port is closed")
	ErrUnsupported      = errors.New("modem line control not supported on this platform")

	// USB-related errors
	ErrUSBInfoNotAvailable  = errors.New("USB device information not available")
	ErrUSBResetNotAvailable = errors.New("usbreset utility not available")
)
