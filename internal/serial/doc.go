// Package serial opens Linux ttys for modem line control and enumerates
// serial ports with their USB metadata.
//
// It never reads or writes data on the port. A port is opened only to drive
// and read back the DTR and RTS output lines:
//
//	port, err := serial.Open("/dev/ttyUSB0")
//	if err != nil {
//	    return err
//	}
//	defer port.Close()
//
//	// Both lines change in one ioctl
//	err = port.SetModemLines(true, false)
//	signals, err := port.GetModemSignals()
//
// Open fails fast with ErrDeviceNotFound, ErrPermissionDenied,
// ErrDeviceInUse or ErrNotATTY; use errors.Is to tell them apart. The port
// is opened non-blocking, locked with TIOCEXCL and left with HUPCL cleared
// so that closing it does not drop the lines. The kernel still raises DTR and RTS
// on every open at a non-zero baud rate, before Open returns.
//
// # Port Discovery
//
// Enumerate walks /sys/class/tty and reads the USB descriptor attributes
// of the device behind each tty:
//
//	ports, err := serial.Enumerate()
//	for _, p := range ports {
//	    fmt.Printf("%s: %s (VID=%s PID=%s)\n", p.Path, p.Description, p.VendorID, p.ProductID)
//	}
//
// On platforms without sysfs, enumeration falls back to go.bug.st/serial's
// enumerator and Open returns ErrUnsupported.
package serial
