//go:build linux

package serial

// Enumerate lists the serial ports present on the system
func Enumerate() ([]PortInfo, error) {
	return DefaultScanner.Ports()
}

// GetPortInfo returns detailed information about a specific port
func GetPortInfo(portPath string) (PortInfo, error) {
	return DefaultScanner.PortInfo(portPath)
}
