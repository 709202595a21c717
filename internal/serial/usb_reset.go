package serial

import (
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// reenumerateDelay is how long a reset adapter typically needs to come back
const reenumerateDelay = 2 * time.Second

// ResetUSBDevice performs a USB-level reset of the device behind portPath.
// This can recover an adapter that stopped answering modem ioctls.
//
// Requirements:
// - usbreset utility must be installed (from usbutils package)
// - Requires appropriate permissions (typically root/sudo)
//
// Returns:
// - nil if reset successful
// - ErrUSBResetNotAvailable if usbreset utility not found
// - ErrUSBInfoNotAvailable if device is not USB or metadata unavailable
// - error if reset fails
func ResetUSBDevice(portPath string) error {
	info, err := GetPortInfo(portPath)
	if err != nil {
		return fmt.Errorf("failed to get port info: %w", err)
	}

	return ResetUSB(info)
}

// ResetUSB resets the USB device described by info
func ResetUSB(info PortInfo) error {
	usbPath, err := formatUSBPath(info.BusNumber, info.DeviceNumber)
	if err != nil {
		return err
	}

	if !IsUSBResetAvailable() {
		return ErrUSBResetNotAvailable
	}

	cmd := exec.Command("usbreset", usbPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("usbreset failed: %w (output: %s)", err, string(output))
	}

	// Wait for device to re-enumerate
	time.Sleep(reenumerateDelay)

	return nil
}

// ResetUSBDeviceBySerial resets a USB device by its serial number.
// Useful when the tty path changed after a previous reset.
func ResetUSBDeviceBySerial(serialNumber string) error {
	ports, err := Enumerate()
	if err != nil {
		return err
	}

	for _, info := range ports {
		if info.SerialNumber == serialNumber {
			return ResetUSB(info)
		}
	}

	return fmt.Errorf("device with serial %s not found", serialNumber)
}

// IsUSBResetAvailable checks if usbreset utility is available in PATH
func IsUSBResetAvailable() bool {
	_, err := exec.LookPath("usbreset")
	return err == nil
}

// formatUSBPath builds the BBB/DDD argument usbreset expects
func formatUSBPath(bus, device string) (string, error) {
	if bus == "" || device == "" {
		return "", ErrUSBInfoNotAvailable
	}

	b, err := strconv.Atoi(bus)
	if err != nil {
		return "", fmt.Errorf("%w: bus %q", ErrUSBInfoNotAvailable, bus)
	}
	d, err := strconv.Atoi(device)
	if err != nil {
		return "", fmt.Errorf("%w: device %q", ErrUSBInfoNotAvailable, device)
	}

	return fmt.Sprintf("%03d/%03d", b, d), nil
}
