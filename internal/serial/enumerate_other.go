//go:build !linux

package serial

import (
	"path/filepath"
	"sort"
	"strings"

	"go.bug.st/serial/enumerator"
)

// Enumerate lists the serial ports present on the system
func Enumerate() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	ports := make([]PortInfo, 0, len(details))
	for _, d := range details {
		ports = append(ports, fromDetails(d))
	}

	sort.Slice(ports, func(i, j int) bool { return ports[i].Path < ports[j].Path })
	return ports, nil
}

// GetPortInfo returns detailed information about a specific port
func GetPortInfo(portPath string) (PortInfo, error) {
	ports, err := Enumerate()
	if err != nil {
		return PortInfo{}, err
	}
	for _, p := range ports {
		if p.Path == portPath {
			return p, nil
		}
	}
	return PortInfo{}, ErrDeviceNotFound
}

func fromDetails(d *enumerator.PortDetails) PortInfo {
	info := PortInfo{
		Name:        filepath.Base(d.Name),
		Path:        d.Name,
		Description: "Serial Port",
	}
	if d.IsUSB {
		info.Description = "USB Serial Port"
		info.VendorID = strings.ToLower(d.VID)
		info.ProductID = strings.ToLower(d.PID)
		info.SerialNumber = d.SerialNumber
		info.Product = d.Product
	}
	return info
}
