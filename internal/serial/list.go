package serial

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// PortInfo describes a serial port and, for USB adapters, the device behind it
type PortInfo struct {
	Name            string
	Path            string
	Description     string
	VendorID        string
	ProductID       string
	SerialNumber    string
	Manufacturer    string
	Product         string
	InterfaceNumber string
	BusNumber       string
	DeviceNumber    string
}

// IsUSB reports whether USB metadata was found for the port
func (i PortInfo) IsUSB() bool {
	return i.VendorID != "" && i.ProductID != ""
}

// Regular expressions for different types of serial devices
var serialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^ttyUSB\d+$`), // USB serial adapters
	regexp.MustCompile(`^ttyACM\d+$`), // USB CDC/ACM devices
	regexp.MustCompile(`^ttyS\d+$`),   // Standard serial ports
	regexp.MustCompile(`^ttyAMA\d+$`), // ARM/Raspberry Pi serial
	regexp.MustCompile(`^ttymxc\d+$`), // i.MX serial ports
	regexp.MustCompile(`^ttyO\d+$`),   // OMAP serial ports
	regexp.MustCompile(`^ttySAC\d+$`), // Samsung serial ports
	regexp.MustCompile(`^ttyTHS\d+$`), // Tegra serial ports
}

// Exclude patterns for virtual terminals and other non-serial devices
var excludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^tty\d+$`),  // Virtual terminals (tty1, tty2, etc.)
	regexp.MustCompile(`^console$`), // Console
	regexp.MustCompile(`^ptmx$`),    // Pseudo-terminal multiplexer
	regexp.MustCompile(`^pty.*$`),   // Pseudo-terminals
	regexp.MustCompile(`^pts/.*$`),  // Pseudo-terminal slaves
}

func matchesSerialPattern(name string) bool {
	for _, pattern := range serialPatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

func matchesExcludePattern(name string) bool {
	for _, pattern := range excludePatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

// isSerialName reports whether a tty name looks like a communication port
func isSerialName(name string) bool {
	return !matchesExcludePattern(name) && matchesSerialPattern(name)
}

// Scanner enumerates serial ports from sysfs.
// The roots are fields so tests can point them at a fake tree.
type Scanner struct {
	SysfsRoot string
	DevDir    string
}

// DefaultScanner reads the live system
var DefaultScanner = Scanner{SysfsRoot: "/sys", DevDir: "/dev"}

// Ports lists serial ports that are backed by a real device. Entries
// under /sys/class/tty without a device link (virtual ttys) are skipped.
func (s Scanner) Ports() ([]PortInfo, error) {
	classDir := filepath.Join(s.SysfsRoot, "class", "tty")
	entries, err := os.ReadDir(classDir)
	if err != nil {
		return nil, err
	}

	var ports []PortInfo
	for _, entry := range entries {
		name := entry.Name()
		if !isSerialName(name) {
			continue
		}

		if _, err := os.Stat(filepath.Join(classDir, name, "device")); err != nil {
			continue
		}

		ports = append(ports, s.portInfo(name))
	}

	// Sort the ports for consistent ordering
	sort.Slice(ports, func(i, j int) bool { return ports[i].Path < ports[j].Path })

	return ports, nil
}

// PortInfo returns information about a specific port path
func (s Scanner) PortInfo(portPath string) (PortInfo, error) {
	name := filepath.Base(portPath)
	if _, err := os.Stat(filepath.Join(s.SysfsRoot, "class", "tty", name)); err != nil {
		return PortInfo{}, ErrDeviceNotFound
	}

	info := s.portInfo(name)
	info.Path = portPath
	return info, nil
}

func (s Scanner) portInfo(name string) PortInfo {
	info := PortInfo{
		Name:        name,
		Path:        filepath.Join(s.DevDir, name),
		Description: getPortDescription(name),
	}

	if strings.HasPrefix(name, "ttyUSB") || strings.HasPrefix(name, "ttyACM") {
		s.enrichUSBInfo(&info)
	}

	return info
}

// getPortDescription provides human-readable descriptions for different port types
func getPortDescription(name string) string {
	switch {
	case strings.HasPrefix(name, "ttyUSB"):
		return "USB Serial Port"
	case strings.HasPrefix(name, "ttyACM"):
		return "USB CDC/ACM Device"
	case strings.HasPrefix(name, "ttyAMA"):
		return "ARM Serial Port"
	case strings.HasPrefix(name, "ttymxc"):
		return "i.MX Serial Port"
	case strings.HasPrefix(name, "ttySAC"):
		return "Samsung Serial Port"
	case strings.HasPrefix(name, "ttyTHS"):
		return "Tegra Serial Port"
	case strings.HasPrefix(name, "ttyO"):
		return "OMAP Serial Port"
	case strings.HasPrefix(name, "ttyS"):
		return "Standard Serial Port"
	default:
		return "Serial Port"
	}
}

// maxUSBDepth bounds the walk from the tty's device link up to the USB
// device directory. usb-serial ports sit one level below the interface,
// CDC/ACM ttys link to the interface itself.
const maxUSBDepth = 3

// enrichUSBInfo fills USB metadata from sysfs. Missing files leave the
// fields empty; this never fails.
func (s Scanner) enrichUSBInfo(info *PortInfo) {
	devicePath := filepath.Join(s.SysfsRoot, "class", "tty", info.Name, "device")
	dir, err := filepath.EvalSymlinks(devicePath)
	if err != nil {
		return
	}

	for i := 0; i < maxUSBDepth && dir != "/" && dir != "."; i++ {
		if info.InterfaceNumber == "" {
			info.InterfaceNumber = readSysfsFile(filepath.Join(dir, "bInterfaceNumber"))
		}

		if vendor := readSysfsFile(filepath.Join(dir, "idVendor")); vendor != "" {
			info.VendorID = vendor
			info.ProductID = readSysfsFile(filepath.Join(dir, "idProduct"))
			info.SerialNumber = readSysfsFile(filepath.Join(dir, "serial"))
			info.Manufacturer = readSysfsFile(filepath.Join(dir, "manufacturer"))
			info.Product = readSysfsFile(filepath.Join(dir, "product"))
			info.BusNumber = readSysfsFile(filepath.Join(dir, "busnum"))
			info.DeviceNumber = readSysfsFile(filepath.Join(dir, "devnum"))
			return
		}

		dir = filepath.Dir(dir)
	}
}

// readSysfsFile returns the trimmed contents of a sysfs attribute, or ""
func readSysfsFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
