package serial

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeSysfs builds a minimal /sys tree under a temp directory
type fakeSysfs struct {
	t    *testing.T
	root string
}

func newFakeSysfs(t *testing.T, root string) *fakeSysfs {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, "class", "tty"), 0755); err != nil {
		t.Fatalf("Failed to create class/tty: %v", err)
	}
	return &fakeSysfs{t: t, root: root}
}

func (f *fakeSysfs) writeAttrs(dir string, attrs map[string]string) {
	f.t.Helper()
	for name, content := range attrs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content+"\n"), 0644); err != nil {
			f.t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

// link creates class/tty/<name>/device pointing at target
func (f *fakeSysfs) link(name, target string) {
	f.t.Helper()
	classDir := filepath.Join(f.root, "class", "tty", name)
	if err := os.MkdirAll(classDir, 0755); err != nil {
		f.t.Fatalf("Failed to create %s: %v", classDir, err)
	}
	if err := os.Symlink(target, filepath.Join(classDir, "device")); err != nil {
		f.t.Fatalf("Failed to create symlink: %v", err)
	}
}

// addUSBSerial mimics a usb-serial driver (ch341, ftdi_sio):
// devices/<usbDev>/<iface>/<name> with the device link at the tty level
func (f *fakeSysfs) addUSBSerial(name, usbDev string, attrs map[string]string) {
	f.t.Helper()
	devicePath := filepath.Join(f.root, "devices", usbDev)
	interfacePath := filepath.Join(devicePath, filepath.Base(usbDev)+":1.0")
	ttyPath := filepath.Join(interfacePath, name)
	if err := os.MkdirAll(ttyPath, 0755); err != nil {
		f.t.Fatalf("Failed to create %s: %v", ttyPath, err)
	}
	f.writeAttrs(devicePath, attrs)
	f.writeAttrs(interfacePath, map[string]string{"bInterfaceNumber": "00"})
	f.link(name, ttyPath)
}

// addACM mimics cdc_acm, where the device link is the interface directory
func (f *fakeSysfs) addACM(name, usbDev string, attrs map[string]string) {
	f.t.Helper()
	devicePath := filepath.Join(f.root, "devices", usbDev)
	interfacePath := filepath.Join(devicePath, filepath.Base(usbDev)+":1.0")
	if err := os.MkdirAll(interfacePath, 0755); err != nil {
		f.t.Fatalf("Failed to create %s: %v", interfacePath, err)
	}
	f.writeAttrs(devicePath, attrs)
	f.writeAttrs(interfacePath, map[string]string{"bInterfaceNumber": "00"})
	f.link(name, interfacePath)
}

// addPlatform adds an on-board UART with no USB ancestry
func (f *fakeSysfs) addPlatform(name string) {
	f.t.Helper()
	target := filepath.Join(f.root, "devices", "platform", "serial8250", name)
	if err := os.MkdirAll(target, 0755); err != nil {
		f.t.Fatalf("Failed to create %s: %v", target, err)
	}
	f.link(name, target)
}

// addVirtual adds a class entry without a device link
func (f *fakeSysfs) addVirtual(name string) {
	f.t.Helper()
	if err := os.MkdirAll(filepath.Join(f.root, "class", "tty", name), 0755); err != nil {
		f.t.Fatalf("Failed to create virtual tty %s: %v", name, err)
	}
}

func TestScannerPorts(t *testing.T) {
	root := t.TempDir()
	fs := newFakeSysfs(t, root)
	fs.addUSBSerial("ttyUSB1", "usb1/1-2", map[string]string{"idVendor": "0403", "idProduct": "6001", "serial": "FT123456"})
	fs.addUSBSerial("ttyUSB0", "usb1/1-1", map[string]string{"idVendor": "1a86", "idProduct": "7523"})
	fs.addACM("ttyACM0", "usb2/2-1", map[string]string{"idVendor": "2341", "idProduct": "0043"})
	fs.addPlatform("ttyS0")
	fs.addVirtual("ttyS1")
	fs.addVirtual("tty1")
	fs.addVirtual("console")

	s := Scanner{SysfsRoot: root, DevDir: "/dev"}
	ports, err := s.Ports()
	if err != nil {
		t.Fatalf("Ports failed: %v", err)
	}

	expected := []struct {
		path   string
		vendor string
	}{
		{"/dev/ttyACM0", "2341"},
		{"/dev/ttyS0", ""},
		{"/dev/ttyUSB0", "1a86"},
		{"/dev/ttyUSB1", "0403"},
	}

	if len(ports) != len(expected) {
		t.Fatalf("Ports() returned %d ports, expected %d: %+v", len(ports), len(expected), ports)
	}

	for i, want := range expected {
		if ports[i].Path != want.path {
			t.Errorf("ports[%d].Path = %s, expected %s", i, ports[i].Path, want.path)
		}
		if ports[i].VendorID != want.vendor {
			t.Errorf("ports[%d].VendorID = %q, expected %q", i, ports[i].VendorID, want.vendor)
		}
	}

	if ports[1].IsUSB() {
		t.Errorf("ttyS0 reported as USB: %+v", ports[1])
	}
	if ports[1].Description != "Standard Serial Port" {
		t.Errorf("ttyS0 description = %q", ports[1].Description)
	}
}

func TestScannerPortsMissingSysfs(t *testing.T) {
	s := Scanner{SysfsRoot: filepath.Join(t.TempDir(), "nope"), DevDir: "/dev"}
	if _, err := s.Ports(); err == nil {
		t.Error("Expected error when class/tty is missing")
	}
}

func TestScannerPortInfo(t *testing.T) {
	root := t.TempDir()
	fs := newFakeSysfs(t, root)
	fs.addUSBSerial("ttyUSB0", "usb1/1-1", map[string]string{"idVendor": "1a86", "idProduct": "7523"})

	s := Scanner{SysfsRoot: root, DevDir: "/dev"}

	info, err := s.PortInfo("/dev/serial/by-id/ttyUSB0")
	if err != nil {
		t.Fatalf("PortInfo failed: %v", err)
	}
	if info.Path != "/dev/serial/by-id/ttyUSB0" {
		t.Errorf("Path = %q, expected the path that was asked for", info.Path)
	}
	if info.VendorID != "1a86" || info.ProductID != "7523" {
		t.Errorf("VID:PID = %s:%s", info.VendorID, info.ProductID)
	}

	_, err = s.PortInfo("/dev/ttyUSB9")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound, got %v", err)
	}
}

func TestGetPortDescription(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"ttyUSB0", "USB Serial Port"},
		{"ttyACM0", "USB CDC/ACM Device"},
		{"ttyS0", "Standard Serial Port"},
		{"ttyAMA0", "ARM Serial Port"},
		{"ttymxc0", "i.MX Serial Port"},
		{"ttyO0", "OMAP Serial Port"},
		{"ttySAC0", "Samsung Serial Port"},
		{"ttyTHS0", "Tegra Serial Port"},
		{"unknown", "Serial Port"},
	}

	for _, test := range tests {
		result := getPortDescription(test.name)
		if result != test.expected {
			t.Errorf("getPortDescription(%s) = %s, expected %s", test.name, result, test.expected)
		}
	}
}

// TestPortFiltering tests that we correctly filter different types of devices
func TestPortFiltering(t *testing.T) {
	testDevices := []struct {
		name        string
		shouldMatch bool
	}{
		{"ttyUSB0", true},
		{"ttyUSB1", true},
		{"ttyACM0", true},
		{"ttyS0", true},
		{"ttyAMA0", true},
		{"tty1", false},    // Virtual terminal - should be excluded
		{"tty2", false},    // Virtual terminal - should be excluded
		{"console", false}, // Console - should be excluded
		{"ptmx", false},    // Pseudo-terminal - should be excluded
		{"ptyp0", false},   // Pseudo-terminal - should be excluded
		{"random", false},  // Not a serial device
		{"urandom", false}, // Not a serial device
	}

	for _, device := range testDevices {
		if got := isSerialName(device.name); got != device.shouldMatch {
			t.Errorf("Device %s: expected match=%v, got match=%v (excluded=%v)",
				device.name, device.shouldMatch, got, matchesExcludePattern(device.name))
		}
	}
}

// BenchmarkScannerPorts benchmarks enumeration against the live system
func BenchmarkScannerPorts(b *testing.B) {
	if _, err := os.Stat("/sys/class/tty"); err != nil {
		b.Skip("no sysfs")
	}
	for i := 0; i < b.N; i++ {
		if _, err := DefaultScanner.Ports(); err != nil {
			b.Errorf("Ports failed: %v", err)
		}
	}
}

// TestScannerPortsIntegration lists whatever the host has
func TestScannerPortsIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if _, err := os.Stat("/sys/class/tty"); err != nil {
		t.Skip("no sysfs on this host")
	}

	ports, err := DefaultScanner.Ports()
	if err != nil {
		t.Fatalf("Ports failed: %v", err)
	}

	t.Logf("Found %d serial ports:", len(ports))
	for i, port := range ports {
		t.Logf("  %d. %s (%s) %s:%s", i+1, port.Path, port.Description, port.VendorID, port.ProductID)
	}

	for i := 1; i < len(ports); i++ {
		if ports[i-1].Path > ports[i].Path {
			t.Errorf("Ports are not sorted: %s > %s", ports[i-1].Path, ports[i].Path)
		}
	}
}
