package relay

import (
	"fmt"
	"strings"

	"github.com/allbin/go-relay/internal/serial"
)

// PortInfo describes a serial port found during enumeration
type PortInfo = serial.PortInfo

// USBID is a USB vendor/product ID pair in lowercase hex, as sysfs reports it
type USBID struct {
	VendorID  string
	ProductID string
}

// CH340 is the USB-to-serial chip on the supported relay boards
var CH340 = USBID{VendorID: "1a86", ProductID: "7523"}

func (id USBID) String() string {
	return id.VendorID + ":" + id.ProductID
}

// Matches reports whether info carries this ID pair. Comparison ignores case.
func (id USBID) Matches(info PortInfo) bool {
	return strings.EqualFold(info.VendorID, id.VendorID) &&
		strings.EqualFold(info.ProductID, id.ProductID)
}

// Enumerator lists the serial ports present on the host
type Enumerator interface {
	Ports() ([]PortInfo, error)
}

// EnumeratorFunc adapts a function to the Enumerator interface
type EnumeratorFunc func() ([]PortInfo, error)

func (f EnumeratorFunc) Ports() ([]PortInfo, error) {
	return f()
}

// SystemEnumerator enumerates the live system
var SystemEnumerator Enumerator = EnumeratorFunc(serial.Enumerate)

// Locator finds the relay adapter when no path was given
type Locator struct {
	enumerator Enumerator
	ids        []USBID
}

// NewLocator returns a Locator that matches ids, or CH340 when none are given
func NewLocator(e Enumerator, ids ...USBID) *Locator {
	if len(ids) == 0 {
		ids = []USBID{CH340}
	}
	return &Locator{enumerator: e, ids: ids}
}

// Candidates returns every enumerated port matching one of the IDs
func (l *Locator) Candidates() ([]PortInfo, error) {
	ports, err := l.enumerator.Ports()
	if err != nil {
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}

	var matches []PortInfo
	for _, p := range ports {
		if l.Match(p) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// Match reports whether p is a supported adapter
func (l *Locator) Match(p PortInfo) bool {
	for _, id := range l.ids {
		if id.Matches(p) {
			return true
		}
	}
	return false
}

// Locate returns the path of the only matching adapter. Zero matches give
// ErrNoDevice, more than one ErrAmbiguousDevice.
func (l *Locator) Locate() (string, error) {
	matches, err := l.Candidates()
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w (vid:pid %s)", ErrNoDevice, l.idList())
	case 1:
		return matches[0].Path, nil
	default:
		paths := make([]string, len(matches))
		for i, m := range matches {
			paths[i] = m.Path
		}
		return "", fmt.Errorf("%w: %s; select one with --tty", ErrAmbiguousDevice, strings.Join(paths, ", "))
	}
}

func (l *Locator) idList() string {
	ids := make([]string, len(l.ids))
	for i, id := range l.ids {
		ids[i] = id.String()
	}
	return strings.Join(ids, ", ")
}

// Resolve returns explicit verbatim when set, bypassing the locator;
// otherwise it asks the locator.
func Resolve(explicit string, l *Locator) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return l.Locate()
}
