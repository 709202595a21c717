package serial

// Port represents an open serial device used for modem line control
type Port interface {
	Close() error
	Path() string

	// Modem signal control and monitoring
	GetModemSignals() (ModemSignals, error)
	SetModemLines(dtr, rts bool) error
}

// ModemSignals represents modem control signal states
type ModemSignals struct {
	CTS bool // Clear To Send
	DSR bool // Data Set Ready
	RI  bool // Ring Indicator
	DCD bool // Data Carrier Detect
	RTS bool // Request To Send
	DTR bool // Data Terminal Ready
}
