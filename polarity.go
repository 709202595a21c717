package relay

import (
	"fmt"
	"strings"
)

// State is the logical state of the controlled circuit
type State int

const (
	StateOff State = iota
	StateOn
)

func (s State) String() string {
	if s == StateOn {
		return "ON"
	}
	return "OFF"
}

// Opposite returns the other state
func (s State) Opposite() State {
	if s == StateOn {
		return StateOff
	}
	return StateOn
}

// Polarity is how the relay contacts are wired. It is fixed for the life of
// a controller.
type Polarity int

const (
	PolarityNO Polarity = iota // Normally Open, the default
	PolarityNC                 // Normally Closed
)

func (p Polarity) String() string {
	switch p {
	case PolarityNO:
		return "NO"
	case PolarityNC:
		return "NC"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// Valid reports whether p is one of the defined polarities
func (p Polarity) Valid() bool {
	return p == PolarityNO || p == PolarityNC
}

// ParsePolarity accepts "no" or "nc", case-insensitively
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "no":
		return PolarityNO, nil
	case "nc":
		return PolarityNC, nil
	default:
		return 0, fmt.Errorf("%w: polarity %q (valid: no, nc)", ErrInvalidArgument, s)
	}
}

// Lines is the physical state of the two control lines.
// Line A is DTR, line B is RTS.
type Lines struct {
	DTR bool
	RTS bool
}

// Swap exchanges which of the two lines is asserted
func (l Lines) Swap() Lines {
	return Lines{DTR: l.RTS, RTS: l.DTR}
}

func (l Lines) String() string {
	return fmt.Sprintf("DTR=%s RTS=%s", level(l.DTR), level(l.RTS))
}

func level(b bool) string {
	if b {
		return "HIGH"
	}
	return "LOW"
}

// ToLines maps a logical state to line values:
//
//	        NO              NC
//	ON   DTR=1 RTS=0    DTR=0 RTS=1
//	OFF  DTR=0 RTS=1    DTR=1 RTS=0
//
// This is the only place that looks at Polarity.
func ToLines(s State, p Polarity) Lines {
	on := Lines{DTR: true, RTS: false}
	if p == PolarityNC {
		on = on.Swap()
	}
	if s == StateOff {
		return on.Swap()
	}
	return on
}

// FromLines inverts ToLines. Lines that match neither mapping (both high or
// both low) yield ErrUnknownState; the caller must not guess.
func FromLines(l Lines, p Polarity) (State, error) {
	switch l {
	case ToLines(StateOn, p):
		return StateOn, nil
	case ToLines(StateOff, p):
		return StateOff, nil
	default:
		return StateOff, fmt.Errorf("%w: %s with polarity %s", ErrUnknownState, l, p)
	}
}
