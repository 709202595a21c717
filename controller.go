package relay

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// SignalLines is the pair of control lines the controller drives.
// *Port implements it over a real tty.
type SignalLines interface {
	SetLines(Lines) error
	Lines() (Lines, error)
}

// Controller sequences logical relay operations over a SignalLines.
// It holds no state of its own between calls; the lines are the state.
type Controller struct {
	lines    SignalLines
	polarity Polarity
	jogHold  time.Duration
	sleep    func(time.Duration)
	log      *zap.SugaredLogger

	// written is set once the controller has driven the lines itself
	written bool
}

// NewController creates a controller for lines
func NewController(lines SignalLines, opts ...Option) (*Controller, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	return &Controller{
		lines:    lines,
		polarity: config.Polarity,
		jogHold:  config.JogHold,
		sleep:    config.sleep,
		log:      config.Logger,
	}, nil
}

// Polarity returns the wiring the controller was built with
func (c *Controller) Polarity() Polarity {
	return c.polarity
}

// On switches the relay on. Calling it while already on re-asserts the
// same line values.
func (c *Controller) On() error {
	c.log.Debug("on command")
	return c.set(StateOn)
}

// Off switches the relay off
func (c *Controller) Off() error {
	c.log.Debug("off command")
	return c.set(StateOff)
}

// State reads the lines back and infers the logical state. Both lines high
// before any write is reported as ErrRaisedOnOpen.
func (c *Controller) State() (State, error) {
	lines, err := c.lines.Lines()
	if err != nil {
		return StateOff, &IOError{Op: OpGet, Err: err}
	}

	state, err := FromLines(lines, c.polarity)
	if err != nil {
		if !c.written && lines == (Lines{DTR: true, RTS: true}) {
			return StateOff, ErrRaisedOnOpen
		}
		return StateOff, err
	}

	c.log.Debugw("read lines", "lines", lines.String(), "state", state.String())
	return state, nil
}

// Toggle reads the current state and sets the opposite one. Nothing is
// written when the read-back is ambiguous.
func (c *Controller) Toggle() error {
	c.log.Debug("toggle command")

	current, err := c.State()
	if err != nil {
		return err
	}

	return c.set(current.Opposite())
}

// Jog pulses the relay: ON, hold, OFF. It always ends OFF, whatever the
// state was before.
func (c *Controller) Jog() error {
	c.log.Debugw("jog command", "hold", c.jogHold)

	if err := c.set(StateOn); err != nil {
		return err
	}

	c.sleep(c.jogHold)

	return c.set(StateOff)
}

// TimedStart blocks for delay, then switches the relay on.
// The wait cannot be cancelled; killing the process during it leaves the
// relay untouched.
func (c *Controller) TimedStart(delay time.Duration) error {
	if err := c.wait(delay); err != nil {
		return err
	}
	return c.On()
}

// TimedStop blocks for delay, then switches the relay off
func (c *Controller) TimedStop(delay time.Duration) error {
	if err := c.wait(delay); err != nil {
		return err
	}
	return c.Off()
}

func (c *Controller) wait(delay time.Duration) error {
	if delay < 0 {
		return fmt.Errorf("%w: negative delay %s", ErrInvalidArgument, delay)
	}

	if delay > 0 {
		c.log.Debugw("waiting", "delay", delay)
		c.sleep(delay)
	}
	return nil
}

func (c *Controller) set(state State) error {
	lines := ToLines(state, c.polarity)
	c.log.Debugw("set lines", "state", state.String(), "lines", lines.String())

	c.written = true
	if err := c.lines.SetLines(lines); err != nil {
		return &IOError{Op: OpSet, Err: err}
	}
	return nil
}
