// Package relay drives single-channel USB relay boards built around a CH340
// serial adapter, where the relay coil hangs off the DTR and RTS lines.
//
// # Basic Usage
//
// Find the adapter, open it and switch the relay:
//
//	path, err := relay.Resolve("", relay.NewLocator(relay.SystemEnumerator))
//	if err != nil {
//	    return err
//	}
//
//	port, err := relay.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer port.Close()
//
//	ctl, err := relay.NewController(port, relay.WithPolarity(relay.PolarityNC))
//	if err != nil {
//	    return err
//	}
//	err = ctl.On()
//
// # Polarity
//
// Boards are wired Normally Open (the default) or Normally Closed. The
// polarity only changes which line is asserted for a given logical state;
// On, Off, Toggle and Jog mean the same thing either way. See ToLines for
// the table.
//
// # Timing
//
// Jog holds the relay ON for DefaultJogHold and then switches it OFF.
// TimedStart and TimedStop block the calling goroutine for the whole delay
// before acting. There is no way to cancel the wait short of ending the
// process, in which case the relay is left as it was.
//
// # Read-back
//
// Linux raises DTR and RTS every time the tty is opened, so the lines a
// previous process left behind cannot be read back. State reports that case
// as ErrRaisedOnOpen and Toggle refuses to act on it. Read-back after this
// controller has written the lines is reliable.
//
// # Error Handling
//
// Errors are terminal and never retried. Use errors.Is to branch on
// ErrNoDevice, ErrAmbiguousDevice, ErrDeviceNotFound, ErrPermissionDenied,
// ErrDeviceBusy, ErrNotATTY, ErrIO, ErrUnknownState (and its ErrRaisedOnOpen
// case) and ErrInvalidArgument; errors.As with *IOError tells whether a set
// or a get failed.
package relay
