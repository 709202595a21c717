/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	relay "github.com/allbin/go-relay"
)

// Process exit codes, one per error kind so scripts can branch on the cause.
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitInvalidArgument  = 2
	ExitNoDevice         = 3
	ExitAmbiguousDevice  = 4
	ExitDeviceNotFound   = 5
	ExitPermissionDenied = 6
	ExitDeviceBusy       = 7
	ExitIO               = 8
	ExitUnknownState     = 9
)

// ExitCode maps an error returned by a command to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, relay.ErrInvalidArgument):
		return ExitInvalidArgument
	case errors.Is(err, relay.ErrNoDevice):
		return ExitNoDevice
	case errors.Is(err, relay.ErrAmbiguousDevice):
		return ExitAmbiguousDevice
	case errors.Is(err, relay.ErrDeviceNotFound):
		return ExitDeviceNotFound
	case errors.Is(err, relay.ErrPermissionDenied):
		return ExitPermissionDenied
	case errors.Is(err, relay.ErrDeviceBusy):
		return ExitDeviceBusy
	case errors.Is(err, relay.ErrUnknownState):
		return ExitUnknownState
	case errors.Is(err, relay.ErrIO):
		return ExitIO
	default:
		return ExitFailure
	}
}

// invalidArgument tags usage and configuration errors
func invalidArgument(err error) error {
	if err == nil || errors.Is(err, relay.ErrInvalidArgument) {
		return err
	}
	return fmt.Errorf("%w: %v", relay.ErrInvalidArgument, err)
}

// exactArgs is cobra.ExactArgs with the error tagged as invalid argument
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return invalidArgument(cobra.ExactArgs(n)(cmd, args))
	}
}

// maximumArgs is cobra.MaximumNArgs with the error tagged as invalid argument
func maximumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return invalidArgument(cobra.MaximumNArgs(n)(cmd, args))
	}
}
