package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	relay "github.com/allbin/go-relay"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"invalid argument", fmt.Errorf("parse delay: %w", relay.ErrInvalidArgument), ExitInvalidArgument},
		{"no device", fmt.Errorf("%w (vid:pid 1a86:7523)", relay.ErrNoDevice), ExitNoDevice},
		{"ambiguous", fmt.Errorf("%w: /dev/ttyUSB0, /dev/ttyUSB1", relay.ErrAmbiguousDevice), ExitAmbiguousDevice},
		{"not found", fmt.Errorf("open /dev/ttyUSB9: %w", relay.ErrDeviceNotFound), ExitDeviceNotFound},
		{"permission", relay.ErrPermissionDenied, ExitPermissionDenied},
		{"busy", relay.ErrDeviceBusy, ExitDeviceBusy},
		{"io", &relay.IOError{Op: relay.OpSet, Err: errors.New("EIO")}, ExitIO},
		{"unknown state", fmt.Errorf("dtr=1 rts=1: %w", relay.ErrUnknownState), ExitUnknownState},
		{"not a tty", fmt.Errorf("open /dev/null: %w", relay.ErrNotATTY), ExitFailure},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestInvalidArgument(t *testing.T) {
	require.NoError(t, invalidArgument(nil))

	err := invalidArgument(errors.New("accepts 1 arg(s), received 0"))
	require.ErrorIs(t, err, relay.ErrInvalidArgument)
	require.Contains(t, err.Error(), "accepts 1 arg(s)")

	// already tagged errors pass through untouched
	tagged := fmt.Errorf("bad: %w", relay.ErrInvalidArgument)
	require.Same(t, tagged, invalidArgument(tagged))
}

func TestPositionalArgs(t *testing.T) {
	require.NoError(t, exactArgs(1)(rootCmd, []string{"5"}))
	require.ErrorIs(t, exactArgs(1)(rootCmd, nil), relay.ErrInvalidArgument)

	require.NoError(t, maximumArgs(1)(rootCmd, nil))
	require.ErrorIs(t, maximumArgs(1)(rootCmd, []string{"a", "b"}), relay.ErrInvalidArgument)
}
