package relay

import (
	"errors"
	"fmt"
	"testing"

	"github.com/allbin/go-relay/internal/serial"
	"github.com/stretchr/testify/require"
)

func TestOpenErrorsAliasSerialSentinels(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("failed to open /dev/ttyUSB0: %w", serial.ErrDeviceInUse)
	require.ErrorIs(t, wrapped, ErrDeviceBusy)
	require.ErrorIs(t, fmt.Errorf("x: %w", serial.ErrPermissionDenied), ErrPermissionDenied)
	require.ErrorIs(t, fmt.Errorf("x: %w", serial.ErrDeviceNotFound), ErrDeviceNotFound)
	require.ErrorIs(t, fmt.Errorf("x: %w", serial.ErrNotATTY), ErrNotATTY)
	require.NotErrorIs(t, ErrNotATTY, ErrDeviceNotFound)
}

func TestOpenOptionsLockAdapter(t *testing.T) {
	t.Parallel()

	cfg := serial.DefaultConfig()
	cfg.Exclusive = false
	cfg.BaudRate = 115200
	for _, opt := range openOptions {
		require.NoError(t, opt(&cfg))
	}
	require.True(t, cfg.Exclusive)
	require.Equal(t, adapterBaudRate, cfg.BaudRate)
}

func TestIOErrorMessage(t *testing.T) {
	t.Parallel()

	err := &IOError{Op: OpGet, Err: errors.New("EIO")}
	require.Equal(t, "get lines: EIO", err.Error())
	require.ErrorIs(t, err, ErrIO)
	require.NotErrorIs(t, err, ErrUnknownState)
}

func TestOpenMissingDevice(t *testing.T) {
	t.Parallel()

	_, err := Open("/dev/ttyUSB-relay-test-missing")
	require.Error(t, err)
}
