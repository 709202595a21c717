/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	relay "github.com/allbin/go-relay"
	"github.com/allbin/go-relay/internal/serial"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset [port]",
	Short: "Reset the relay adapter at USB level",
	Long: `Perform a USB-level reset on the relay adapter. This can recover an
adapter that no longer answers without physically unplugging it.

Without a port or --serial, the adapter is located by its USB ID.

The device will re-enumerate after reset, which may cause the port path
to change (e.g., /dev/ttyUSB0 might become /dev/ttyUSB1). Use serial
numbers to reliably identify devices after reset.

Requirements:
- usbreset utility must be installed (from usbutils package)
- Root/sudo permissions required for USB operations

Examples:
  sudo tty-relay reset                      # Reset the detected adapter
  sudo tty-relay reset /dev/ttyUSB0         # Reset by port path
  sudo tty-relay reset --serial A50285BI    # Reset by serial number`,
	Args: func(cmd *cobra.Command, args []string) error {
		serialFlag, _ := cmd.Flags().GetString("serial")
		if serialFlag != "" && len(args) > 0 {
			return invalidArgument(errors.New("cannot specify both port path and --serial flag"))
		}
		return maximumArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !serial.IsUSBResetAvailable() {
			return fmt.Errorf("%w (install with: sudo apt-get install usbutils)", serial.ErrUSBResetNotAvailable)
		}

		out := cmd.OutOrStdout()
		serialFlag, _ := cmd.Flags().GetString("serial")

		var err error
		if serialFlag != "" {
			fmt.Fprintf(out, "Resetting USB device with serial: %s\n", serialFlag)
			err = serial.ResetUSBDeviceBySerial(serialFlag)
		} else {
			explicit := settings.TTY
			if len(args) == 1 {
				explicit = args[0]
			}

			var portPath string
			portPath, err = relay.Resolve(explicit, relay.NewLocator(relay.SystemEnumerator))
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Resetting USB device: %s\n", portPath)
			err = serial.ResetUSBDevice(portPath)
		}

		if err != nil {
			if errors.Is(err, serial.ErrUSBInfoNotAvailable) {
				return fmt.Errorf("%w: this device does not appear to be a USB device", err)
			}
			return err
		}

		fmt.Fprintln(out, "USB device reset successfully")
		fmt.Fprintln(out, "Device will re-enumerate (port path may change)")
		fmt.Fprintln(out, "\nUse 'tty-relay list' to see the updated device list")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().StringP("serial", "s", "", "Reset device by serial number")
}
