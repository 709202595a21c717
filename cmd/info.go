/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	relay "github.com/allbin/go-relay"
	"github.com/allbin/go-relay/internal/serial"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [port]",
	Short: "Display detailed information about the relay adapter",
	Long: `Display detailed information about a serial port including USB metadata.
Without a port, the adapter is located the same way the relay commands do.

Examples:
  tty-relay info
  tty-relay info /dev/ttyUSB0

For USB devices, this displays vendor/product IDs, serial numbers, interface
numbers, and other USB-specific metadata extracted from sysfs.`,
	Args: maximumArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		explicit := settings.TTY
		if len(args) == 1 {
			explicit = args[0]
		}

		locator := relay.NewLocator(relay.SystemEnumerator)
		portPath, err := relay.Resolve(explicit, locator)
		if err != nil {
			return err
		}

		info, err := serial.GetPortInfo(portPath)
		if err != nil {
			return fmt.Errorf("getting port info for %s: %w", portPath, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Port Information: %s\n\n", info.Path)
		fmt.Fprintf(out, "  Name:        %s\n", info.Name)
		fmt.Fprintf(out, "  Description: %s\n", info.Description)
		fmt.Fprintf(out, "  Supported:   %s\n", formatSupported(locator.Match(info)))

		if !info.IsUSB() {
			return nil
		}

		fmt.Fprintln(out, "\nUSB Device Information:")
		for _, field := range []struct{ label, value string }{
			{"Vendor ID:   ", info.VendorID},
			{"Product ID:  ", info.ProductID},
			{"Serial:      ", info.SerialNumber},
			{"Interface:   ", info.InterfaceNumber},
			{"Bus:         ", info.BusNumber},
			{"Device:      ", info.DeviceNumber},
			{"Manufacturer:", info.Manufacturer},
			{"Product:     ", info.Product},
		} {
			if field.value != "" {
				fmt.Fprintf(out, "  %s %s\n", field.label, field.value)
			}
		}
		return nil
	},
}

func formatSupported(ok bool) string {
	if ok {
		return "yes (" + relay.CH340.String() + ")"
	}
	return "no"
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
