/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	relay "github.com/allbin/go-relay"
)

// onCmd represents the on command
var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable power",
	Long: `Switch the relay on immediately.

Running it while the relay is already on re-asserts the same lines.`,
	Args: exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRelay(cmd, func(port *relay.Port, ctl *relay.Controller) error {
			if err := ctl.On(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Relay ON on %s\n", port.Path())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(onCmd)
}
