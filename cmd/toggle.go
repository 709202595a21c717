/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	relay "github.com/allbin/go-relay"
)

// toggleCmd represents the toggle command
var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle power",
	Long: `Read the current relay state back from the DTR/RTS lines and switch to
the opposite state.

On Linux the tty driver raises both DTR and RTS every time the port is
opened, which erases the state an earlier run left on the lines. In that
case nothing is written and the command fails with exit code 9; use on or
off instead. The same exit code is returned when the lines match neither
ON nor OFF for any other reason.`,
	Args: exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRelay(cmd, func(port *relay.Port, ctl *relay.Controller) error {
			if err := ctl.Toggle(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Relay toggled on %s\n", port.Path())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
