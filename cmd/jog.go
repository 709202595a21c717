/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	relay "github.com/allbin/go-relay"
)

// jogCmd represents the jog command
var jogCmd = &cobra.Command{
	Use:   "jog",
	Short: "Quick toggle power",
	Long: fmt.Sprintf(`Pulse the relay like a button press: switch it on, hold for %s,
then switch it off. The relay always ends up off.`, relay.DefaultJogHold),
	Args: exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRelay(cmd, func(port *relay.Port, ctl *relay.Controller) error {
			if err := ctl.Jog(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Relay pulsed on %s\n", port.Path())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(jogCmd)
}
