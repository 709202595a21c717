/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	relay "github.com/allbin/go-relay"
)

// offCmd represents the off command
var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable power",
	Long:  `Switch the relay off immediately.`,
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRelay(cmd, func(port *relay.Port, ctl *relay.Controller) error {
			if err := ctl.Off(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Relay OFF on %s\n", port.Path())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(offCmd)
}
