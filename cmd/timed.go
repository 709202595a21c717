/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	relay "github.com/allbin/go-relay"
	"github.com/allbin/go-relay/internal/logger"
)

// newTimedCmd builds timed_start and timed_stop, which differ only in the
// final state.
func newTimedCmd(verb string, target relay.State) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("timed_%s <delay>", verb),
		Short: fmt.Sprintf("Switch the relay %s after a delay", target),
		Long: fmt.Sprintf(`Wait for <delay>, then switch the relay %s.

<delay> is a whole number of seconds or a duration such as 90s or 1m30s.
The wait blocks and cannot be cancelled; interrupting the process during
the wait leaves the relay untouched.

Examples:
  tty-relay timed_%s 30
  tty-relay timed_%s 2m`, target, verb, verb),
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate before touching the device
			delay, err := relay.ParseDelay(args[0])
			if err != nil {
				return err
			}

			return withRelay(cmd, func(port *relay.Port, ctl *relay.Controller) error {
				run := ctl.TimedStop
				if target == relay.StateOn {
					run = ctl.TimedStart
				}

				logger.InfoKV(cmd.Context(), "waiting", "tty", port.Path(), "target", target.String(), "delay", delay.String())
				fmt.Fprintf(cmd.OutOrStdout(), "Relay %s on %s in %s\n", target, port.Path(), delay)
				if err := run(delay); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Relay %s on %s at %s\n", target, port.Path(), time.Now().Format(time.TimeOnly))
				return nil
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(newTimedCmd("start", relay.StateOn))
	rootCmd.AddCommand(newTimedCmd("stop", relay.StateOff))
}
