/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	relay "github.com/allbin/go-relay"
)

var (
	stateOnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	stateOffStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	unknownStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display the relay state read back from the control lines",
	Long: `Read DTR and RTS from the adapter and report the relay state they
correspond to under the configured polarity. Nothing is written.

On Linux the tty driver raises both DTR and RTS every time the port is
opened, so a fresh run normally reads both lines high and cannot tell what
state an earlier run left the relay in. That case is reported as
UNREADABLE rather than as a wiring or polarity problem.

Examples:
  tty-relay status
  tty-relay status --polarity nc --tty /dev/ttyUSB1

Exits with code 9 when the lines match neither ON nor OFF.`,
	Args: exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRelay(cmd, func(port *relay.Port, ctl *relay.Controller) error {
			lines, err := port.Lines()
			if err != nil {
				return &relay.IOError{Op: relay.OpGet, Err: err}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Relay on %s (polarity %s):\n\n", port.Path(), ctl.Polarity())
			fmt.Fprintf(out, "  DTR (Data Terminal Ready): %s\n", formatSignalState(lines.DTR))
			fmt.Fprintf(out, "  RTS (Request To Send):     %s\n", formatSignalState(lines.RTS))

			state, err := ctl.State()
			if err != nil && !errors.Is(err, relay.ErrUnknownState) {
				return err
			}
			fmt.Fprintf(out, "  State:                     %s\n", formatReadBack(state, err))
			return err
		})
	},
}

func formatSignalState(state bool) string {
	if state {
		return "HIGH"
	}
	return "LOW"
}

// formatReadBack renders the outcome of a state read-back
func formatReadBack(state relay.State, err error) string {
	switch {
	case errors.Is(err, relay.ErrRaisedOnOpen):
		return unknownStyle.Render("UNREADABLE (lines raised on open)")
	case errors.Is(err, relay.ErrUnknownState):
		return unknownStyle.Render("UNKNOWN")
	default:
		return formatRelayState(state)
	}
}

func formatRelayState(state relay.State) string {
	if state == relay.StateOn {
		return stateOnStyle.Render(state.String())
	}
	return stateOffStyle.Render(state.String())
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
