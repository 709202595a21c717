/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"github.com/spf13/cobra"

	relay "github.com/allbin/go-relay"
	"github.com/allbin/go-relay/internal/logger"
)

// withRelay selects the port, opens it, runs fn and closes the port again
// before returning, so the handle never outlives the command.
func withRelay(cmd *cobra.Command, fn func(port *relay.Port, ctl *relay.Controller) error) error {
	ctx := cmd.Context()

	path, err := relay.Resolve(settings.TTY, relay.NewLocator(relay.SystemEnumerator))
	if err != nil {
		return err
	}

	ctx = logger.WithKV(ctx, "tty", path)
	logger.DebugKV(ctx, "opening port", "polarity", settings.Polarity.String())

	port, err := relay.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := port.Close(); cerr != nil {
			logger.Warnf(ctx, "close %s: %v", path, cerr)
		}
	}()

	ctl, err := relay.NewController(port,
		relay.WithPolarity(settings.Polarity),
		relay.WithLogger(logger.FromContext(ctx)),
	)
	if err != nil {
		return err
	}

	return fn(port, ctl)
}
