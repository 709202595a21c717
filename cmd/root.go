/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/allbin/go-relay/internal/config"
	"github.com/allbin/go-relay/internal/logger"
)

// version is set at build time with -ldflags "-X github.com/allbin/go-relay/cmd.version=..."
var version = "dev"

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// v holds layered settings; flags are bound to it in init.
	v = config.New()
	// settings is resolved once flags are parsed.
	settings *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tty-relay",
	Short: "Switch a USB relay board through its serial adapter",
	Long: `Switch a single-channel USB relay board driven by the DTR and RTS lines
of its CH340 serial adapter.

The adapter is found automatically by its USB ID (1a86:7523) unless a
device is given with --tty or TTY_RELAY_TTY.

Examples:
  tty-relay on
  tty-relay off --tty /dev/ttyUSB1
  tty-relay toggle --polarity nc
  tty-relay jog
  tty-relay timed_start 30
  tty-relay timed_stop 1m30s`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v, cfgPath)
		if err != nil {
			return invalidArgument(err)
		}
		settings = cfg
		logger.SetLevel(cfg.LogLevel)
		return nil
	},
}

// Execute runs the CLI and exits with a code describing the failure, if any.
func Execute() {
	err := rootCmd.Execute()
	logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitCode(err))
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgPath, "config", "c", "", "path to a YAML configuration file")
	flags.StringP("tty", "t", "", "serial device of the relay adapter (default: auto-detect)")
	flags.String("polarity", config.DefaultPolarity, "relay wiring: no (normally open) or nc (normally closed)")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")

	for key, name := range map[string]string{
		config.KeyTTY:      "tty",
		config.KeyPolarity: "polarity",
		config.KeyLogLevel: "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return invalidArgument(err)
	})
}
