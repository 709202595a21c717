// Package config resolves tty-relay settings from defaults, an optional
// YAML file, the TTY_RELAY_TTY environment variable and command-line
// flags, in increasing order of precedence.
package config
