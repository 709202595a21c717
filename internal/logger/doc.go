// Package logger wraps zap with a global sugared logger writing to stderr,
// level parsing, and context helpers (ToContext/FromContext).
//
// stdout is reserved for command output; everything logged goes to stderr.
package logger
