// Package logging builds the slog loggers used across Stemsync.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for machine consumption. NewFromConfig also tees output into
// the configured log directory so daemon sessions remain inspectable.
package logging
