// Package main hosts the Stemsync CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into IPC calls
// against the daemon: uploads, mix adjustments, credit purchases, exports,
// and configuration scaffolding. It centralizes configuration resolution and
// socket discovery so subcommands can focus on user experience.
package main
