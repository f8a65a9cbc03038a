// Package ipc exposes daemon control over JSON-RPC on a Unix domain socket.
// The CLI is its only intended consumer; errors cross the wire as stable
// kind strings so callers can branch with errors.Is.
package ipc
