// Package api defines transport-friendly representations of studio state
// shared by the HTTP surface and the IPC service, plus the conversion
// helpers that build them from domain types.
package api
