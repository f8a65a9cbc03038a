// Package daemon wires the studio subsystems together, enforces
// single-instance execution, and serves the HTTP surface used by frame
// clients and status consumers.
package daemon
