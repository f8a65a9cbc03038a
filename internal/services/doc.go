// Package services defines shared utilities consumed by the workflow
// controller and the transport surfaces.
//
// Key responsibilities:
//   - Context helpers that stamp project identifiers, operation names, and
//     correlation identifiers for logging and tracing.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification uniform across components.
//
// Use these helpers when wiring new studio logic so operational behaviour
// (error handling, observability) stays uniform across the core.
package services
