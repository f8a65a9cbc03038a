// Package separation defines the stem separation boundary and the simulated
// engine that stands in for a real separation backend.
//
// The engine is a pure function of its request: it never touches the credit
// ledger or the project store. Callers reserve credits before invoking it.
// The context parameter is part of the contract so a future backend can
// support cancellation and timeouts without changing callers.
package separation
