// Package payments simulates the credit purchase flow.
//
// There is no real gateway: Purchase waits a configured settling delay and
// then credits the ledger. The processor assumes payment validation happened
// upstream, matching the ledger contract.
package payments
