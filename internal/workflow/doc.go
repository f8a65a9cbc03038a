// Package workflow orchestrates the upload -> separation -> mix lifecycle.
//
// The controller owns the credit ledger, the project store, and the
// separation engine, and exposes the single state machine the UI surfaces
// rely on: idle -> awaiting_credits | separating -> ready -> idle. At most one
// separation is in flight at a time; concurrent uploads are rejected, not
// queued. The debit always completes before the engine is invoked, and a
// failed separation does not refund the debit.
package workflow
