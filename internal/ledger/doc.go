// Package ledger tracks the credit balance that gates stem separation.
//
// The ledger is process-lifetime, in-memory state. Persistence and payment
// validation belong to external collaborators; callers credit the ledger only
// after they consider a purchase settled, and debit it before issuing a
// separation request.
package ledger
