package api

import (
	"errors"

	"stemsync/internal/ledger"
	"stemsync/internal/project"
	"stemsync/internal/separation"
	"stemsync/internal/workflow"
)

// Stable error kinds carried on the wire so clients can branch on failure
// class without parsing messages.
const (
	KindInsufficientCredits = "insufficient_credits"
	KindSeparationFailed    = "separation_failed"
	KindOperationInProgress = "operation_in_progress"
	KindStemNotFound        = "stem_not_found"
	KindNoActiveProject     = "no_active_project"
	KindOutOfRange          = "out_of_range"
	KindEmptyTitle          = "empty_title"
	KindUnknownPackage      = "unknown_package"
	KindInvalid             = "invalid_request"
	KindInternal            = "internal"
)

// ErrorKind maps a domain error to its wire kind.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ledger.ErrInsufficientCredits):
		return KindInsufficientCredits
	case errors.Is(err, separation.ErrSeparationFailed):
		return KindSeparationFailed
	case errors.Is(err, workflow.ErrOperationInProgress):
		return KindOperationInProgress
	case errors.Is(err, project.ErrStemNotFound):
		return KindStemNotFound
	case errors.Is(err, project.ErrNoActiveProject):
		return KindNoActiveProject
	case errors.Is(err, project.ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, project.ErrEmptyTitle):
		return KindEmptyTitle
	case errors.Is(err, ledger.ErrUnknownPackage):
		return KindUnknownPackage
	case errors.Is(err, ledger.ErrInvalidAmount):
		return KindInvalid
	default:
		return KindInternal
	}
}

// KindError reconstructs a sentinel error from a wire kind so IPC clients
// can use errors.Is against the same domain errors the daemon returned.
func KindError(kind, message string) error {
	var base error
	switch kind {
	case "":
		return nil
	case KindInsufficientCredits:
		base = ledger.ErrInsufficientCredits
	case KindSeparationFailed:
		base = separation.ErrSeparationFailed
	case KindOperationInProgress:
		base = workflow.ErrOperationInProgress
	case KindStemNotFound:
		base = project.ErrStemNotFound
	case KindNoActiveProject:
		base = project.ErrNoActiveProject
	case KindOutOfRange:
		base = project.ErrOutOfRange
	case KindEmptyTitle:
		base = project.ErrEmptyTitle
	case KindUnknownPackage:
		base = ledger.ErrUnknownPackage
	default:
		return errors.New(message)
	}
	if message == "" || message == base.Error() {
		return base
	}
	return wireError{kind: base, message: message}
}

type wireError struct {
	kind    error
	message string
}

func (e wireError) Error() string { return e.message }

func (e wireError) Unwrap() error { return e.kind }
