package separation

import (
	"context"
	"errors"

	"stemsync/internal/project"
)

// ErrSeparationFailed is returned when a source cannot be separated: the
// input is unreadable, the format is unsupported, or the backend errors.
var ErrSeparationFailed = errors.New("stem separation failed")

// Analysis carries the key/tempo metadata from a single source analysis
// pass. All four stems of a project share one analysis.
type Analysis struct {
	Key   string
	Tempo float64
}

// Request describes one separation job. RequiredCredits documents the
// entitlement the caller must already have debited; the engine itself never
// touches the ledger.
type Request struct {
	SourcePath      string
	RequiredCredits int
}

// Engine converts one audio source into a project with exactly one stem per
// fixed stem type.
type Engine interface {
	Separate(ctx context.Context, req Request) (*project.Project, error)
}
